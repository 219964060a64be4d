package admin

import (
	"net/http"
	"strconv"

	"github.com/fundalabs/funda/internal/dto"
	"github.com/fundalabs/funda/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminLessonController struct {
	adminService service.AdminLessonService
}

func NewAdminLessonController(adminService service.AdminLessonService) *AdminLessonController {
	return &AdminLessonController{adminService: adminService}
}

// CreateLesson godoc
// @Summary (Admin) Create a lesson with its questions
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param body body dto.LessonCreateDTO true "Lesson with questions referencing existing word IDs"
// @Success 201 {object} dto.LessonResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/lessons [post]
func (c *AdminLessonController) CreateLesson(ctx *gin.Context) {
	var req dto.LessonCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	lesson, err := c.adminService.CreateLesson(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateLesson: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create lesson", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, lesson)
}

// CreateWord godoc
// @Summary (Admin) Create a vocabulary word
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param body body dto.WordCreateDTO true "Word with per-language translations and audio"
// @Success 201 {object} map[string]uint
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/words [post]
func (c *AdminLessonController) CreateWord(ctx *gin.Context) {
	var req dto.WordCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	id, err := c.adminService.CreateWord(req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create word", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"id": id})
}

// ImportLessons godoc
// @Summary (Admin) Bulk-import lessons from a spreadsheet
// @Description Uploads an xlsx file with one word row per question. Bad rows are skipped and reported as warnings.
// @Tags Admin - Content
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx spreadsheet"
// @Success 200 {object} dto.ImportResultDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Router /admin/lessons/import [post]
func (c *AdminLessonController) ImportLessons(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing upload file", Details: []string{err.Error()}})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not open upload file", Details: []string{err.Error()}})
		return
	}
	defer file.Close()

	result, err := c.adminService.ImportSpreadsheet(file)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("ImportLessons: import failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Import failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SetUnitResource godoc
// @Summary (Admin) Set the downloaded-resources flag for a unit
// @Description Stands in for the client-side download manager: marks a unit's audio as locally available for a language.
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param unit_id path int true "Unit ID"
// @Param body body dto.UnitResourceDTO true "Language and flag"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/units/{unit_id}/resources [put]
func (c *AdminLessonController) SetUnitResource(ctx *gin.Context) {
	unitID, err := strconv.ParseUint(ctx.Param("unit_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid unit_id format"})
		return
	}
	var req dto.UnitResourceDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.adminService.SetUnitResource(uint(unitID), req); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to set resource flag", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
