package user

import (
	"net/http"
	"strconv"

	"github.com/fundalabs/funda/internal/dto"
	"github.com/fundalabs/funda/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LessonController struct {
	lessonService service.LessonService
}

func NewLessonController(lessonService service.LessonService) *LessonController {
	return &LessonController{lessonService: lessonService}
}

// GetAllLessons godoc
// @Summary List all lessons
// @Description Get lesson summaries with question counts, ordered by lesson order.
// @Tags Lessons
// @Produce json
// @Success 200 {array} dto.LessonSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons [get]
func (c *LessonController) GetAllLessons(ctx *gin.Context) {
	lessons, err := c.lessonService.GetAllLessons()
	if err != nil {
		log.Error().Err(err).Msg("GetAllLessons: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve lessons", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, lessons)
}

// GetLessonDetails godoc
// @Summary Get a lesson with its ordered questions
// @Tags Lessons
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Success 200 {object} dto.LessonResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Lesson ID format"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{lesson_id} [get]
func (c *LessonController) GetLessonDetails(ctx *gin.Context) {
	lessonID, ok := parseUintParam(ctx, "lesson_id")
	if !ok {
		return
	}
	lesson, err := c.lessonService.GetLessonDetails(lessonID)
	if err != nil {
		log.Warn().Err(err).Uint("lessonID", lessonID).Msg("GetLessonDetails: lesson not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, lesson)
}

// GetLessonQuestions godoc
// @Summary Get the ordered question list for a lesson
// @Description The wire operation lesson clients load a lesson from: questions sorted by question order, words included.
// @Tags Lessons
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Lesson ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /language-questions/lesson/{lesson_id} [get]
func (c *LessonController) GetLessonQuestions(ctx *gin.Context) {
	lessonID, ok := parseUintParam(ctx, "lesson_id")
	if !ok {
		return
	}
	questions, err := c.lessonService.GetLessonQuestions(lessonID)
	if err != nil {
		log.Error().Err(err).Uint("lessonID", lessonID).Msg("GetLessonQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// parseUintParam reads a uint path parameter, answering 400 itself on bad
// input.
func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
