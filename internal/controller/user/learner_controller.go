package user

import (
	"net/http"

	"github.com/fundalabs/funda/internal/dto"
	"github.com/fundalabs/funda/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LearnerController struct {
	learnerService service.LearnerService
}

func NewLearnerController(learnerService service.LearnerService) *LearnerController {
	return &LearnerController{learnerService: learnerService}
}

// GetLearner godoc
// @Summary Get a learner's points and best streak
// @Tags Learners
// @Produce json
// @Param learner_id path int true "Learner ID"
// @Success 200 {object} dto.LearnerResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Learner not found"
// @Router /language-learners/{learner_id} [get]
func (c *LearnerController) GetLearner(ctx *gin.Context) {
	learnerID, ok := parseUintParam(ctx, "learner_id")
	if !ok {
		return
	}
	learner, err := c.learnerService.GetLearner(learnerID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, learner)
}

// IncrementPoints godoc
// @Summary Award points to a learner
// @Description Appends a points ledger entry and updates the learner total. Called by clients on lesson completion.
// @Tags Learners
// @Accept json
// @Produce json
// @Param learner_id path int true "Learner ID"
// @Param body body dto.PointsIncrementDTO true "Points, lesson and optional streak"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /language-learners/{learner_id}/increment-points [post]
func (c *LearnerController) IncrementPoints(ctx *gin.Context) {
	learnerID, ok := parseUintParam(ctx, "learner_id")
	if !ok {
		return
	}
	var req dto.PointsIncrementDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.learnerService.IncrementPoints(learnerID, req); err != nil {
		log.Error().Err(err).Uint("learnerID", learnerID).Msg("IncrementPoints: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to increment points", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UpdateProgress godoc
// @Summary Update a learner's lesson progress
// @Tags Learners
// @Accept json
// @Produce json
// @Param learner_id path int true "Learner ID"
// @Param body body dto.ProgressUpdateDTO true "Lesson, language and status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /language-learners/{learner_id}/progress [post]
func (c *LearnerController) UpdateProgress(ctx *gin.Context) {
	learnerID, ok := parseUintParam(ctx, "learner_id")
	if !ok {
		return
	}
	var req dto.ProgressUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.learnerService.UpdateProgress(learnerID, req); err != nil {
		log.Error().Err(err).Uint("learnerID", learnerID).Msg("UpdateProgress: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update progress", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetProgress godoc
// @Summary List a learner's lesson progress
// @Tags Learners
// @Produce json
// @Param learner_id path int true "Learner ID"
// @Success 200 {array} dto.ProgressResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /language-learners/{learner_id}/progress [get]
func (c *LearnerController) GetProgress(ctx *gin.Context) {
	learnerID, ok := parseUintParam(ctx, "learner_id")
	if !ok {
		return
	}
	progress, err := c.learnerService.GetProgress(learnerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve progress", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// GetHistory godoc
// @Summary List a learner's finished lesson sessions
// @Tags Learners
// @Produce json
// @Param learner_id path int true "Learner ID"
// @Success 200 {array} dto.SessionRecordDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /language-learners/{learner_id}/history [get]
func (c *LearnerController) GetHistory(ctx *gin.Context) {
	learnerID, ok := parseUintParam(ctx, "learner_id")
	if !ok {
		return
	}
	history, err := c.learnerService.GetHistory(learnerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve history", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// ReportQuestion godoc
// @Summary Flag a question as broken
// @Tags Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param body body dto.ReportQuestionDTO true "Optional learner and reason"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /language-questions/{question_id}/report [post]
func (c *LearnerController) ReportQuestion(ctx *gin.Context) {
	questionID, ok := parseUintParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.ReportQuestionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.learnerService.ReportQuestion(questionID, req); err != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("ReportQuestion: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
