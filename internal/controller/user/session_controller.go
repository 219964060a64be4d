package user

import (
	"net/http"

	"github.com/fundalabs/funda/internal/audio"
	"github.com/fundalabs/funda/internal/dto"
	"github.com/fundalabs/funda/internal/service"
	"github.com/fundalabs/funda/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionService service.SessionService
	hintService    service.HintService
	manager        *session.Manager
	audioManager   *audio.Manager
	resolver       *audio.Resolver
}

func NewSessionController(
	sessionService service.SessionService,
	hintService service.HintService,
	manager *session.Manager,
	audioManager *audio.Manager,
	resolver *audio.Resolver,
) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		hintService:    hintService,
		manager:        manager,
		audioManager:   audioManager,
		resolver:       resolver,
	}
}

// StartSession godoc
// @Summary Start a lesson session
// @Description Loads the lesson's ordered questions and opens a server-side progression session.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Param body body dto.SessionStartDTO true "Learner and language"
// @Success 201 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Question list could not be loaded"
// @Router /lessons/{lesson_id}/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	lessonID, ok := parseUintParam(ctx, "lesson_id")
	if !ok {
		return
	}
	var req dto.SessionStartDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.sessionService.Start(ctx.Request.Context(), lessonID, req)
	if err != nil {
		log.Error().Err(err).Uint("lessonID", lessonID).Msg("StartSession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start session", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// GetSession godoc
// @Summary Get the current session state
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	state, err := c.sessionService.Get(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// CheckAnswer godoc
// @Summary Check the current question's answer
// @Description Validates the answer against the current question. Checking with insufficient input is a no-op and returns an unchecked feedback record.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param body body dto.SessionCheckDTO true "Answer input"
// @Success 200 {object} dto.FeedbackDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session no longer active"
// @Router /sessions/{session_id}/check [post]
func (c *SessionController) CheckAnswer(ctx *gin.Context) {
	var req dto.SessionCheckDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	fb, err := c.sessionService.Check(ctx.Param("session_id"), req.Answer)
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fb)
}

// ContinueSession godoc
// @Summary Advance past the checked question
// @Description Records the feedback outcome, updates the streak, advances the index and resolves batch completion into review, celebration or the next question.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.ContinueResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Question not checked yet or session over"
// @Router /sessions/{session_id}/continue [post]
func (c *SessionController) ContinueSession(ctx *gin.Context) {
	result, err := c.sessionService.Continue(ctx.Param("session_id"))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// RetrySession godoc
// @Summary Retry the incorrectly answered questions
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session is not in review"
// @Router /sessions/{session_id}/retry [post]
func (c *SessionController) RetrySession(ctx *gin.Context) {
	state, err := c.sessionService.Retry(ctx.Param("session_id"))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// QuitSession godoc
// @Summary Quit the session
// @Description Ends the session without completion. No partial progress is persisted beyond prior gateway calls.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/quit [post]
func (c *SessionController) QuitSession(ctx *gin.Context) {
	state, err := c.sessionService.Quit(ctx.Param("session_id"))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	c.audioManager.Stop(audio.Handle(ctx.Param("session_id")))
	ctx.JSON(http.StatusOK, state)
}

// GetHint godoc
// @Summary Explain the last incorrect answer
// @Description Asks the AI tutor for a short explanation of the current question's incorrect answer. Requires a checked, incorrect feedback record.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.HintResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "No incorrect checked answer to explain"
// @Failure 503 {object} dto.ErrorResponse "Hint service unavailable"
// @Router /sessions/{session_id}/hint [post]
func (c *SessionController) GetHint(ctx *gin.Context) {
	sess, ok := c.manager.Get(ctx.Param("session_id"))
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "session not found"})
		return
	}
	q, fb, ans, ok := sess.CurrentContext()
	if !ok || !fb.IsChecked || fb.IsCorrect {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "No incorrect checked answer to explain"})
		return
	}

	hint, err := c.hintService.ExplainAnswer(ctx.Request.Context(), q, sess.Snapshot().Language, fb, ans)
	if err != nil {
		if err == service.ErrHintUnavailable {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Hint service is not configured"})
			return
		}
		log.Error().Err(err).Uint("questionID", q.ID).Msg("GetHint: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate hint", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.HintResponseDTO{QuestionID: q.ID, Hint: hint})
}

// QueuePlayback godoc
// @Summary Queue an audio clip sequence for the session
// @Description Resolves each clip (local download or remote URL) and registers the sequence as the session's single active playback, replacing any previous one. Unresolvable clips are skipped.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param body body dto.PlaybackRequestDTO true "Clips to queue"
// @Success 200 {object} audio.Playback
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /sessions/{session_id}/playback [post]
func (c *SessionController) QueuePlayback(ctx *gin.Context) {
	var req dto.PlaybackRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	pb := c.audioManager.Play(audio.Handle(ctx.Param("session_id")), c.resolver, req.UnitID, req.Language, req.Filenames)
	ctx.JSON(http.StatusOK, pb)
}

// respondSessionError maps engine errors to HTTP statuses: unknown session →
// 404, invalid transitions → 409.
func respondSessionError(ctx *gin.Context, err error) {
	switch err {
	case session.ErrSessionOver, session.ErrNotChecked, session.ErrNotInReview, session.ErrAlreadyFinished:
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	}
}
