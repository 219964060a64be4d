package gateway

import (
	"context"

	"github.com/fundalabs/funda/internal/model"
)

// PointsIncrement is the body of an increment-points call. Streak carries the
// best streak of the finished session when a streak bonus applies.
type PointsIncrement struct {
	Points   int  `json:"points"`
	LessonID uint `json:"lessonId"`
	Streak   *int `json:"streak,omitempty"`
}

// ProgressUpdate reports a lesson's status for a learner.
type ProgressUpdate struct {
	LessonID uint   `json:"lessonId"`
	Language string `json:"language"`
	Status   string `json:"status"`
}

// ContentGateway is the session engine's view of the content and scoring
// backend. The repo-backed implementation serves the common single-service
// deployment; the HTTP client runs the engine against a remote backend.
type ContentGateway interface {
	// LessonQuestions returns the lesson's questions ordered by
	// QuestionOrder, words populated.
	LessonQuestions(ctx context.Context, lessonID uint) ([]model.Question, error)
	// IncrementPoints awards points to a learner. Called fire-and-forget on
	// lesson completion; failures are logged by the caller, never surfaced.
	IncrementPoints(ctx context.Context, learnerID uint, inc PointsIncrement) error
	// UpdateProgress records a lesson progress status for a learner.
	UpdateProgress(ctx context.Context, learnerID uint, upd ProgressUpdate) error
	// ReportQuestion files a user-flagged question.
	ReportQuestion(ctx context.Context, questionID uint, learnerID *uint, reason string) error
}
