package dto

import "github.com/fundalabs/funda/internal/checker"

// SessionStartDTO begins a lesson session. Language defaults to the lesson's
// own language when omitted.
type SessionStartDTO struct {
	LearnerID *uint  `json:"learner_id"`
	Language  string `json:"language"`
}

// SessionCheckDTO carries the answer input for a check. The checker decides
// which fields matter for the current question's type.
type SessionCheckDTO struct {
	Answer checker.Answer `json:"answer"`
}

// PointsIncrementDTO is the body of an increment-points call.
type PointsIncrementDTO struct {
	Points   int  `json:"points" binding:"required"`
	LessonID uint `json:"lessonId" binding:"required"`
	Streak   *int `json:"streak"`
}

// ProgressUpdateDTO reports a learner's status on a lesson.
type ProgressUpdateDTO struct {
	LessonID uint   `json:"lessonId" binding:"required"`
	Language string `json:"language" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=in_progress completed"`
}

// ReportQuestionDTO flags a question as broken.
type ReportQuestionDTO struct {
	LearnerID *uint  `json:"learnerId"`
	Reason    string `json:"reason"`
}

// PlaybackRequestDTO queues a clip sequence for a session handle.
type PlaybackRequestDTO struct {
	UnitID    uint     `json:"unit_id" binding:"required"`
	Language  string   `json:"language" binding:"required"`
	Filenames []string `json:"filenames" binding:"required,min=1"`
}
