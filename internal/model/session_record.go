package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	OutcomeCelebrated = "celebrated"
	OutcomeQuit       = "quit"
)

// SessionRecord is the persisted history of a finished lesson session. Live
// session state is in-memory only; a record is written when the session ends.
type SessionRecord struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	SessionID      string         `json:"session_id" gorm:"not null;uniqueIndex"`
	LearnerID      *uint          `json:"learner_id,omitempty" gorm:"index"`
	LessonID       uint           `json:"lesson_id" gorm:"not null;index"`
	Language       string         `json:"language" gorm:"not null"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	TotalCorrect   int            `json:"total_correct" gorm:"not null"`
	TotalIncorrect int            `json:"total_incorrect" gorm:"not null"`
	RetryRounds    int            `json:"retry_rounds" gorm:"not null"`
	BestStreak     int            `json:"best_streak" gorm:"not null"`
	Outcome        string         `json:"outcome" gorm:"not null"` // "celebrated" or "quit"
	StartedAt      time.Time      `json:"started_at"`
	EndedAt        time.Time      `json:"ended_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
