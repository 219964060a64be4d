package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
)

// LessonProgress tracks a learner's status on one lesson. One row per
// (learner, lesson) pair, upserted on each progress report.
type LessonProgress struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	LearnerID uint           `json:"learner_id" gorm:"not null;uniqueIndex:idx_learner_lesson"`
	LessonID  uint           `json:"lesson_id" gorm:"not null;uniqueIndex:idx_learner_lesson"`
	Language  string         `json:"language" gorm:"not null"`
	Status    string         `json:"status" gorm:"not null;default:'in_progress'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// QuestionReport is a user-flagged question (wrong audio, bad translation...).
type QuestionReport struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	LearnerID  *uint     `json:"learner_id,omitempty"`
	Reason     string    `json:"reason,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

// UnitResource is the advisory "resources downloaded" flag per (unit,
// language). Audio resolution treats it as a hint, never a guarantee: the
// resolver still falls back to the remote URL when the local file is absent.
type UnitResource struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UnitID     uint      `json:"unit_id" gorm:"not null;uniqueIndex:idx_unit_lang"`
	Language   string    `json:"language" gorm:"not null;uniqueIndex:idx_unit_lang"`
	Downloaded bool      `json:"downloaded" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
