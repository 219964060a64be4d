package model

import (
	"time"

	"gorm.io/gorm"
)

type Learner struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Name       string         `json:"name" gorm:"not null"`
	Points     int            `json:"points" gorm:"not null;default:0"`
	BestStreak int            `json:"best_streak" gorm:"not null;default:0"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// PointsEntry is one row of the points ledger. Every increment-points call
// appends an entry in addition to updating the learner total.
type PointsEntry struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	LearnerID   uint      `json:"learner_id" gorm:"not null;index"`
	LessonID    *uint     `json:"lesson_id,omitempty" gorm:"index"`
	Points      int       `json:"points" gorm:"not null"`
	StreakBonus bool      `json:"streak_bonus" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
