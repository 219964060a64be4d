package model

import (
	"time"

	"gorm.io/gorm"
)

type Lesson struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UnitID      uint           `json:"unit_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Language    string         `json:"language" gorm:"not null;index"` // language code, e.g. "zu"
	LessonOrder int            `json:"lesson_order" gorm:"not null"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:LessonID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
