package model

import (
	"time"

	"gorm.io/gorm"
)

// Word is a vocabulary item shared by reference across questions. The session
// engine never mutates words.
type Word struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Image        *string        `json:"image,omitempty"`
	Audio        StringMap      `json:"audio,omitempty" gorm:"type:jsonb"`        // language code -> audio filename
	Translations StringMap      `json:"translations,omitempty" gorm:"type:jsonb"` // language code -> text
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Translation returns the word's text in the given language, or "" when the
// word has no entry for it.
func (w Word) Translation(language string) string {
	if w.Translations == nil {
		return ""
	}
	return w.Translations[language]
}

// AudioFile returns the audio filename for the given language, or "".
func (w Word) AudioFile(language string) string {
	if w.Audio == nil {
		return ""
	}
	return w.Audio[language]
}
