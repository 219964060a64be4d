package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionType enumerates the seven supported question variants.
type QuestionType string

const (
	TypeSelectImage         QuestionType = "select_image"
	TypeTranslate           QuestionType = "translate"
	TypeFillInBlank         QuestionType = "fill_in_blank"
	TypeCompleteTranslation QuestionType = "complete_translation"
	TypeTypeWhatYouHear     QuestionType = "type_what_you_hear"
	TypeMatchPairs          QuestionType = "match_pairs"
	TypeTapWhatYouHear      QuestionType = "tap_what_you_hear"
)

// QuestionTypes lists every valid type, in no particular order.
var QuestionTypes = []QuestionType{
	TypeSelectImage,
	TypeTranslate,
	TypeFillInBlank,
	TypeCompleteTranslation,
	TypeTypeWhatYouHear,
	TypeMatchPairs,
	TypeTapWhatYouHear,
}

// Valid reports whether t is one of the seven known variants.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeSelectImage, TypeTranslate, TypeFillInBlank, TypeCompleteTranslation,
		TypeTypeWhatYouHear, TypeMatchPairs, TypeTapWhatYouHear:
		return true
	}
	return false
}

// Question is immutable once fetched; retry batches reorder and subset the
// lesson's questions but never modify them.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	LessonID      uint           `json:"lesson_id" gorm:"not null;index"`
	Type          QuestionType   `json:"type" gorm:"not null"`
	QuestionOrder int            `json:"question_order" gorm:"not null"`
	Words         []Word         `json:"words,omitempty" gorm:"many2many:question_words"`
	Options       IDList         `json:"options,omitempty" gorm:"type:jsonb"` // word IDs offered as choices
	CorrectOption *int           `json:"correct_option,omitempty"`            // index into Options
	BlankIndex    *int           `json:"blank_index,omitempty"`               // index into SentenceWords
	SentenceWords IDList         `json:"sentence_words,omitempty" gorm:"type:jsonb"`
	Direction     string         `json:"direction,omitempty"` // "to_target" or "from_target"
	MatchType     string         `json:"match_type,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// WordByID looks a word up in the question's word list. The bool is false when
// the ID is referenced by the payload but missing from the list; callers skip
// such entries rather than failing the question.
func (q Question) WordByID(id uint) (Word, bool) {
	for _, w := range q.Words {
		if w.ID == id {
			return w, true
		}
	}
	return Word{}, false
}

// TargetWord resolves the word a typed answer is checked against: the blank
// within the sentence for blank-style questions, otherwise the first option or
// sentence word.
func (q Question) TargetWord() (Word, bool) {
	if q.BlankIndex != nil && *q.BlankIndex >= 0 && *q.BlankIndex < len(q.SentenceWords) {
		return q.WordByID(q.SentenceWords[*q.BlankIndex])
	}
	if len(q.SentenceWords) > 0 {
		return q.WordByID(q.SentenceWords[0])
	}
	if len(q.Options) > 0 {
		idx := 0
		if q.CorrectOption != nil && *q.CorrectOption >= 0 && *q.CorrectOption < len(q.Options) {
			idx = *q.CorrectOption
		}
		return q.WordByID(q.Options[idx])
	}
	return Word{}, false
}
