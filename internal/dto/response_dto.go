package dto

import (
	"time"

	"github.com/fundalabs/funda/internal/checker"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// WordResponseDTO mirrors the wire shape of a vocabulary word.
type WordResponseDTO struct {
	ID           uint              `json:"id"`
	Image        *string           `json:"image,omitempty"`
	Audio        map[string]string `json:"audio,omitempty"`
	Translations map[string]string `json:"translations,omitempty"`
}

// QuestionResponseDTO carries the full question payload, including the
// encoded correct answer, so a client can check answers locally.
type QuestionResponseDTO struct {
	ID            uint              `json:"id"`
	LessonID      uint              `json:"lesson_id"`
	Type          string            `json:"type"`
	QuestionOrder int               `json:"question_order"`
	Words         []WordResponseDTO `json:"words,omitempty"`
	Options       []uint            `json:"options,omitempty"`
	CorrectOption *int              `json:"correct_option,omitempty"`
	BlankIndex    *int              `json:"blank_index,omitempty"`
	SentenceWords []uint            `json:"sentence_words,omitempty"`
	Direction     string            `json:"direction,omitempty"`
	MatchType     string            `json:"match_type,omitempty"`
}

// LessonSummaryDTO lists lessons without their questions.
type LessonSummaryDTO struct {
	ID            uint      `json:"id"`
	UnitID        uint      `json:"unit_id"`
	Title         string    `json:"title"`
	Language      string    `json:"language"`
	LessonOrder   int       `json:"lesson_order"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// LessonResponseDTO is the full lesson with ordered questions.
type LessonResponseDTO struct {
	ID          uint                  `json:"id"`
	UnitID      uint                  `json:"unit_id"`
	Title       string                `json:"title"`
	Language    string                `json:"language"`
	LessonOrder int                   `json:"lesson_order"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// FeedbackDTO is the transient check result pushed back to the client.
type FeedbackDTO struct {
	QuestionID    uint   `json:"question_id"`
	IsChecked     bool   `json:"is_checked"`
	IsCorrect     bool   `json:"is_correct"`
	FeedbackText  string `json:"feedback_text,omitempty"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

// SessionStateDTO is the transported session snapshot.
type SessionStateDTO struct {
	ID              string               `json:"id"`
	Status          string               `json:"status"`
	LessonID        uint                 `json:"lesson_id"`
	Language        string               `json:"language"`
	CurrentIndex    int                  `json:"current_index"`
	BatchSize       int                  `json:"batch_size"`
	Retrying        bool                 `json:"retrying"`
	IncorrectCount  int                  `json:"incorrect_count"`
	Streak          int                  `json:"streak"`
	Answered        bool                 `json:"answered"`
	Feedback        FeedbackDTO          `json:"feedback"`
	CurrentQuestion *QuestionResponseDTO `json:"current_question,omitempty"`
}

// ContinueResponseDTO reports the outcome of a continue transition.
type ContinueResponseDTO struct {
	State             SessionStateDTO `json:"state"`
	WasCorrect        bool            `json:"was_correct"`
	StreakCelebration bool            `json:"streak_celebration"`
}

// HintResponseDTO carries the AI explanation of an incorrect answer.
type HintResponseDTO struct {
	QuestionID uint   `json:"question_id"`
	Hint       string `json:"hint"`
}

// LearnerResponseDTO is the learner's public state.
type LearnerResponseDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Points     int    `json:"points"`
	BestStreak int    `json:"best_streak"`
}

// ProgressResponseDTO is one lesson-progress row.
type ProgressResponseDTO struct {
	LessonID  uint      `json:"lesson_id"`
	Language  string    `json:"language"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionRecordDTO is a finished session from the history.
type SessionRecordDTO struct {
	SessionID      string    `json:"session_id"`
	LessonID       uint      `json:"lesson_id"`
	Language       string    `json:"language"`
	TotalQuestions int       `json:"total_questions"`
	TotalCorrect   int       `json:"total_correct"`
	TotalIncorrect int       `json:"total_incorrect"`
	RetryRounds    int       `json:"retry_rounds"`
	BestStreak     int       `json:"best_streak"`
	Outcome        string    `json:"outcome"`
	StartedAt      time.Time `json:"started_at"`
	EndedAt        time.Time `json:"ended_at"`
}

// FeedbackFromChecker converts the engine's feedback record to its DTO.
func FeedbackFromChecker(fb checker.Feedback) FeedbackDTO {
	return FeedbackDTO{
		QuestionID:    fb.QuestionID,
		IsChecked:     fb.IsChecked,
		IsCorrect:     fb.IsCorrect,
		FeedbackText:  fb.FeedbackText,
		CorrectAnswer: fb.CorrectAnswer,
	}
}
