package dto

// WordCreateDTO creates a vocabulary word, keyed maps by language code.
type WordCreateDTO struct {
	Image        *string           `json:"image"`
	Audio        map[string]string `json:"audio"`
	Translations map[string]string `json:"translations" binding:"required"`
}

// QuestionCreateDTO is used within LessonCreateDTO for admin lesson creation.
// WordIDs reference previously created words.
type QuestionCreateDTO struct {
	Type          string `json:"type" binding:"required,oneof=select_image translate fill_in_blank complete_translation type_what_you_hear match_pairs tap_what_you_hear"`
	QuestionOrder int    `json:"question_order" binding:"required,min=1"`
	WordIDs       []uint `json:"word_ids" binding:"required,min=1"`
	Options       []uint `json:"options"`
	CorrectOption *int   `json:"correct_option"`
	BlankIndex    *int   `json:"blank_index"`
	SentenceWords []uint `json:"sentence_words"`
	Direction     string `json:"direction" binding:"omitempty,oneof=to_target from_target"`
	MatchType     string `json:"match_type"`
}

// LessonCreateDTO is for admin to create a lesson with all its questions.
type LessonCreateDTO struct {
	UnitID      uint                `json:"unit_id" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Language    string              `json:"language" binding:"required"`
	LessonOrder int                 `json:"lesson_order" binding:"required,min=1"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// UnitResourceDTO sets the advisory offline-resources flag for a unit.
type UnitResourceDTO struct {
	Language   string `json:"language" binding:"required"`
	Downloaded bool   `json:"downloaded"`
}

// ImportResultDTO summarizes a spreadsheet import.
type ImportResultDTO struct {
	Lessons   int      `json:"lessons"`
	Questions int      `json:"questions"`
	Words     int      `json:"words"`
	Warnings  []string `json:"warnings,omitempty"`
}
