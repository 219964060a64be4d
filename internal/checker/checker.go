package checker

import (
	"fmt"
	"strings"

	"github.com/fundalabs/funda/internal/model"
)

// Answer carries the user's input for one check. Which fields are meaningful
// depends on the question type.
type Answer struct {
	// OptionIndex is the selected index into the question's options
	// (select_image).
	OptionIndex *int `json:"option_index,omitempty"`
	// WordIDs is an ordered word-id selection (translate, tap_what_you_hear).
	WordIDs []uint `json:"word_ids,omitempty"`
	// TypedText is free text input (fill_in_blank, complete_translation,
	// type_what_you_hear).
	TypedText string `json:"typed_text,omitempty"`
	// Pairs is the matched left/right word ids (match_pairs).
	Pairs []MatchedPair `json:"pairs,omitempty"`
}

// MatchedPair records one tap-matched pair. A pair is correct when both sides
// refer to the same word.
type MatchedPair struct {
	LeftID  uint `json:"left_id"`
	RightID uint `json:"right_id"`
}

// Feedback is the transient result of one check. IsCorrect is only meaningful
// when IsChecked is true.
type Feedback struct {
	QuestionID    uint   `json:"question_id"`
	IsChecked     bool   `json:"is_checked"`
	IsCorrect     bool   `json:"is_correct"`
	FeedbackText  string `json:"feedback_text,omitempty"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

// Checker validates user input against one question's encoded correct answer.
// One checker is built per question; the session engine treats it as an
// explicit command object rather than a registered callback.
type Checker interface {
	// Check computes a Feedback record for the given input. Checking with
	// insufficient input is a no-op: the returned Feedback has IsChecked
	// false.
	Check(ans Answer) Feedback
	// HasInput reports whether the answer carries enough input to permit a
	// check (the isQuestionAnswered gate).
	HasInput(ans Answer) bool
}

// New returns the checker for the question's type. The language selects which
// translation typed answers are compared against. Unknown types yield an
// error; the seven variants are matched exhaustively.
func New(q model.Question, language string) (Checker, error) {
	switch q.Type {
	case model.TypeSelectImage:
		return &optionChecker{q: q, language: language}, nil
	case model.TypeTranslate, model.TypeTapWhatYouHear:
		return &sequenceChecker{q: q, language: language}, nil
	case model.TypeFillInBlank, model.TypeCompleteTranslation, model.TypeTypeWhatYouHear:
		return &typedChecker{q: q, language: language}, nil
	case model.TypeMatchPairs:
		return &matchChecker{q: q, language: language}, nil
	}
	return nil, fmt.Errorf("unknown question type %q for question %d", q.Type, q.ID)
}

// normalize trims surrounding whitespace, collapses inner runs of spaces and
// lower-cases, so "  sawuBONA  " matches "Sawubona".
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// correctFeedback and incorrectFeedback build the canned feedback records.
// Wrong answers carry the canonical answer for display.
func correctFeedback(questionID uint) Feedback {
	return Feedback{
		QuestionID:   questionID,
		IsChecked:    true,
		IsCorrect:    true,
		FeedbackText: "Correct!",
	}
}

func incorrectFeedback(questionID uint, correctAnswer string) Feedback {
	return Feedback{
		QuestionID:    questionID,
		IsChecked:     true,
		IsCorrect:     false,
		FeedbackText:  "Incorrect",
		CorrectAnswer: correctAnswer,
	}
}

// displayLanguage picks the language the correct answer is shown in. Questions
// translating from the target language show the source side.
func displayLanguage(q model.Question, language string) string {
	if q.Direction == "from_target" {
		return "en"
	}
	return language
}

type optionChecker struct {
	q        model.Question
	language string
}

func (c *optionChecker) HasInput(ans Answer) bool {
	return ans.OptionIndex != nil
}

func (c *optionChecker) Check(ans Answer) Feedback {
	if !c.HasInput(ans) {
		return Feedback{QuestionID: c.q.ID}
	}
	if c.q.CorrectOption != nil && *ans.OptionIndex == *c.q.CorrectOption {
		return correctFeedback(c.q.ID)
	}
	return incorrectFeedback(c.q.ID, c.correctAnswer())
}

func (c *optionChecker) correctAnswer() string {
	if c.q.CorrectOption == nil || *c.q.CorrectOption < 0 || *c.q.CorrectOption >= len(c.q.Options) {
		return ""
	}
	word, ok := c.q.WordByID(c.q.Options[*c.q.CorrectOption])
	if !ok {
		return ""
	}
	return word.Translation(displayLanguage(c.q, c.language))
}

// sequenceChecker compares an ordered word-id selection against the target
// sentence's word-id sequence (translate, tap_what_you_hear).
type sequenceChecker struct {
	q        model.Question
	language string
}

func (c *sequenceChecker) HasInput(ans Answer) bool {
	return len(ans.WordIDs) > 0
}

func (c *sequenceChecker) Check(ans Answer) Feedback {
	if !c.HasInput(ans) {
		return Feedback{QuestionID: c.q.ID}
	}
	if len(ans.WordIDs) == len(c.q.SentenceWords) {
		match := true
		for i, id := range ans.WordIDs {
			if id != c.q.SentenceWords[i] {
				match = false
				break
			}
		}
		if match {
			return correctFeedback(c.q.ID)
		}
	}
	return incorrectFeedback(c.q.ID, c.sentenceText())
}

func (c *sequenceChecker) sentenceText() string {
	lang := displayLanguage(c.q, c.language)
	parts := make([]string, 0, len(c.q.SentenceWords))
	for _, id := range c.q.SentenceWords {
		word, ok := c.q.WordByID(id)
		if !ok {
			// Referenced word missing from the word list: skip rather
			// than fail the question.
			continue
		}
		parts = append(parts, word.Translation(lang))
	}
	return strings.Join(parts, " ")
}

// typedChecker compares trimmed, lower-cased text against the target word's
// translation in the selected language.
type typedChecker struct {
	q        model.Question
	language string
}

func (c *typedChecker) HasInput(ans Answer) bool {
	return strings.TrimSpace(ans.TypedText) != ""
}

func (c *typedChecker) Check(ans Answer) Feedback {
	if !c.HasInput(ans) {
		return Feedback{QuestionID: c.q.ID}
	}
	target, ok := c.q.TargetWord()
	if !ok {
		return incorrectFeedback(c.q.ID, "")
	}
	expected := target.Translation(c.targetLanguage())
	if normalize(ans.TypedText) == normalize(expected) && expected != "" {
		return correctFeedback(c.q.ID)
	}
	return incorrectFeedback(c.q.ID, expected)
}

// targetLanguage is the language the user types in: the lesson language,
// unless the question translates from the target back to English.
func (c *typedChecker) targetLanguage() string {
	if c.q.Direction == "from_target" {
		return "en"
	}
	return c.language
}

// matchChecker requires every pair tapped and matched: M pairs, each with
// left id equal to right id.
type matchChecker struct {
	q        model.Question
	language string
}

func (c *matchChecker) pairCount() int {
	if len(c.q.Options) > 0 {
		return len(c.q.Options)
	}
	return len(c.q.Words)
}

// HasInput is true exactly when all pairs have been matched. A partial match
// set never triggers a check.
func (c *matchChecker) HasInput(ans Answer) bool {
	return c.pairCount() > 0 && len(ans.Pairs) == c.pairCount()
}

func (c *matchChecker) Check(ans Answer) Feedback {
	if !c.HasInput(ans) {
		return Feedback{QuestionID: c.q.ID}
	}
	seen := make(map[uint]bool, len(ans.Pairs))
	for _, p := range ans.Pairs {
		if p.LeftID != p.RightID {
			return incorrectFeedback(c.q.ID, "")
		}
		if seen[p.LeftID] {
			return incorrectFeedback(c.q.ID, "")
		}
		seen[p.LeftID] = true
	}
	return correctFeedback(c.q.ID)
}
