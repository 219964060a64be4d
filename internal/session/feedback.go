package session

import "github.com/fundalabs/funda/internal/checker"

// FeedbackStore holds the single active feedback record of a session. Exactly
// one exists at a time: set on check, cleared on continue. Callers hold the
// session lock; the store itself does no locking.
type FeedbackStore struct {
	current checker.Feedback
}

// Set replaces the current feedback. Records without a question ID are
// silently ignored.
func (s *FeedbackStore) Set(fb checker.Feedback) {
	if fb.QuestionID == 0 {
		return
	}
	s.current = fb
}

// Reset clears the store to the initial unchecked state.
func (s *FeedbackStore) Reset() {
	s.current = checker.Feedback{}
}

func (s *FeedbackStore) IsChecked() bool       { return s.current.IsChecked }
func (s *FeedbackStore) IsCorrect() bool       { return s.current.IsCorrect }
func (s *FeedbackStore) FeedbackText() string  { return s.current.FeedbackText }
func (s *FeedbackStore) CorrectAnswer() string { return s.current.CorrectAnswer }
func (s *FeedbackStore) QuestionID() uint      { return s.current.QuestionID }

// Current returns a copy of the active record.
func (s *FeedbackStore) Current() checker.Feedback { return s.current }
