package session

import (
	"testing"

	"github.com/fundalabs/funda/internal/checker"
)

func TestFeedbackStoreSetAndReset(t *testing.T) {
	var store FeedbackStore

	if store.IsChecked() {
		t.Fatal("fresh store must be unchecked")
	}

	store.Set(checker.Feedback{QuestionID: 3, IsChecked: true, IsCorrect: true, FeedbackText: "Correct!"})
	if !store.IsChecked() || !store.IsCorrect() {
		t.Fatal("expected checked correct feedback")
	}
	if store.QuestionID() != 3 {
		t.Errorf("QuestionID = %d, want 3", store.QuestionID())
	}

	store.Reset()
	if store.IsChecked() || store.QuestionID() != 0 {
		t.Fatal("expected cleared store after Reset")
	}
}

func TestFeedbackStoreIgnoresRecordsWithoutQuestionID(t *testing.T) {
	var store FeedbackStore

	store.Set(checker.Feedback{QuestionID: 5, IsChecked: true})
	store.Set(checker.Feedback{IsChecked: true, IsCorrect: true})

	if store.QuestionID() != 5 {
		t.Errorf("QuestionID = %d, want 5 (zero-id record ignored)", store.QuestionID())
	}
	if store.IsCorrect() {
		t.Error("zero-id record must not replace the stored feedback")
	}
}
