package checker

import (
	"testing"

	"github.com/fundalabs/funda/internal/model"
)

func word(id uint, en, zu string) model.Word {
	return model.Word{
		ID:           id,
		Translations: model.StringMap{"en": en, "zu": zu},
	}
}

func intPtr(v int) *int { return &v }

func TestNewRejectsUnknownType(t *testing.T) {
	q := model.Question{ID: 1, Type: "multiple_choice"}
	if _, err := New(q, "zu"); err == nil {
		t.Fatal("expected error for unknown question type")
	}
}

func TestNewCoversAllTypes(t *testing.T) {
	for _, typ := range model.QuestionTypes {
		q := model.Question{ID: 1, Type: typ}
		if _, err := New(q, "zu"); err != nil {
			t.Errorf("New(%q) returned error: %v", typ, err)
		}
	}
}

func TestOptionChecker(t *testing.T) {
	q := model.Question{
		ID:            10,
		Type:          model.TypeSelectImage,
		Words:         []model.Word{word(1, "dog", "inja"), word(2, "cat", "ikati")},
		Options:       model.IDList{1, 2},
		CorrectOption: intPtr(1),
	}
	chk, err := New(q, "zu")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		ans         Answer
		wantChecked bool
		wantCorrect bool
	}{
		{"no selection", Answer{}, false, false},
		{"correct option", Answer{OptionIndex: intPtr(1)}, true, true},
		{"wrong option", Answer{OptionIndex: intPtr(0)}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := chk.Check(tt.ans)
			if fb.IsChecked != tt.wantChecked {
				t.Errorf("IsChecked = %v, want %v", fb.IsChecked, tt.wantChecked)
			}
			if fb.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", fb.IsCorrect, tt.wantCorrect)
			}
			if fb.QuestionID != q.ID {
				t.Errorf("QuestionID = %d, want %d", fb.QuestionID, q.ID)
			}
		})
	}
}

func TestOptionCheckerShowsCorrectAnswerOnMiss(t *testing.T) {
	q := model.Question{
		ID:            11,
		Type:          model.TypeSelectImage,
		Words:         []model.Word{word(1, "dog", "inja"), word(2, "cat", "ikati")},
		Options:       model.IDList{1, 2},
		CorrectOption: intPtr(0),
	}
	chk, _ := New(q, "zu")
	fb := chk.Check(Answer{OptionIndex: intPtr(1)})
	if fb.IsCorrect {
		t.Fatal("expected incorrect")
	}
	if fb.CorrectAnswer != "inja" {
		t.Errorf("CorrectAnswer = %q, want %q", fb.CorrectAnswer, "inja")
	}
	if fb.FeedbackText != "Incorrect" {
		t.Errorf("FeedbackText = %q, want %q", fb.FeedbackText, "Incorrect")
	}
}

func TestSequenceChecker(t *testing.T) {
	q := model.Question{
		ID:   20,
		Type: model.TypeTranslate,
		Words: []model.Word{
			word(1, "I", "ngi"),
			word(2, "see", "bona"),
			word(3, "you", "wena"),
		},
		SentenceWords: model.IDList{1, 2, 3},
	}
	chk, err := New(q, "zu")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		ids         []uint
		wantChecked bool
		wantCorrect bool
	}{
		{"empty", nil, false, false},
		{"exact order", []uint{1, 2, 3}, true, true},
		{"wrong order", []uint{2, 1, 3}, true, false},
		{"too short", []uint{1, 2}, true, false},
		{"too long", []uint{1, 2, 3, 3}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := chk.Check(Answer{WordIDs: tt.ids})
			if fb.IsChecked != tt.wantChecked {
				t.Errorf("IsChecked = %v, want %v", fb.IsChecked, tt.wantChecked)
			}
			if fb.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", fb.IsCorrect, tt.wantCorrect)
			}
		})
	}
}

func TestSequenceCheckerSentenceTextSkipsMissingWords(t *testing.T) {
	// Word 99 is referenced by the sentence but absent from the word list.
	q := model.Question{
		ID:            21,
		Type:          model.TypeTranslate,
		Words:         []model.Word{word(1, "I", "ngi"), word(2, "see", "bona")},
		SentenceWords: model.IDList{1, 99, 2},
	}
	chk, _ := New(q, "zu")
	fb := chk.Check(Answer{WordIDs: []uint{2, 1}})
	if fb.IsCorrect {
		t.Fatal("expected incorrect")
	}
	if fb.CorrectAnswer != "ngi bona" {
		t.Errorf("CorrectAnswer = %q, want %q", fb.CorrectAnswer, "ngi bona")
	}
}

func TestTypedChecker(t *testing.T) {
	q := model.Question{
		ID:            30,
		Type:          model.TypeFillInBlank,
		Words:         []model.Word{word(5, "hello", "Sawubona")},
		SentenceWords: model.IDList{5},
		BlankIndex:    intPtr(0),
	}
	chk, err := New(q, "zu")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		typed       string
		wantChecked bool
		wantCorrect bool
	}{
		{"empty", "", false, false},
		{"whitespace only", "   ", false, false},
		{"exact", "Sawubona", true, true},
		{"case and padding", "  sawuBONA  ", true, true},
		{"inner spaces collapsed", "sawubona", true, true},
		{"wrong word", "yebo", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := chk.Check(Answer{TypedText: tt.typed})
			if fb.IsChecked != tt.wantChecked {
				t.Errorf("IsChecked = %v, want %v", fb.IsChecked, tt.wantChecked)
			}
			if fb.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", fb.IsCorrect, tt.wantCorrect)
			}
		})
	}
}

func TestTypedCheckerFromTargetDirection(t *testing.T) {
	// Translating back to English: the typed answer is compared against the
	// English side.
	q := model.Question{
		ID:            31,
		Type:          model.TypeCompleteTranslation,
		Words:         []model.Word{word(5, "hello", "Sawubona")},
		SentenceWords: model.IDList{5},
		Direction:     "from_target",
	}
	chk, _ := New(q, "zu")

	if fb := chk.Check(Answer{TypedText: "hello"}); !fb.IsCorrect {
		t.Error("expected english answer to be correct for from_target")
	}
	if fb := chk.Check(Answer{TypedText: "Sawubona"}); fb.IsCorrect {
		t.Error("expected target-language answer to be incorrect for from_target")
	}
}

func TestTypedCheckerMissingTargetWord(t *testing.T) {
	q := model.Question{ID: 32, Type: model.TypeTypeWhatYouHear}
	chk, _ := New(q, "zu")
	fb := chk.Check(Answer{TypedText: "anything"})
	if !fb.IsChecked || fb.IsCorrect {
		t.Errorf("expected checked incorrect, got checked=%v correct=%v", fb.IsChecked, fb.IsCorrect)
	}
}

func TestMatchChecker(t *testing.T) {
	q := model.Question{
		ID:      40,
		Type:    model.TypeMatchPairs,
		Words:   []model.Word{word(1, "dog", "inja"), word(2, "cat", "ikati"), word(3, "bird", "inyoni")},
		Options: model.IDList{1, 2, 3},
	}
	chk, err := New(q, "zu")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		pairs       []MatchedPair
		wantChecked bool
		wantCorrect bool
	}{
		{"no pairs", nil, false, false},
		{"partial pairs", []MatchedPair{{1, 1}, {2, 2}}, false, false},
		{"all matched", []MatchedPair{{1, 1}, {2, 2}, {3, 3}}, true, true},
		{"one mismatch", []MatchedPair{{1, 1}, {2, 3}, {3, 2}}, true, false},
		{"duplicate left", []MatchedPair{{1, 1}, {1, 1}, {2, 2}}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := chk.Check(Answer{Pairs: tt.pairs})
			if fb.IsChecked != tt.wantChecked {
				t.Errorf("IsChecked = %v, want %v", fb.IsChecked, tt.wantChecked)
			}
			if fb.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", fb.IsCorrect, tt.wantCorrect)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sawubona", "sawubona"},
		{"  sawuBONA  ", "sawubona"},
		{"ngi  bona   wena", "ngi bona wena"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
