package importer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fundalabs/funda/internal/model"
	"github.com/xuri/excelize/v2"
)

type fakeLessonRepo struct {
	created []*model.Lesson
}

func (f *fakeLessonRepo) Create(lesson *model.Lesson) error {
	f.created = append(f.created, lesson)
	return nil
}

func (f *fakeLessonRepo) FindByID(id uint) (*model.Lesson, error)              { return nil, nil }
func (f *fakeLessonRepo) FindByIDWithQuestions(id uint) (*model.Lesson, error) { return nil, nil }
func (f *fakeLessonRepo) FindAllWithQuestionCount() ([]struct {
	model.Lesson
	QuestionCount int
}, error) {
	return nil, nil
}

type fakeWordRepo struct {
	nextID uint
}

func (f *fakeWordRepo) Create(word *model.Word) error {
	f.nextID++
	word.ID = f.nextID
	return nil
}

func (f *fakeWordRepo) CreateBatch(words []*model.Word) error {
	for _, w := range words {
		f.Create(w)
	}
	return nil
}

func (f *fakeWordRepo) FindByID(id uint) (*model.Word, error)      { return nil, nil }
func (f *fakeWordRepo) FindByIDs(ids []uint) ([]model.Word, error) { return nil, nil }

func sheetBytes(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	header := []interface{}{"Lesson", "Unit", "Language", "English", "Target", "Audio", "Type"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatal(err)
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestImportGroupsRowsIntoLessons(t *testing.T) {
	lessonRepo := &fakeLessonRepo{}
	wordRepo := &fakeWordRepo{}
	im := New(lessonRepo, wordRepo)

	buf := sheetBytes(t, [][]interface{}{
		{"Greetings", "1", "zu", "hello", "Sawubona", "sawubona.mp3", ""},
		{"Greetings", "1", "zu", "goodbye", "Hamba kahle", "", "fill_in_blank"},
		{"Animals", "2", "zu", "dog", "inja", "", ""},
	})

	result, err := im.Import(buf)
	if err != nil {
		t.Fatal(err)
	}

	if result.Lessons != 2 || result.Questions != 3 || result.Words != 3 {
		t.Fatalf("result = %+v, want 2 lessons, 3 questions, 3 words", result)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("warnings = %v, want none", result.Warnings)
	}

	if len(lessonRepo.created) != 2 {
		t.Fatalf("created %d lessons, want 2", len(lessonRepo.created))
	}
	greetings := lessonRepo.created[0]
	if greetings.Title != "Greetings" || greetings.UnitID != 1 || len(greetings.Questions) != 2 {
		t.Fatalf("unexpected first lesson: %+v", greetings)
	}
	if greetings.Questions[0].Type != model.TypeCompleteTranslation {
		t.Errorf("default question type = %q", greetings.Questions[0].Type)
	}
	if greetings.Questions[1].Type != model.TypeFillInBlank {
		t.Errorf("explicit question type = %q", greetings.Questions[1].Type)
	}
	if greetings.Questions[0].QuestionOrder != 1 || greetings.Questions[1].QuestionOrder != 2 {
		t.Error("question order must follow row order")
	}

	firstWord := greetings.Questions[0].Words[0]
	if firstWord.Translations["en"] != "hello" || firstWord.Translations["zu"] != "Sawubona" {
		t.Errorf("unexpected translations: %+v", firstWord.Translations)
	}
	if firstWord.Audio["zu"] != "sawubona.mp3" {
		t.Errorf("unexpected audio: %+v", firstWord.Audio)
	}
}

func TestImportBadRowsBecomeWarnings(t *testing.T) {
	lessonRepo := &fakeLessonRepo{}
	wordRepo := &fakeWordRepo{}
	im := New(lessonRepo, wordRepo)

	buf := sheetBytes(t, [][]interface{}{
		{"Greetings", "1", "zu", "hello", "Sawubona", "", ""},
		{"Greetings", "not-a-number", "zu", "goodbye", "Hamba kahle", "", ""},
		{"", "1", "zu", "dog", "inja", "", ""},
		{"Greetings", "1", "zu", "cat", "ikati", "", "guess_the_word"},
	})

	result, err := im.Import(buf)
	if err != nil {
		t.Fatal(err)
	}

	// Two skipped rows plus one unknown-type fallback.
	if len(result.Warnings) != 3 {
		t.Fatalf("warnings = %v, want 3", result.Warnings)
	}
	if result.Lessons != 1 || result.Questions != 2 || result.Words != 2 {
		t.Fatalf("result = %+v, want 1 lesson, 2 questions, 2 words", result)
	}
}

func TestImportEmptySheetFails(t *testing.T) {
	im := New(&fakeLessonRepo{}, &fakeWordRepo{})
	if _, err := im.Import(sheetBytes(t, nil)); err == nil {
		t.Fatal("expected error for a sheet with no data rows")
	}
}

func TestImportGarbageInputFails(t *testing.T) {
	im := New(&fakeLessonRepo{}, &fakeWordRepo{})
	if _, err := im.Import(bytes.NewReader([]byte("not a spreadsheet"))); err == nil {
		t.Fatal("expected error for non-xlsx input")
	}
}
