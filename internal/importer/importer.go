package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fundalabs/funda/internal/model"
	"github.com/fundalabs/funda/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Importer bulk-loads words and typed-answer questions from a spreadsheet.
// Expected sheet layout, one row per word, header on row 1:
//
//	A: lesson title     B: unit id      C: language code
//	D: english text     E: target text  F: audio filename (optional)
//	G: question type (optional, defaults to translate-family per word)
//
// Rows sharing a lesson title land in the same lesson, in row order.
type Importer struct {
	lessonRepo repository.LessonRepository
	wordRepo   repository.WordRepository
}

// Result summarizes one import run. Row-level failures become warnings, not
// errors: a bad row never aborts the sheet.
type Result struct {
	Lessons   int
	Questions int
	Words     int
	Warnings  []string
}

const sheetName = "Sheet1"

func New(lessonRepo repository.LessonRepository, wordRepo repository.WordRepository) *Importer {
	return &Importer{lessonRepo: lessonRepo, wordRepo: wordRepo}
}

// Import reads the spreadsheet and creates lessons, questions and words.
func (im *Importer) Import(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheetName)
	}

	result := &Result{}
	type lessonKey struct {
		title    string
		unitID   uint
		language string
	}
	lessons := make(map[lessonKey]*model.Lesson)
	order := make([]lessonKey, 0)

	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) < 5 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: too few columns, skipped", rowNum))
			continue
		}
		title := strings.TrimSpace(row[0])
		unitID, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 32)
		language := strings.TrimSpace(row[2])
		english := strings.TrimSpace(row[3])
		target := strings.TrimSpace(row[4])
		if title == "" || err != nil || language == "" || english == "" || target == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: missing required fields, skipped", rowNum))
			continue
		}

		word := &model.Word{
			Translations: model.StringMap{"en": english, language: target},
		}
		if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
			word.Audio = model.StringMap{language: strings.TrimSpace(row[5])}
		}
		if err := im.wordRepo.Create(word); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: creating word failed: %v", rowNum, err))
			continue
		}
		result.Words++

		qType := model.TypeCompleteTranslation
		if len(row) > 6 {
			if t := model.QuestionType(strings.TrimSpace(row[6])); t != "" {
				if !t.Valid() {
					result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: unknown question type %q, using %s", rowNum, t, qType))
				} else {
					qType = t
				}
			}
		}

		key := lessonKey{title: title, unitID: uint(unitID), language: language}
		lesson, ok := lessons[key]
		if !ok {
			lesson = &model.Lesson{
				UnitID:      key.unitID,
				Title:       key.title,
				Language:    key.language,
				LessonOrder: len(order) + 1,
			}
			lessons[key] = lesson
			order = append(order, key)
		}

		question := model.Question{
			Type:          qType,
			QuestionOrder: len(lesson.Questions) + 1,
			Words:         []model.Word{*word},
			SentenceWords: model.IDList{word.ID},
			Direction:     "to_target",
		}
		lesson.Questions = append(lesson.Questions, question)
	}

	for _, key := range order {
		lesson := lessons[key]
		if len(lesson.Questions) == 0 {
			continue
		}
		if err := im.lessonRepo.Create(lesson); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("lesson %q: create failed: %v", lesson.Title, err))
			continue
		}
		result.Lessons++
		result.Questions += len(lesson.Questions)
	}

	log.Info().Int("lessons", result.Lessons).Int("questions", result.Questions).Int("words", result.Words).Int("warnings", len(result.Warnings)).Msg("Spreadsheet import finished")
	return result, nil
}
