package service

import (
	"fmt"
	"io"

	"github.com/fundalabs/funda/internal/dto"
	"github.com/fundalabs/funda/internal/importer"
	"github.com/fundalabs/funda/internal/model"
	"github.com/fundalabs/funda/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminLessonService interface {
	CreateLesson(req dto.LessonCreateDTO) (*dto.LessonResponseDTO, error)
	CreateWord(req dto.WordCreateDTO) (uint, error)
	ImportSpreadsheet(r io.Reader) (*dto.ImportResultDTO, error)
	SetUnitResource(unitID uint, req dto.UnitResourceDTO) error
}

type adminLessonService struct {
	lessonRepo   repository.LessonRepository
	wordRepo     repository.WordRepository
	resourceRepo repository.ResourceRepository
	importer     *importer.Importer
}

func NewAdminLessonService(
	lessonRepo repository.LessonRepository,
	wordRepo repository.WordRepository,
	resourceRepo repository.ResourceRepository,
) AdminLessonService {
	return &adminLessonService{
		lessonRepo:   lessonRepo,
		wordRepo:     wordRepo,
		resourceRepo: resourceRepo,
		importer:     importer.New(lessonRepo, wordRepo),
	}
}

func (s *adminLessonService) CreateLesson(req dto.LessonCreateDTO) (*dto.LessonResponseDTO, error) {
	lesson := model.Lesson{
		UnitID:      req.UnitID,
		Title:       req.Title,
		Language:    req.Language,
		LessonOrder: req.LessonOrder,
	}

	for _, qReq := range req.Questions {
		words, err := s.wordRepo.FindByIDs(qReq.WordIDs)
		if err != nil {
			return nil, fmt.Errorf("resolving words for question order %d: %w", qReq.QuestionOrder, err)
		}
		if len(words) != len(qReq.WordIDs) {
			return nil, fmt.Errorf("question order %d references unknown word IDs", qReq.QuestionOrder)
		}
		question := model.Question{
			Type:          model.QuestionType(qReq.Type),
			QuestionOrder: qReq.QuestionOrder,
			Words:         words,
			Options:       model.IDList(qReq.Options),
			CorrectOption: qReq.CorrectOption,
			BlankIndex:    qReq.BlankIndex,
			SentenceWords: model.IDList(qReq.SentenceWords),
			Direction:     qReq.Direction,
			MatchType:     qReq.MatchType,
		}
		lesson.Questions = append(lesson.Questions, question)
	}

	if err := s.lessonRepo.Create(&lesson); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create lesson")
		return nil, fmt.Errorf("error creating lesson: %w", err)
	}

	resp := &dto.LessonResponseDTO{
		ID:          lesson.ID,
		UnitID:      lesson.UnitID,
		Title:       lesson.Title,
		Language:    lesson.Language,
		LessonOrder: lesson.LessonOrder,
		Questions:   QuestionsToDTO(lesson.Questions),
		CreatedAt:   lesson.CreatedAt,
	}
	return resp, nil
}

func (s *adminLessonService) CreateWord(req dto.WordCreateDTO) (uint, error) {
	word := model.Word{
		Image:        req.Image,
		Audio:        model.StringMap(req.Audio),
		Translations: model.StringMap(req.Translations),
	}
	if err := s.wordRepo.Create(&word); err != nil {
		log.Error().Err(err).Msg("Failed to create word")
		return 0, fmt.Errorf("error creating word: %w", err)
	}
	return word.ID, nil
}

func (s *adminLessonService) ImportSpreadsheet(r io.Reader) (*dto.ImportResultDTO, error) {
	result, err := s.importer.Import(r)
	if err != nil {
		return nil, err
	}
	return &dto.ImportResultDTO{
		Lessons:   result.Lessons,
		Questions: result.Questions,
		Words:     result.Words,
		Warnings:  result.Warnings,
	}, nil
}

func (s *adminLessonService) SetUnitResource(unitID uint, req dto.UnitResourceDTO) error {
	resource := &model.UnitResource{
		UnitID:     unitID,
		Language:   req.Language,
		Downloaded: req.Downloaded,
	}
	if err := s.resourceRepo.Upsert(resource); err != nil {
		log.Error().Err(err).Uint("unitID", unitID).Str("language", req.Language).Msg("Failed to set unit resource flag")
		return fmt.Errorf("error setting resource flag for unit %d: %w", unitID, err)
	}
	return nil
}
