package service

import (
	"fmt"

	"github.com/fundalabs/funda/internal/dto"
	"github.com/fundalabs/funda/internal/model"
	"github.com/fundalabs/funda/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type LessonService interface {
	GetAllLessons() ([]dto.LessonSummaryDTO, error)
	GetLessonDetails(lessonID uint) (*dto.LessonResponseDTO, error)
	// GetLessonQuestions serves the ordered question list a client loads
	// a lesson from.
	GetLessonQuestions(lessonID uint) ([]dto.QuestionResponseDTO, error)
}

type lessonService struct {
	lessonRepo   repository.LessonRepository
	questionRepo repository.QuestionRepository
}

func NewLessonService(lessonRepo repository.LessonRepository, questionRepo repository.QuestionRepository) LessonService {
	return &lessonService{lessonRepo: lessonRepo, questionRepo: questionRepo}
}

func (s *lessonService) GetAllLessons() ([]dto.LessonSummaryDTO, error) {
	lessonsWithCount, err := s.lessonRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list lessons with question count")
		return nil, fmt.Errorf("error fetching lessons: %w", err)
	}

	var dtos []dto.LessonSummaryDTO
	for _, lwc := range lessonsWithCount {
		dtos = append(dtos, dto.LessonSummaryDTO{
			ID:            lwc.Lesson.ID,
			UnitID:        lwc.Lesson.UnitID,
			Title:         lwc.Lesson.Title,
			Language:      lwc.Lesson.Language,
			LessonOrder:   lwc.Lesson.LessonOrder,
			QuestionCount: lwc.QuestionCount,
			CreatedAt:     lwc.Lesson.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *lessonService) GetLessonDetails(lessonID uint) (*dto.LessonResponseDTO, error) {
	lesson, err := s.lessonRepo.FindByIDWithQuestions(lessonID)
	if err != nil {
		log.Error().Err(err).Uint("lessonID", lessonID).Msg("Failed to get lesson details")
		return nil, fmt.Errorf("lesson not found with ID %d: %w", lessonID, err)
	}

	var resp dto.LessonResponseDTO
	if err := copier.Copy(&resp, lesson); err != nil {
		log.Error().Err(err).Msg("Failed to copy Lesson model to DTO")
		return nil, fmt.Errorf("error preparing lesson response: %w", err)
	}
	resp.Questions = QuestionsToDTO(lesson.Questions)
	return &resp, nil
}

func (s *lessonService) GetLessonQuestions(lessonID uint) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.FindByLessonID(lessonID)
	if err != nil {
		log.Error().Err(err).Uint("lessonID", lessonID).Msg("Failed to load lesson questions")
		return nil, fmt.Errorf("error fetching questions for lesson %d: %w", lessonID, err)
	}
	return QuestionsToDTO(questions), nil
}

// QuestionsToDTO maps question models to their wire shape. The JSONB-backed
// map and list columns are converted by hand; copier handles the rest.
func QuestionsToDTO(questions []model.Question) []dto.QuestionResponseDTO {
	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, QuestionToDTO(q))
	}
	return dtos
}

func QuestionToDTO(q model.Question) dto.QuestionResponseDTO {
	out := dto.QuestionResponseDTO{
		ID:            q.ID,
		LessonID:      q.LessonID,
		Type:          string(q.Type),
		QuestionOrder: q.QuestionOrder,
		Options:       q.Options,
		CorrectOption: q.CorrectOption,
		BlankIndex:    q.BlankIndex,
		SentenceWords: q.SentenceWords,
		Direction:     q.Direction,
		MatchType:     q.MatchType,
	}
	for _, w := range q.Words {
		out.Words = append(out.Words, dto.WordResponseDTO{
			ID:           w.ID,
			Image:        w.Image,
			Audio:        w.Audio,
			Translations: w.Translations,
		})
	}
	return out
}
