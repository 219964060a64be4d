package service

import (
	"fmt"

	"github.com/fundalabs/funda/internal/dto"
	"github.com/fundalabs/funda/internal/model"
	"github.com/fundalabs/funda/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// LearnerService backs the learner-facing gateway operations: points,
// progress, reports and history.
type LearnerService interface {
	GetLearner(learnerID uint) (*dto.LearnerResponseDTO, error)
	IncrementPoints(learnerID uint, req dto.PointsIncrementDTO) error
	UpdateProgress(learnerID uint, req dto.ProgressUpdateDTO) error
	ReportQuestion(questionID uint, req dto.ReportQuestionDTO) error
	GetProgress(learnerID uint) ([]dto.ProgressResponseDTO, error)
	GetHistory(learnerID uint) ([]dto.SessionRecordDTO, error)
}

type learnerService struct {
	learnerRepo  repository.LearnerRepository
	progressRepo repository.ProgressRepository
	reportRepo   repository.ReportRepository
	recordRepo   repository.SessionRecordRepository
	questionRepo repository.QuestionRepository
}

func NewLearnerService(
	learnerRepo repository.LearnerRepository,
	progressRepo repository.ProgressRepository,
	reportRepo repository.ReportRepository,
	recordRepo repository.SessionRecordRepository,
	questionRepo repository.QuestionRepository,
) LearnerService {
	return &learnerService{
		learnerRepo:  learnerRepo,
		progressRepo: progressRepo,
		reportRepo:   reportRepo,
		recordRepo:   recordRepo,
		questionRepo: questionRepo,
	}
}

func (s *learnerService) GetLearner(learnerID uint) (*dto.LearnerResponseDTO, error) {
	learner, err := s.learnerRepo.FindByID(learnerID)
	if err != nil {
		return nil, fmt.Errorf("learner not found with ID %d: %w", learnerID, err)
	}
	var resp dto.LearnerResponseDTO
	if err := copier.Copy(&resp, learner); err != nil {
		log.Error().Err(err).Msg("Failed to copy Learner model to DTO")
		return nil, fmt.Errorf("error preparing learner response: %w", err)
	}
	return &resp, nil
}

func (s *learnerService) IncrementPoints(learnerID uint, req dto.PointsIncrementDTO) error {
	lessonID := req.LessonID
	entry := &model.PointsEntry{
		LessonID:    &lessonID,
		Points:      req.Points,
		StreakBonus: req.Streak != nil,
	}
	if err := s.learnerRepo.AddPoints(learnerID, entry); err != nil {
		log.Error().Err(err).Uint("learnerID", learnerID).Msg("Failed to increment points")
		return fmt.Errorf("error incrementing points for learner %d: %w", learnerID, err)
	}
	if req.Streak != nil {
		if err := s.learnerRepo.UpdateBestStreak(learnerID, *req.Streak); err != nil {
			log.Error().Err(err).Uint("learnerID", learnerID).Msg("Failed to update best streak")
			return fmt.Errorf("error updating best streak for learner %d: %w", learnerID, err)
		}
	}
	return nil
}

func (s *learnerService) UpdateProgress(learnerID uint, req dto.ProgressUpdateDTO) error {
	progress := &model.LessonProgress{
		LearnerID: learnerID,
		LessonID:  req.LessonID,
		Language:  req.Language,
		Status:    req.Status,
	}
	if err := s.progressRepo.Upsert(progress); err != nil {
		log.Error().Err(err).Uint("learnerID", learnerID).Uint("lessonID", req.LessonID).Msg("Failed to upsert lesson progress")
		return fmt.Errorf("error updating progress for learner %d: %w", learnerID, err)
	}
	return nil
}

func (s *learnerService) ReportQuestion(questionID uint, req dto.ReportQuestionDTO) error {
	// Confirm the question exists so reports always point at real content.
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		return fmt.Errorf("question not found with ID %d: %w", questionID, err)
	}
	report := &model.QuestionReport{
		QuestionID: questionID,
		LearnerID:  req.LearnerID,
		Reason:     req.Reason,
	}
	if err := s.reportRepo.Create(report); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to create question report")
		return fmt.Errorf("error reporting question %d: %w", questionID, err)
	}
	return nil
}

func (s *learnerService) GetProgress(learnerID uint) ([]dto.ProgressResponseDTO, error) {
	rows, err := s.progressRepo.FindAllByLearner(learnerID)
	if err != nil {
		return nil, fmt.Errorf("error fetching progress for learner %d: %w", learnerID, err)
	}
	dtos := make([]dto.ProgressResponseDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, dto.ProgressResponseDTO{
			LessonID:  row.LessonID,
			Language:  row.Language,
			Status:    row.Status,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return dtos, nil
}

func (s *learnerService) GetHistory(learnerID uint) ([]dto.SessionRecordDTO, error) {
	records, err := s.recordRepo.FindAllByLearner(learnerID)
	if err != nil {
		return nil, fmt.Errorf("error fetching session history for learner %d: %w", learnerID, err)
	}
	var dtos []dto.SessionRecordDTO
	for _, record := range records {
		var out dto.SessionRecordDTO
		if err := copier.Copy(&out, &record); err != nil {
			log.Error().Err(err).Str("sessionID", record.SessionID).Msg("Failed to copy session record to DTO")
			continue
		}
		dtos = append(dtos, out)
	}
	return dtos, nil
}
