package gateway

import (
	"context"
	"fmt"

	"github.com/fundalabs/funda/internal/model"
	"github.com/fundalabs/funda/internal/repository"
)

// localGateway serves the ContentGateway contract straight from the database.
// This is the default wiring when no upstream backend is configured.
type localGateway struct {
	questionRepo repository.QuestionRepository
	learnerRepo  repository.LearnerRepository
	progressRepo repository.ProgressRepository
	reportRepo   repository.ReportRepository
}

func NewLocalGateway(
	questionRepo repository.QuestionRepository,
	learnerRepo repository.LearnerRepository,
	progressRepo repository.ProgressRepository,
	reportRepo repository.ReportRepository,
) ContentGateway {
	return &localGateway{
		questionRepo: questionRepo,
		learnerRepo:  learnerRepo,
		progressRepo: progressRepo,
		reportRepo:   reportRepo,
	}
}

func (g *localGateway) LessonQuestions(ctx context.Context, lessonID uint) ([]model.Question, error) {
	questions, err := g.questionRepo.FindByLessonID(lessonID)
	if err != nil {
		return nil, fmt.Errorf("loading questions for lesson %d: %w", lessonID, err)
	}
	return questions, nil
}

func (g *localGateway) IncrementPoints(ctx context.Context, learnerID uint, inc PointsIncrement) error {
	lessonID := inc.LessonID
	entry := &model.PointsEntry{
		LessonID:    &lessonID,
		Points:      inc.Points,
		StreakBonus: inc.Streak != nil,
	}
	if err := g.learnerRepo.AddPoints(learnerID, entry); err != nil {
		return fmt.Errorf("incrementing points for learner %d: %w", learnerID, err)
	}
	if inc.Streak != nil {
		if err := g.learnerRepo.UpdateBestStreak(learnerID, *inc.Streak); err != nil {
			return fmt.Errorf("updating best streak for learner %d: %w", learnerID, err)
		}
	}
	return nil
}

func (g *localGateway) UpdateProgress(ctx context.Context, learnerID uint, upd ProgressUpdate) error {
	progress := &model.LessonProgress{
		LearnerID: learnerID,
		LessonID:  upd.LessonID,
		Language:  upd.Language,
		Status:    upd.Status,
	}
	if err := g.progressRepo.Upsert(progress); err != nil {
		return fmt.Errorf("updating progress for learner %d: %w", learnerID, err)
	}
	return nil
}

func (g *localGateway) ReportQuestion(ctx context.Context, questionID uint, learnerID *uint, reason string) error {
	report := &model.QuestionReport{
		QuestionID: questionID,
		LearnerID:  learnerID,
		Reason:     reason,
	}
	if err := g.reportRepo.Create(report); err != nil {
		return fmt.Errorf("reporting question %d: %w", questionID, err)
	}
	return nil
}
