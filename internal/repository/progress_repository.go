package repository

import (
	"errors"

	"github.com/fundalabs/funda/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	// Upsert inserts or updates the (learner, lesson) progress row.
	Upsert(progress *model.LessonProgress) error
	FindByLearnerAndLesson(learnerID, lessonID uint) (*model.LessonProgress, error)
	FindAllByLearner(learnerID uint) ([]model.LessonProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Upsert(progress *model.LessonProgress) error {
	var existing model.LessonProgress
	err := r.db.Where("learner_id = ? AND lesson_id = ?", progress.LearnerID, progress.LessonID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(progress).Error
	}
	if err != nil {
		return err
	}
	// A completed lesson never reverts to in_progress.
	if existing.Status == model.ProgressCompleted && progress.Status != model.ProgressCompleted {
		return nil
	}
	existing.Status = progress.Status
	existing.Language = progress.Language
	return r.db.Save(&existing).Error
}

func (r *progressRepository) FindByLearnerAndLesson(learnerID, lessonID uint) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	err := r.db.Where("learner_id = ? AND lesson_id = ?", learnerID, lessonID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) FindAllByLearner(learnerID uint) ([]model.LessonProgress, error) {
	var rows []model.LessonProgress
	err := r.db.Where("learner_id = ?", learnerID).
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}
