package repository

import (
	"github.com/fundalabs/funda/internal/model"
	"gorm.io/gorm"
)

type LearnerRepository interface {
	Create(learner *model.Learner) error
	FindByID(id uint) (*model.Learner, error)
	// AddPoints updates the learner total and appends a ledger entry in one
	// transaction.
	AddPoints(learnerID uint, entry *model.PointsEntry) error
	UpdateBestStreak(learnerID uint, streak int) error
	FindPointsEntries(learnerID uint) ([]model.PointsEntry, error)
}

type learnerRepository struct {
	db *gorm.DB
}

func NewLearnerRepository(db *gorm.DB) LearnerRepository {
	return &learnerRepository{db: db}
}

func (r *learnerRepository) Create(learner *model.Learner) error {
	return r.db.Create(learner).Error
}

func (r *learnerRepository) FindByID(id uint) (*model.Learner, error) {
	var learner model.Learner
	if err := r.db.First(&learner, id).Error; err != nil {
		return nil, err
	}
	return &learner, nil
}

func (r *learnerRepository) AddPoints(learnerID uint, entry *model.PointsEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Learner{}).
			Where("id = ?", learnerID).
			Update("points", gorm.Expr("points + ?", entry.Points))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		entry.LearnerID = learnerID
		return tx.Create(entry).Error
	})
}

func (r *learnerRepository) UpdateBestStreak(learnerID uint, streak int) error {
	return r.db.Model(&model.Learner{}).
		Where("id = ? AND best_streak < ?", learnerID, streak).
		Update("best_streak", streak).Error
}

func (r *learnerRepository) FindPointsEntries(learnerID uint) ([]model.PointsEntry, error) {
	var entries []model.PointsEntry
	err := r.db.Where("learner_id = ?", learnerID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
