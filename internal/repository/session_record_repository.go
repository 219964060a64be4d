package repository

import (
	"github.com/fundalabs/funda/internal/model"
	"gorm.io/gorm"
)

type SessionRecordRepository interface {
	Create(record *model.SessionRecord) error
	FindBySessionID(sessionID string) (*model.SessionRecord, error)
	FindAllByLearner(learnerID uint) ([]model.SessionRecord, error)
}

type sessionRecordRepository struct {
	db *gorm.DB
}

func NewSessionRecordRepository(db *gorm.DB) SessionRecordRepository {
	return &sessionRecordRepository{db: db}
}

func (r *sessionRecordRepository) Create(record *model.SessionRecord) error {
	return r.db.Create(record).Error
}

func (r *sessionRecordRepository) FindBySessionID(sessionID string) (*model.SessionRecord, error) {
	var record model.SessionRecord
	if err := r.db.Where("session_id = ?", sessionID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *sessionRecordRepository) FindAllByLearner(learnerID uint) ([]model.SessionRecord, error) {
	var records []model.SessionRecord
	err := r.db.Where("learner_id = ?", learnerID).
		Order("ended_at DESC").
		Find(&records).Error
	return records, err
}
