package repository

import (
	"github.com/fundalabs/funda/internal/model"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *model.QuestionReport) error
	FindByQuestionID(questionID uint) ([]model.QuestionReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *model.QuestionReport) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) FindByQuestionID(questionID uint) ([]model.QuestionReport, error) {
	var reports []model.QuestionReport
	err := r.db.Where("question_id = ?", questionID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
