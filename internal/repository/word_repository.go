package repository

import (
	"github.com/fundalabs/funda/internal/model"
	"gorm.io/gorm"
)

type WordRepository interface {
	Create(word *model.Word) error
	CreateBatch(words []*model.Word) error
	FindByID(id uint) (*model.Word, error)
	FindByIDs(ids []uint) ([]model.Word, error)
}

type wordRepository struct {
	db *gorm.DB
}

func NewWordRepository(db *gorm.DB) WordRepository {
	return &wordRepository{db: db}
}

func (r *wordRepository) Create(word *model.Word) error {
	return r.db.Create(word).Error
}

func (r *wordRepository) CreateBatch(words []*model.Word) error {
	if len(words) == 0 {
		return nil
	}
	return r.db.Create(words).Error
}

func (r *wordRepository) FindByID(id uint) (*model.Word, error) {
	var word model.Word
	if err := r.db.First(&word, id).Error; err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *wordRepository) FindByIDs(ids []uint) ([]model.Word, error) {
	var words []model.Word
	if err := r.db.Where("id IN ?", ids).Find(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}
