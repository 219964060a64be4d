package repository

import (
	"github.com/fundalabs/funda/internal/model"
	"gorm.io/gorm"
)

type LessonRepository interface {
	Create(lesson *model.Lesson) error
	FindByID(id uint) (*model.Lesson, error)
	FindByIDWithQuestions(id uint) (*model.Lesson, error)
	FindAllWithQuestionCount() ([]struct {
		model.Lesson
		QuestionCount int
	}, error)
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(lesson *model.Lesson) error {
	// GORM creates associated questions (and question_words rows) when
	// lesson.Questions is populated.
	return r.db.Create(lesson).Error
}

func (r *lessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.First(&lesson, id).Error
	return &lesson, err
}

func (r *lessonRepository) FindByIDWithQuestions(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.question_order ASC")
	}).Preload("Questions.Words").First(&lesson, id).Error
	return &lesson, err
}

func (r *lessonRepository) FindAllWithQuestionCount() ([]struct {
	model.Lesson
	QuestionCount int
}, error) {
	var results []struct {
		model.Lesson
		QuestionCount int
	}
	err := r.db.Model(&model.Lesson{}).
		Select("lessons.*, (SELECT COUNT(*) FROM questions WHERE questions.lesson_id = lessons.id AND questions.deleted_at IS NULL) as question_count").
		Where("lessons.deleted_at IS NULL").
		Order("lessons.lesson_order ASC").
		Scan(&results).Error
	return results, err
}
