package repository

import (
	"errors"

	"github.com/fundalabs/funda/internal/model"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	Upsert(resource *model.UnitResource) error
	// Downloaded reports the advisory offline-availability flag for a unit
	// and language. Missing rows read as false.
	Downloaded(unitID uint, language string) (bool, error)
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Upsert(resource *model.UnitResource) error {
	var existing model.UnitResource
	err := r.db.Where("unit_id = ? AND language = ?", resource.UnitID, resource.Language).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(resource).Error
	}
	if err != nil {
		return err
	}
	existing.Downloaded = resource.Downloaded
	return r.db.Save(&existing).Error
}

func (r *resourceRepository) Downloaded(unitID uint, language string) (bool, error) {
	var resource model.UnitResource
	err := r.db.Where("unit_id = ? AND language = ?", unitID, language).
		First(&resource).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return resource.Downloaded, nil
}
