package repository

import (
	"context"

	"gorm.io/gorm"

	"turmalink/backend/internal/model"
)

// UnitRepository is the unit data-access interface.
type UnitRepository interface {
	Create(ctx context.Context, unit *model.Unit) error
	GetByID(ctx context.Context, id string) (*model.Unit, error)
	ListByInstitution(ctx context.Context, institutionID string) ([]model.Unit, error)
	List(ctx context.Context) ([]model.Unit, error)
}

type unitRepo struct {
	db *gorm.DB
}

// NewUnitRepo creates the gorm-backed UnitRepository.
func NewUnitRepo(db *gorm.DB) UnitRepository {
	return &unitRepo{db: db}
}

func (r *unitRepo) Create(ctx context.Context, unit *model.Unit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *unitRepo) GetByID(ctx context.Context, id string) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", id).
		First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepo) ListByInstitution(ctx context.Context, institutionID string) ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.WithContext(ctx).
		Where("institution_id = ?", institutionID).
		Order("created_at").
		Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

func (r *unitRepo) List(ctx context.Context) ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}
