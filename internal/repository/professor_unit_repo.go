package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"turmalink/backend/internal/model"
)

// ProfessorUnitRepository is the affiliation data-access interface.
type ProfessorUnitRepository interface {
	// Upsert inserts the affiliation if absent; an existing row is left
	// untouched so a retried accept cannot duplicate it.
	Upsert(ctx context.Context, affiliation *model.ProfessorUnit) error
	Exists(ctx context.Context, unitID, professorID string) (bool, error)
	List(ctx context.Context) ([]model.ProfessorUnit, error)
}

type professorUnitRepo struct {
	db *gorm.DB
}

// NewProfessorUnitRepo creates the gorm-backed ProfessorUnitRepository.
func NewProfessorUnitRepo(db *gorm.DB) ProfessorUnitRepository {
	return &professorUnitRepo{db: db}
}

func (r *professorUnitRepo) Upsert(ctx context.Context, affiliation *model.ProfessorUnit) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(affiliation).Error
}

func (r *professorUnitRepo) Exists(ctx context.Context, unitID, professorID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProfessorUnit{}).
		Where("unit_id = ? AND professor_id = ?", unitID, professorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *professorUnitRepo) List(ctx context.Context) ([]model.ProfessorUnit, error) {
	var affiliations []model.ProfessorUnit
	err := r.db.WithContext(ctx).Find(&affiliations).Error
	if err != nil {
		return nil, err
	}
	return affiliations, nil
}
