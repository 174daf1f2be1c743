package repository

import (
	"context"

	"gorm.io/gorm"

	"turmalink/backend/internal/model"
)

// InstitutionRepository is the institution data-access interface.
type InstitutionRepository interface {
	Create(ctx context.Context, institution *model.Institution) error
	GetByID(ctx context.Context, id string) (*model.Institution, error)
	GetByUserID(ctx context.Context, userID string) (*model.Institution, error)
	List(ctx context.Context) ([]model.Institution, error)
}

type institutionRepo struct {
	db *gorm.DB
}

// NewInstitutionRepo creates the gorm-backed InstitutionRepository.
func NewInstitutionRepo(db *gorm.DB) InstitutionRepository {
	return &institutionRepo{db: db}
}

func (r *institutionRepo) Create(ctx context.Context, institution *model.Institution) error {
	return r.db.WithContext(ctx).Create(institution).Error
}

func (r *institutionRepo) GetByID(ctx context.Context, id string) (*model.Institution, error) {
	var institution model.Institution
	err := r.db.WithContext(ctx).
		Where("institution_id = ?", id).
		First(&institution).Error
	if err != nil {
		return nil, err
	}
	return &institution, nil
}

func (r *institutionRepo) GetByUserID(ctx context.Context, userID string) (*model.Institution, error) {
	var institution model.Institution
	err := r.db.WithContext(ctx).
		Preload("Units").
		Where("user_id = ?", userID).
		First(&institution).Error
	if err != nil {
		return nil, err
	}
	return &institution, nil
}

func (r *institutionRepo) List(ctx context.Context) ([]model.Institution, error) {
	var institutions []model.Institution
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&institutions).Error
	if err != nil {
		return nil, err
	}
	return institutions, nil
}
