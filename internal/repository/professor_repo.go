package repository

import (
	"context"

	"gorm.io/gorm"

	"turmalink/backend/internal/model"
)

// ProfessorRepository is the professor-profile data-access interface.
type ProfessorRepository interface {
	Create(ctx context.Context, professor *model.Professor) error
	GetByID(ctx context.Context, id string) (*model.Professor, error)
	GetByUserID(ctx context.Context, userID string) (*model.Professor, error)
	List(ctx context.Context) ([]model.Professor, error)
}

type professorRepo struct {
	db *gorm.DB
}

// NewProfessorRepo creates the gorm-backed ProfessorRepository.
func NewProfessorRepo(db *gorm.DB) ProfessorRepository {
	return &professorRepo{db: db}
}

func (r *professorRepo) Create(ctx context.Context, professor *model.Professor) error {
	return r.db.WithContext(ctx).Create(professor).Error
}

func (r *professorRepo) GetByID(ctx context.Context, id string) (*model.Professor, error) {
	var professor model.Professor
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("professor_id = ?", id).
		First(&professor).Error
	if err != nil {
		return nil, err
	}
	return &professor, nil
}

func (r *professorRepo) GetByUserID(ctx context.Context, userID string) (*model.Professor, error) {
	var professor model.Professor
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&professor).Error
	if err != nil {
		return nil, err
	}
	return &professor, nil
}

func (r *professorRepo) List(ctx context.Context) ([]model.Professor, error) {
	var professors []model.Professor
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at").
		Find(&professors).Error
	if err != nil {
		return nil, err
	}
	return professors, nil
}
