package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"turmalink/backend/internal/model"
)

// ProfessorInvitationRepository is the professor-invitation data-access
// interface.
type ProfessorInvitationRepository interface {
	Create(ctx context.Context, invitation *model.ProfessorInvitation) error
	GetByID(ctx context.Context, id string) (*model.ProfessorInvitation, error)
	// GetByIDForUpdate locks the invitation row (SELECT ... FOR UPDATE).
	// Must be called on a transaction-scoped Repository.
	GetByIDForUpdate(ctx context.Context, id string) (*model.ProfessorInvitation, error)
	FindByUnitAndEmail(ctx context.Context, unitID, email string) (*model.ProfessorInvitation, error)
	// UpdateStatusIfPending transitions the row only if it is still pending
	// and reports how many rows were touched; a zero count means another
	// responder already resolved it.
	UpdateStatusIfPending(ctx context.Context, id, status string, respondedAt time.Time) (int64, error)
	List(ctx context.Context) ([]model.ProfessorInvitation, error)
}

type professorInvitationRepo struct {
	db *gorm.DB
}

// NewProfessorInvitationRepo creates the gorm-backed
// ProfessorInvitationRepository.
func NewProfessorInvitationRepo(db *gorm.DB) ProfessorInvitationRepository {
	return &professorInvitationRepo{db: db}
}

func (r *professorInvitationRepo) Create(ctx context.Context, invitation *model.ProfessorInvitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *professorInvitationRepo) GetByID(ctx context.Context, id string) (*model.ProfessorInvitation, error) {
	var invitation model.ProfessorInvitation
	err := r.db.WithContext(ctx).
		Where("invitation_id = ?", id).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *professorInvitationRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.ProfessorInvitation, error) {
	var invitation model.ProfessorInvitation
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("invitation_id = ?", id).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *professorInvitationRepo) FindByUnitAndEmail(ctx context.Context, unitID, email string) (*model.ProfessorInvitation, error) {
	var invitation model.ProfessorInvitation
	err := r.db.WithContext(ctx).
		Where("unit_id = ? AND invited_email = ?", unitID, email).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *professorInvitationRepo) UpdateStatusIfPending(ctx context.Context, id, status string, respondedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ProfessorInvitation{}).
		Where("invitation_id = ? AND status = ?", id, model.InvitationStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": respondedAt,
		})
	return result.RowsAffected, result.Error
}

func (r *professorInvitationRepo) List(ctx context.Context) ([]model.ProfessorInvitation, error) {
	var invitations []model.ProfessorInvitation
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}
