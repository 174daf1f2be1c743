package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"turmalink/backend/internal/model"
)

// StudentInvitationRepository is the student-invitation data-access
// interface. Mirrors ProfessorInvitationRepository.
type StudentInvitationRepository interface {
	Create(ctx context.Context, invitation *model.StudentInvitation) error
	GetByID(ctx context.Context, id string) (*model.StudentInvitation, error)
	GetByIDForUpdate(ctx context.Context, id string) (*model.StudentInvitation, error)
	FindByClassAndEmail(ctx context.Context, classID, email string) (*model.StudentInvitation, error)
	UpdateStatusIfPending(ctx context.Context, id, status string, respondedAt time.Time) (int64, error)
	List(ctx context.Context) ([]model.StudentInvitation, error)
}

type studentInvitationRepo struct {
	db *gorm.DB
}

// NewStudentInvitationRepo creates the gorm-backed
// StudentInvitationRepository.
func NewStudentInvitationRepo(db *gorm.DB) StudentInvitationRepository {
	return &studentInvitationRepo{db: db}
}

func (r *studentInvitationRepo) Create(ctx context.Context, invitation *model.StudentInvitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *studentInvitationRepo) GetByID(ctx context.Context, id string) (*model.StudentInvitation, error) {
	var invitation model.StudentInvitation
	err := r.db.WithContext(ctx).
		Where("invitation_id = ?", id).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *studentInvitationRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.StudentInvitation, error) {
	var invitation model.StudentInvitation
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("invitation_id = ?", id).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *studentInvitationRepo) FindByClassAndEmail(ctx context.Context, classID, email string) (*model.StudentInvitation, error) {
	var invitation model.StudentInvitation
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND invited_email = ?", classID, email).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *studentInvitationRepo) UpdateStatusIfPending(ctx context.Context, id, status string, respondedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.StudentInvitation{}).
		Where("invitation_id = ? AND status = ?", id, model.InvitationStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": respondedAt,
		})
	return result.RowsAffected, result.Error
}

func (r *studentInvitationRepo) List(ctx context.Context) ([]model.StudentInvitation, error) {
	var invitations []model.StudentInvitation
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}
