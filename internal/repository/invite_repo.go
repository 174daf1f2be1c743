package repository

import (
	"context"

	"gorm.io/gorm"

	"turmalink/backend/internal/model"
)

// InviteRepository is the invite-envelope data-access interface.
type InviteRepository interface {
	Create(ctx context.Context, invite *model.Invite) error
	GetByID(ctx context.Context, id string) (*model.Invite, error)
	List(ctx context.Context) ([]model.Invite, error)
}

type inviteRepo struct {
	db *gorm.DB
}

// NewInviteRepo creates the gorm-backed InviteRepository.
func NewInviteRepo(db *gorm.DB) InviteRepository {
	return &inviteRepo{db: db}
}

func (r *inviteRepo) Create(ctx context.Context, invite *model.Invite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *inviteRepo) GetByID(ctx context.Context, id string) (*model.Invite, error) {
	var invite model.Invite
	err := r.db.WithContext(ctx).
		Preload("ProfessorInvitation").
		Preload("StudentInvitation").
		Where("invite_id = ?", id).
		First(&invite).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *inviteRepo) List(ctx context.Context) ([]model.Invite, error) {
	var invites []model.Invite
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}
