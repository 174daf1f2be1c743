package repository

import (
	"context"

	"gorm.io/gorm"

	"turmalink/backend/internal/model"
)

// MessageRepository is the message data-access interface.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	GetByID(ctx context.Context, id string) (*model.Message, error)
	// MarkReadIfSent transitions sent → read in one conditional update and
	// reports how many rows were touched; a zero count means the message was
	// already past sent.
	MarkReadIfSent(ctx context.Context, id string) (int64, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]model.Message, error)
	ListByInvite(ctx context.Context, inviteID string) ([]model.Message, error)
}

type messageRepo struct {
	db *gorm.DB
}

// NewMessageRepo creates the gorm-backed MessageRepository.
func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepo) GetByID(ctx context.Context, id string) (*model.Message, error) {
	var message model.Message
	err := r.db.WithContext(ctx).
		Where("message_id = ?", id).
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepo) MarkReadIfSent(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("message_id = ? AND status = ?", id, model.MessageStatusSent).
		Update("status", model.MessageStatusRead)
	return result.RowsAffected, result.Error
}

func (r *messageRepo) ListByRecipient(ctx context.Context, recipientID string) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Invite").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepo) ListByInvite(ctx context.Context, inviteID string) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("invite_id = ?", inviteID).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
