package service

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/model"
	"turmalink/backend/internal/repository"
)

var (
	ErrMessageNotFound         = stderrors.New("message not found")
	ErrMessageAlreadyRead      = stderrors.New("message already read")
	ErrMessageAlreadyResponded = stderrors.New("message already responded")
	ErrInviteNotFound          = stderrors.New("invite not found")
)

// MessageService exposes the inbox. Messages are created only by the
// notification cascade; callers can list, mark read, and pull the thread
// behind an invite envelope.
type MessageService interface {
	ListForUser(ctx context.Context, userID string) ([]dto.MessageResponse, error)
	MarkRead(ctx context.Context, messageID string) (*dto.MessageResponse, error)
	ListForInvite(ctx context.Context, inviteID string) (*dto.InviteThreadResponse, error)
}

type messageService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMessageService creates the MessageService.
func NewMessageService(repo *repository.Repository, logger *zap.Logger) MessageService {
	return &messageService{repo: repo, logger: logger}
}

func (s *messageService) ListForUser(ctx context.Context, userID string) ([]dto.MessageResponse, error) {
	messages, err := s.repo.Message.ListByRecipient(ctx, userID)
	if err != nil {
		s.logger.Error("list messages failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, *toMessageResponse(&messages[i]))
	}
	return out, nil
}

// MarkRead transitions sent → read. The transition is monotonic: a message
// already past sent is reported as such, never reverted.
func (s *messageService) MarkRead(ctx context.Context, messageID string) (*dto.MessageResponse, error) {
	affected, err := s.repo.Message.MarkReadIfSent(ctx, messageID)
	if err != nil {
		s.logger.Error("mark read failed", zap.String("message_id", messageID), zap.Error(err))
		return nil, err
	}

	message, err := s.repo.Message.GetByID(ctx, messageID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		s.logger.Error("load message failed", zap.String("message_id", messageID), zap.Error(err))
		return nil, err
	}

	if affected == 0 {
		switch message.Status {
		case model.MessageStatusRead:
			return nil, ErrMessageAlreadyRead
		case model.MessageStatusResponded:
			return nil, ErrMessageAlreadyResponded
		}
	}

	return toMessageResponse(message), nil
}

// ListForInvite returns the envelope and every message referencing it. A
// cascade that skipped the message leaves the thread empty, not absent.
func (s *messageService) ListForInvite(ctx context.Context, inviteID string) (*dto.InviteThreadResponse, error) {
	invite, err := s.repo.Invite.GetByID(ctx, inviteID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteNotFound
		}
		s.logger.Error("load invite failed", zap.String("invite_id", inviteID), zap.Error(err))
		return nil, err
	}

	messages, err := s.repo.Message.ListByInvite(ctx, inviteID)
	if err != nil {
		s.logger.Error("list invite messages failed", zap.String("invite_id", inviteID), zap.Error(err))
		return nil, err
	}

	resp := &dto.InviteThreadResponse{
		Invite:   *toInviteResponse(invite),
		Messages: make([]dto.MessageResponse, 0, len(messages)),
	}
	for i := range messages {
		resp.Messages = append(resp.Messages, *toMessageResponse(&messages[i]))
	}
	return resp, nil
}
