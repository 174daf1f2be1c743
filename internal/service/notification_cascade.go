package service

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"turmalink/backend/internal/model"
	"turmalink/backend/internal/repository"
)

// NotificationCascade derives the notification rows for a freshly created
// invitation. Both hooks run on the caller's transaction-scoped Repository so
// the invitation and its notifications are a single atomic unit.
//
// The rules are asymmetric on purpose:
//
//   - The invite envelope is ALWAYS created, one per invitation.
//   - The inbox message is created only when both endpoints resolve to user
//     accounts. For professor invitations the sender is the unit's owning
//     institution user and the recipient is the user behind the invited
//     email; if either lookup fails the message is skipped and the
//     invitation still commits.
type NotificationCascade struct {
	logger *zap.Logger
}

// NewNotificationCascade creates the cascade.
func NewNotificationCascade(logger *zap.Logger) *NotificationCascade {
	return &NotificationCascade{logger: logger}
}

// OnProfessorInvitation creates the envelope and, when resolvable, the inbox
// message for a professor invitation.
func (c *NotificationCascade) OnProfessorInvitation(ctx context.Context, repo *repository.Repository, inv *model.ProfessorInvitation) error {
	envelope := model.NewProfessorInvite(inv.InvitationID)
	if err := repo.Invite.Create(ctx, envelope); err != nil {
		return err
	}

	senderID, ok, err := c.resolveUnitOwner(ctx, repo, inv.UnitID)
	if err != nil {
		return err
	}
	if !ok {
		c.logger.Info("notification message skipped, sender unresolved",
			zap.String("invitation_id", inv.InvitationID),
			zap.String("unit_id", inv.UnitID),
		)
		return nil
	}

	recipientID, ok, err := c.resolveRecipient(ctx, repo, inv.InvitedEmail)
	if err != nil {
		return err
	}
	if !ok {
		c.logger.Info("notification message skipped, recipient unresolved",
			zap.String("invitation_id", inv.InvitationID),
			zap.String("invited_email", inv.InvitedEmail),
		)
		return nil
	}

	message := &model.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Kind:        model.MessageKindInvite,
		Status:      model.MessageStatusSent,
		InviteID:    &envelope.InviteID,
	}
	return repo.Message.Create(ctx, message)
}

// OnStudentInvitation creates the envelope and, when resolvable, the inbox
// message for a student invitation. The sender is the user behind the
// professor who owns the inviting class.
func (c *NotificationCascade) OnStudentInvitation(ctx context.Context, repo *repository.Repository, inv *model.StudentInvitation) error {
	envelope := model.NewStudentInvite(inv.InvitationID)
	if err := repo.Invite.Create(ctx, envelope); err != nil {
		return err
	}

	senderID, ok, err := c.resolveClassOwner(ctx, repo, inv.ClassID)
	if err != nil {
		return err
	}
	if !ok {
		c.logger.Info("notification message skipped, sender unresolved",
			zap.String("invitation_id", inv.InvitationID),
			zap.String("class_id", inv.ClassID),
		)
		return nil
	}

	recipientID, ok, err := c.resolveRecipient(ctx, repo, inv.InvitedEmail)
	if err != nil {
		return err
	}
	if !ok {
		// expected whenever an unregistered email is invited
		c.logger.Info("notification message skipped, recipient unresolved",
			zap.String("invitation_id", inv.InvitationID),
			zap.String("invited_email", inv.InvitedEmail),
		)
		return nil
	}

	message := &model.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Kind:        model.MessageKindInvite,
		Status:      model.MessageStatusSent,
		InviteID:    &envelope.InviteID,
	}
	return repo.Message.Create(ctx, message)
}

// resolveUnitOwner walks unit → institution → owning user.
func (c *NotificationCascade) resolveUnitOwner(ctx context.Context, repo *repository.Repository, unitID string) (string, bool, error) {
	unit, err := repo.Unit.GetByID(ctx, unitID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	institution, err := repo.Institution.GetByID(ctx, unit.InstitutionID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return institution.UserID, true, nil
}

// resolveClassOwner walks class → professor → owning user.
func (c *NotificationCascade) resolveClassOwner(ctx context.Context, repo *repository.Repository, classID string) (string, bool, error) {
	class, err := repo.Class.GetByID(ctx, classID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	professor, err := repo.Professor.GetByID(ctx, class.ProfessorID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return professor.UserID, true, nil
}

// resolveRecipient maps the invited email to a user id when registered.
func (c *NotificationCascade) resolveRecipient(ctx context.Context, repo *repository.Repository, email string) (string, bool, error) {
	user, err := repo.User.GetByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return user.UserID, true, nil
}
