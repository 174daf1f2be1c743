package service

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/model"
	"turmalink/backend/internal/repository"
	"turmalink/backend/pkg/errors"
)

// ── invitation errors ──

var (
	ErrUnitNotFound              = stderrors.New("unit not found")
	ErrClassNotFound             = stderrors.New("class not found")
	ErrInviteeNotRegistered      = stderrors.New("email does not belong to a registered user")
	ErrInviteeNotProfessor       = stderrors.New("user is not a professor")
	ErrInvitationNotFound        = stderrors.New("invitation not found")
	ErrInvitationAlreadyAccepted = stderrors.New("invitation already accepted")
	ErrInvitationAlreadyDeclined = stderrors.New("invitation already declined")
)

// errInvitationRace marks a conditional update that touched zero rows: a
// concurrent responder resolved the invitation first. Never escapes the
// service; callers see the terminal-state error instead.
var errInvitationRace = stderrors.New("invitation resolved concurrently")

// Invitation decisions.
const (
	DecisionAccept  = "accept"
	DecisionDecline = "decline"
)

// InvitationService owns the invitation state machine. Invitations and their
// notification rows are created only here, never directly by a caller.
type InvitationService interface {
	InviteProfessor(ctx context.Context, req *dto.InviteProfessorRequest, callerID string) (*dto.ProfessorInvitationResponse, error)
	InviteStudent(ctx context.Context, req *dto.InviteStudentRequest, callerID string) (*dto.StudentInvitationResponse, error)
	RespondToProfessorInvitation(ctx context.Context, invitationID, decision, callerID string) (*dto.ProfessorInvitationResponse, error)
	RespondToStudentInvitation(ctx context.Context, invitationID, decision, callerID string) (*dto.StudentInvitationResponse, error)
}

type invitationService struct {
	repo    *repository.Repository
	cascade *NotificationCascade
	logger  *zap.Logger
}

// NewInvitationService creates the InvitationService.
func NewInvitationService(repo *repository.Repository, cascade *NotificationCascade, logger *zap.Logger) InvitationService {
	return &invitationService{repo: repo, cascade: cascade, logger: logger}
}

// InviteProfessor requires the invited email to belong to a registered
// professor. The student path below is looser; the asymmetry matches the
// product's observed behavior.
func (s *invitationService) InviteProfessor(ctx context.Context, req *dto.InviteProfessorRequest, callerID string) (*dto.ProfessorInvitationResponse, error) {
	if _, err := s.repo.Unit.GetByID(ctx, req.UnitID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		s.logger.Error("load unit failed", zap.String("unit_id", req.UnitID), zap.Error(err))
		return nil, err
	}

	invitee, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteeNotRegistered
		}
		s.logger.Error("resolve invitee failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	if invitee.Professor == nil {
		return nil, ErrInviteeNotProfessor
	}

	// Uniqueness: one invitation per (unit, email). The unique index closes
	// the race; this check surfaces the existing id for callers.
	if existing, ferr := s.repo.ProfessorInvitation.FindByUnitAndEmail(ctx, req.UnitID, req.Email); ferr == nil {
		return nil, &errors.DuplicateInvitationError{ExistingID: existing.InvitationID}
	} else if !stderrors.Is(ferr, gorm.ErrRecordNotFound) {
		s.logger.Error("duplicate check failed", zap.Error(ferr))
		return nil, ferr
	}

	invitation := &model.ProfessorInvitation{
		UnitID:       req.UnitID,
		ProfessorID:  &invitee.Professor.ProfessorID,
		InvitedEmail: req.Email,
		Status:       model.InvitationStatusPending,
	}

	// Notification rows are derived inside the same transaction: the
	// invitation and its envelope/message commit or roll back as one unit.
	err = s.repo.Tx.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.ProfessorInvitation.Create(ctx, invitation); err != nil {
			return err
		}
		return s.cascade.OnProfessorInvitation(ctx, txRepo, invitation)
	})
	if err != nil {
		if isUniqueViolation(err) {
			// lost the race to a concurrent identical invite
			if existing, ferr := s.repo.ProfessorInvitation.FindByUnitAndEmail(ctx, req.UnitID, req.Email); ferr == nil {
				return nil, &errors.DuplicateInvitationError{ExistingID: existing.InvitationID}
			}
		}
		s.logger.Error("create professor invitation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("professor invitation created",
		zap.String("invitation_id", invitation.InvitationID),
		zap.String("unit_id", req.UnitID),
		zap.String("invited_email", req.Email),
	)

	return toProfessorInvitationResponse(invitation), nil
}

// InviteStudent allows inviting an email that is not yet registered; the
// student reference stays null until the email resolves.
func (s *invitationService) InviteStudent(ctx context.Context, req *dto.InviteStudentRequest, callerID string) (*dto.StudentInvitationResponse, error) {
	if _, err := s.repo.Class.GetByID(ctx, req.ClassID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("load class failed", zap.String("class_id", req.ClassID), zap.Error(err))
		return nil, err
	}

	// Best-effort resolution of the invited email to a student profile.
	var studentID *string
	if invitee, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		if invitee.Student != nil {
			studentID = &invitee.Student.StudentID
		}
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("resolve invitee failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	if existing, ferr := s.repo.StudentInvitation.FindByClassAndEmail(ctx, req.ClassID, req.Email); ferr == nil {
		return nil, &errors.DuplicateInvitationError{ExistingID: existing.InvitationID}
	} else if !stderrors.Is(ferr, gorm.ErrRecordNotFound) {
		s.logger.Error("duplicate check failed", zap.Error(ferr))
		return nil, ferr
	}

	invitation := &model.StudentInvitation{
		ClassID:      req.ClassID,
		StudentID:    studentID,
		InvitedEmail: req.Email,
		Status:       model.InvitationStatusPending,
	}

	err := s.repo.Tx.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.StudentInvitation.Create(ctx, invitation); err != nil {
			return err
		}
		return s.cascade.OnStudentInvitation(ctx, txRepo, invitation)
	})
	if err != nil {
		if isUniqueViolation(err) {
			if existing, ferr := s.repo.StudentInvitation.FindByClassAndEmail(ctx, req.ClassID, req.Email); ferr == nil {
				return nil, &errors.DuplicateInvitationError{ExistingID: existing.InvitationID}
			}
		}
		s.logger.Error("create student invitation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("student invitation created",
		zap.String("invitation_id", invitation.InvitationID),
		zap.String("class_id", req.ClassID),
		zap.String("invited_email", req.Email),
	)

	return toStudentInvitationResponse(invitation), nil
}

func (s *invitationService) RespondToProfessorInvitation(ctx context.Context, invitationID, decision, callerID string) (*dto.ProfessorInvitationResponse, error) {
	status := model.InvitationStatusDeclined
	if decision == DecisionAccept {
		status = model.InvitationStatusAccepted
	}
	now := time.Now()

	var invitation *model.ProfessorInvitation
	err := s.repo.Tx.Transaction(ctx, func(txRepo *repository.Repository) error {
		var err error
		invitation, err = txRepo.ProfessorInvitation.GetByIDForUpdate(ctx, invitationID)
		if err != nil {
			return err
		}
		if terr := terminalStateError(invitation.Status); terr != nil {
			return terr
		}

		// Conditional update: only a still-pending row transitions. A zero
		// row count means a concurrent responder won the race.
		affected, err := txRepo.ProfessorInvitation.UpdateStatusIfPending(ctx, invitationID, status, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errInvitationRace
		}

		if status == model.InvitationStatusAccepted {
			if invitation.ProfessorID == nil {
				// cannot happen for invitations created through
				// InviteProfessor, which always resolves the professor
				return ErrInviteeNotProfessor
			}
			affiliation := &model.ProfessorUnit{
				UnitID:      invitation.UnitID,
				ProfessorID: *invitation.ProfessorID,
			}
			if err := txRepo.ProfessorUnit.Upsert(ctx, affiliation); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.mapRespondError(ctx, err, invitationID, true)
	}

	invitation.Status = status
	invitation.RespondedAt = &now

	s.logger.Info("professor invitation resolved",
		zap.String("invitation_id", invitationID),
		zap.String("status", status),
	)

	return toProfessorInvitationResponse(invitation), nil
}

// RespondToStudentInvitation runs the same state machine as the professor
// path but creates no enrollment row on accept.
func (s *invitationService) RespondToStudentInvitation(ctx context.Context, invitationID, decision, callerID string) (*dto.StudentInvitationResponse, error) {
	status := model.InvitationStatusDeclined
	if decision == DecisionAccept {
		status = model.InvitationStatusAccepted
	}
	now := time.Now()

	var invitation *model.StudentInvitation
	err := s.repo.Tx.Transaction(ctx, func(txRepo *repository.Repository) error {
		var err error
		invitation, err = txRepo.StudentInvitation.GetByIDForUpdate(ctx, invitationID)
		if err != nil {
			return err
		}
		if terr := terminalStateError(invitation.Status); terr != nil {
			return terr
		}

		affected, err := txRepo.StudentInvitation.UpdateStatusIfPending(ctx, invitationID, status, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errInvitationRace
		}
		return nil
	})
	if err != nil {
		return nil, s.mapRespondError(ctx, err, invitationID, false)
	}

	invitation.Status = status
	invitation.RespondedAt = &now

	s.logger.Info("student invitation resolved",
		zap.String("invitation_id", invitationID),
		zap.String("status", status),
	)

	return toStudentInvitationResponse(invitation), nil
}

// mapRespondError translates transaction failures from a respond flow. A
// race loss is re-read so the caller learns which terminal state won.
func (s *invitationService) mapRespondError(ctx context.Context, err error, invitationID string, professor bool) error {
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		return ErrInvitationNotFound
	case stderrors.Is(err, ErrInvitationAlreadyAccepted),
		stderrors.Is(err, ErrInvitationAlreadyDeclined),
		stderrors.Is(err, ErrInviteeNotProfessor):
		return err
	case stderrors.Is(err, errInvitationRace):
		var status string
		if professor {
			current, gerr := s.repo.ProfessorInvitation.GetByID(ctx, invitationID)
			if gerr != nil {
				return ErrInvitationNotFound
			}
			status = current.Status
		} else {
			current, gerr := s.repo.StudentInvitation.GetByID(ctx, invitationID)
			if gerr != nil {
				return ErrInvitationNotFound
			}
			status = current.Status
		}
		if terr := terminalStateError(status); terr != nil {
			return terr
		}
		return err
	default:
		s.logger.Error("respond to invitation failed", zap.String("invitation_id", invitationID), zap.Error(err))
		return err
	}
}

// terminalStateError maps a terminal invitation status to its error; pending
// maps to nil.
func terminalStateError(status string) error {
	switch status {
	case model.InvitationStatusAccepted:
		return ErrInvitationAlreadyAccepted
	case model.InvitationStatusDeclined:
		return ErrInvitationAlreadyDeclined
	default:
		return nil
	}
}
