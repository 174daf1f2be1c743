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

var ErrUserNotFound = stderrors.New("user not found")

// UserService exposes user reads.
type UserService interface {
	GetMe(ctx context.Context, userID string) (*dto.UserWithProfileResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetMe(ctx context.Context, userID string) (*dto.UserWithProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	resp := &dto.UserWithProfileResponse{UserResponse: *toUserResponse(user)}
	if user.Professor != nil {
		resp.Professor = toProfessorResponse(user.Professor)
	}
	if user.Student != nil {
		resp.Student = toStudentResponse(user.Student)
	}
	if user.Institution != nil {
		resp.Institution = toInstitutionResponse(user.Institution)
	}
	return resp, nil
}

// ensureRoleProfile creates the empty role-profile row implied by the user's
// role. Must run on a transaction-scoped Repository alongside the user write
// that set the role. Institution profiles are created explicitly through the
// institution endpoint, not here.
func ensureRoleProfile(ctx context.Context, repo *repository.Repository, user *model.User) error {
	switch user.Role {
	case model.RoleProfessor:
		_, err := repo.Professor.GetByUserID(ctx, user.UserID)
		if err == nil {
			return nil
		}
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return repo.Professor.Create(ctx, &model.Professor{UserID: user.UserID})
	case model.RoleStudent:
		_, err := repo.Student.GetByUserID(ctx, user.UserID)
		if err == nil {
			return nil
		}
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return repo.Student.Create(ctx, &model.Student{UserID: user.UserID})
	default:
		return nil
	}
}
