package service

import (
	"go.uber.org/zap"

	"turmalink/backend/config"
	"turmalink/backend/internal/repository"
	"turmalink/backend/pkg/jwt"
	"turmalink/backend/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth        AuthService
	User        UserService
	Institution InstitutionService
	Course      CourseService
	Class       ClassService
	Invitation  InvitationService
	Message     MessageService
	Directory   DirectoryService
	Export      ExportService
}

// NewService wires up the service aggregate.
func NewService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, verifier TokenVerifier, cfg *config.Config, logger *zap.Logger) *Service {
	cascade := NewNotificationCascade(logger)
	directory := NewDirectoryService(repo, logger)

	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, rdb, verifier, &cfg.Auth, logger),
		User:        NewUserService(repo, logger),
		Institution: NewInstitutionService(repo, logger),
		Course:      NewCourseService(repo, logger),
		Class:       NewClassService(repo, logger),
		Invitation:  NewInvitationService(repo, cascade, logger),
		Message:     NewMessageService(repo, logger),
		Directory:   directory,
		Export:      NewExportService(directory, logger),
	}
}
