package handler

import (
	"go.uber.org/zap"

	"turmalink/backend/internal/service"
)

// Handler aggregates every HTTP handler group.
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Institution *InstitutionHandler
	Course      *CourseHandler
	Class       *ClassHandler
	Invitation  *InvitationHandler
	Message     *MessageHandler
	Directory   *DirectoryHandler
}

// NewHandler wires up the handler aggregate.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, logger),
		User:        NewUserHandler(svc.User, logger),
		Institution: NewInstitutionHandler(svc.Institution, logger),
		Course:      NewCourseHandler(svc.Course, logger),
		Class:       NewClassHandler(svc.Class, logger),
		Invitation:  NewInvitationHandler(svc.Invitation, logger),
		Message:     NewMessageHandler(svc.Message, logger),
		Directory:   NewDirectoryHandler(svc.Directory, svc.Export, logger),
	}
}
