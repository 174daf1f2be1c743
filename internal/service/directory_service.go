package service

import (
	"context"

	"go.uber.org/zap"

	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/repository"
)

// DirectoryService produces the full directory dump: every collection in one
// payload, shaped as flat non-cyclic views. The dump is unpaginated.
type DirectoryService interface {
	ListAll(ctx context.Context) (*dto.DirectoryResponse, error)
}

type directoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDirectoryService creates the DirectoryService.
func NewDirectoryService(repo *repository.Repository, logger *zap.Logger) DirectoryService {
	return &directoryService{repo: repo, logger: logger}
}

func (s *directoryService) ListAll(ctx context.Context) (*dto.DirectoryResponse, error) {
	resp := &dto.DirectoryResponse{
		Users:                []dto.UserResponse{},
		Professors:           []dto.ProfessorResponse{},
		Students:             []dto.StudentResponse{},
		Institutions:         []dto.InstitutionResponse{},
		Units:                []dto.UnitResponse{},
		Courses:              []dto.CourseResponse{},
		Classes:              []dto.ClassResponse{},
		ClassStudents:        []dto.EnrollmentResponse{},
		ClassCourses:         []dto.ClassCourseResponse{},
		ProfessorUnits:       []dto.AffiliationResponse{},
		ProfessorInvitations: []dto.ProfessorInvitationResponse{},
		StudentInvitations:   []dto.StudentInvitationResponse{},
		Invites:              []dto.InviteResponse{},
	}

	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}
	for i := range users {
		resp.Users = append(resp.Users, *toUserResponse(&users[i]))
	}

	professors, err := s.repo.Professor.List(ctx)
	if err != nil {
		s.logger.Error("list professors failed", zap.Error(err))
		return nil, err
	}
	for i := range professors {
		resp.Professors = append(resp.Professors, *toProfessorResponse(&professors[i]))
	}

	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, err
	}
	for i := range students {
		resp.Students = append(resp.Students, *toStudentResponse(&students[i]))
	}

	institutions, err := s.repo.Institution.List(ctx)
	if err != nil {
		s.logger.Error("list institutions failed", zap.Error(err))
		return nil, err
	}
	for i := range institutions {
		resp.Institutions = append(resp.Institutions, *toInstitutionResponse(&institutions[i]))
	}

	units, err := s.repo.Unit.List(ctx)
	if err != nil {
		s.logger.Error("list units failed", zap.Error(err))
		return nil, err
	}
	for i := range units {
		resp.Units = append(resp.Units, *toUnitResponse(&units[i]))
	}

	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("list courses failed", zap.Error(err))
		return nil, err
	}
	for i := range courses {
		resp.Courses = append(resp.Courses, *toCourseResponse(&courses[i]))
	}

	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		s.logger.Error("list classes failed", zap.Error(err))
		return nil, err
	}
	for i := range classes {
		resp.Classes = append(resp.Classes, *toClassResponse(&classes[i]))
	}

	enrollments, err := s.repo.Class.ListAllEnrollments(ctx)
	if err != nil {
		s.logger.Error("list enrollments failed", zap.Error(err))
		return nil, err
	}
	for _, e := range enrollments {
		resp.ClassStudents = append(resp.ClassStudents, dto.EnrollmentResponse{
			ClassID:   e.ClassID,
			StudentID: e.StudentID,
		})
	}

	courseLinks, err := s.repo.Class.ListAllCourseLinks(ctx)
	if err != nil {
		s.logger.Error("list course links failed", zap.Error(err))
		return nil, err
	}
	for _, l := range courseLinks {
		resp.ClassCourses = append(resp.ClassCourses, dto.ClassCourseResponse{
			ClassID:  l.ClassID,
			CourseID: l.CourseID,
		})
	}

	affiliations, err := s.repo.ProfessorUnit.List(ctx)
	if err != nil {
		s.logger.Error("list affiliations failed", zap.Error(err))
		return nil, err
	}
	for _, a := range affiliations {
		resp.ProfessorUnits = append(resp.ProfessorUnits, dto.AffiliationResponse{
			UnitID:      a.UnitID,
			ProfessorID: a.ProfessorID,
		})
	}

	professorInvitations, err := s.repo.ProfessorInvitation.List(ctx)
	if err != nil {
		s.logger.Error("list professor invitations failed", zap.Error(err))
		return nil, err
	}
	for i := range professorInvitations {
		resp.ProfessorInvitations = append(resp.ProfessorInvitations, *toProfessorInvitationResponse(&professorInvitations[i]))
	}

	studentInvitations, err := s.repo.StudentInvitation.List(ctx)
	if err != nil {
		s.logger.Error("list student invitations failed", zap.Error(err))
		return nil, err
	}
	for i := range studentInvitations {
		resp.StudentInvitations = append(resp.StudentInvitations, *toStudentInvitationResponse(&studentInvitations[i]))
	}

	invites, err := s.repo.Invite.List(ctx)
	if err != nil {
		s.logger.Error("list invites failed", zap.Error(err))
		return nil, err
	}
	for i := range invites {
		resp.Invites = append(resp.Invites, *toInviteResponse(&invites[i]))
	}

	return resp, nil
}
