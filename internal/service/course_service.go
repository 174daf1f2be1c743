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

var ErrCourseNotFound = stderrors.New("course not found")

// CourseService owns courses.
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest, callerID string) (*dto.CourseResponse, error)
	GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context) ([]dto.CourseResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService creates the CourseService.
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest, callerID string) (*dto.CourseResponse, error) {
	if _, err := s.repo.Unit.GetByID(ctx, req.UnitID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		s.logger.Error("load unit failed", zap.Error(err))
		return nil, err
	}

	course := &model.Course{
		UnitID:      &req.UnitID,
		Name:        req.Name,
		Description: req.Description,
	}

	// A calling professor becomes the course's professor; other roles leave
	// the reference empty.
	if professor, err := s.repo.Professor.GetByUserID(ctx, callerID); err == nil {
		course.ProfessorID = &professor.ProfessorID
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup professor failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("create course failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("course created",
		zap.String("course_id", course.CourseID),
		zap.String("unit_id", req.UnitID),
	)
	return toCourseResponse(course), nil
}

func (s *courseService) GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("load course failed", zap.Error(err))
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) ListCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("list courses failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, *toCourseResponse(&courses[i]))
	}
	return out, nil
}
