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
)

var ErrNotProfessor = stderrors.New("caller is not a professor")

// ClassService owns classes and their course links.
type ClassService interface {
	CreateClass(ctx context.Context, req *dto.CreateClassRequest, callerID string) (*dto.ClassResponse, error)
	GetClass(ctx context.Context, id string) (*dto.ClassResponse, error)
	ListClasses(ctx context.Context) ([]dto.ClassResponse, error)
	AttachCourse(ctx context.Context, classID, courseID string) error
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService creates the ClassService.
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) CreateClass(ctx context.Context, req *dto.CreateClassRequest, callerID string) (*dto.ClassResponse, error) {
	professor, err := s.repo.Professor.GetByUserID(ctx, callerID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotProfessor
		}
		s.logger.Error("lookup professor failed", zap.Error(err))
		return nil, err
	}

	class := &model.Class{
		ProfessorID: professor.ProfessorID,
		Name:        req.Name,
		Period:      req.Period,
	}
	if req.StartsOn != "" {
		if d, perr := time.Parse("2006-01-02", req.StartsOn); perr == nil {
			class.StartsOn = &d
		}
	}
	if req.EndsOn != "" {
		if d, perr := time.Parse("2006-01-02", req.EndsOn); perr == nil {
			class.EndsOn = &d
		}
	}

	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("create class failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("class created",
		zap.String("class_id", class.ClassID),
		zap.String("professor_id", professor.ProfessorID),
	)
	return toClassResponse(class), nil
}

func (s *classService) GetClass(ctx context.Context, id string) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("load class failed", zap.Error(err))
		return nil, err
	}
	return toClassResponse(class), nil
}

func (s *classService) ListClasses(ctx context.Context) ([]dto.ClassResponse, error) {
	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		s.logger.Error("list classes failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		out = append(out, *toClassResponse(&classes[i]))
	}
	return out, nil
}

func (s *classService) AttachCourse(ctx context.Context, classID, courseID string) error {
	if _, err := s.repo.Class.GetByID(ctx, classID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		s.logger.Error("load class failed", zap.Error(err))
		return err
	}
	if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("load course failed", zap.Error(err))
		return err
	}

	link := &model.ClassCourse{ClassID: classID, CourseID: courseID}
	if err := s.repo.Class.AddCourse(ctx, link); err != nil {
		if isUniqueViolation(err) {
			// already linked, nothing to do
			return nil
		}
		s.logger.Error("attach course failed", zap.Error(err))
		return err
	}
	return nil
}
