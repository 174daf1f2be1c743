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
	ErrInstitutionNotFound = stderrors.New("institution not found")
	ErrInstitutionExists   = stderrors.New("user already owns an institution")
	ErrNotInstitutionOwner = stderrors.New("caller does not own an institution")
)

// InstitutionService owns institutions and their units.
type InstitutionService interface {
	CreateInstitution(ctx context.Context, req *dto.CreateInstitutionRequest, callerID string) (*dto.InstitutionResponse, error)
	GetMine(ctx context.Context, callerID string) (*dto.InstitutionWithUnitsResponse, error)
	CreateUnit(ctx context.Context, req *dto.CreateUnitRequest, callerID string) (*dto.UnitResponse, error)
	ListUnits(ctx context.Context, callerID string) ([]dto.UnitResponse, error)
}

type institutionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInstitutionService creates the InstitutionService.
func NewInstitutionService(repo *repository.Repository, logger *zap.Logger) InstitutionService {
	return &institutionService{repo: repo, logger: logger}
}

func (s *institutionService) CreateInstitution(ctx context.Context, req *dto.CreateInstitutionRequest, callerID string) (*dto.InstitutionResponse, error) {
	if _, err := s.repo.Institution.GetByUserID(ctx, callerID); err == nil {
		return nil, ErrInstitutionExists
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup institution failed", zap.Error(err))
		return nil, err
	}

	institution := &model.Institution{
		UserID: callerID,
		Name:   req.Name,
	}
	if err := s.repo.Institution.Create(ctx, institution); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrInstitutionExists
		}
		s.logger.Error("create institution failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("institution created",
		zap.String("institution_id", institution.InstitutionID),
		zap.String("user_id", callerID),
	)
	return toInstitutionResponse(institution), nil
}

func (s *institutionService) GetMine(ctx context.Context, callerID string) (*dto.InstitutionWithUnitsResponse, error) {
	institution, err := s.repo.Institution.GetByUserID(ctx, callerID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstitutionNotFound
		}
		s.logger.Error("load institution failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.InstitutionWithUnitsResponse{
		InstitutionResponse: *toInstitutionResponse(institution),
		Units:               make([]dto.UnitResponse, 0, len(institution.Units)),
	}
	for i := range institution.Units {
		resp.Units = append(resp.Units, *toUnitResponse(&institution.Units[i]))
	}
	return resp, nil
}

func (s *institutionService) CreateUnit(ctx context.Context, req *dto.CreateUnitRequest, callerID string) (*dto.UnitResponse, error) {
	institution, err := s.repo.Institution.GetByUserID(ctx, callerID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInstitutionOwner
		}
		s.logger.Error("load institution failed", zap.Error(err))
		return nil, err
	}

	unit := &model.Unit{
		InstitutionID: institution.InstitutionID,
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		State:         req.State,
		City:          req.City,
		District:      req.District,
		PostalCode:    req.PostalCode,
	}
	if err := s.repo.Unit.Create(ctx, unit); err != nil {
		s.logger.Error("create unit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("unit created",
		zap.String("unit_id", unit.UnitID),
		zap.String("institution_id", institution.InstitutionID),
	)
	return toUnitResponse(unit), nil
}

func (s *institutionService) ListUnits(ctx context.Context, callerID string) ([]dto.UnitResponse, error) {
	institution, err := s.repo.Institution.GetByUserID(ctx, callerID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInstitutionOwner
		}
		s.logger.Error("load institution failed", zap.Error(err))
		return nil, err
	}

	units, err := s.repo.Unit.ListByInstitution(ctx, institution.InstitutionID)
	if err != nil {
		s.logger.Error("list units failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.UnitResponse, 0, len(units))
	for i := range units {
		out = append(out, *toUnitResponse(&units[i]))
	}
	return out, nil
}
