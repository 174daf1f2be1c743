package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/service"
	"turmalink/backend/pkg/response"
)

// InstitutionHandler serves institution and unit endpoints.
type InstitutionHandler struct {
	svc    service.InstitutionService
	logger *zap.Logger
}

// NewInstitutionHandler creates the InstitutionHandler.
func NewInstitutionHandler(svc service.InstitutionService, logger *zap.Logger) *InstitutionHandler {
	return &InstitutionHandler{svc: svc, logger: logger}
}

// Create handles POST /institutions.
func (h *InstitutionHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.CreateInstitution(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrInstitutionExists) {
			response.Conflict(c, 30002, "user already owns an institution")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, resp)
}

// GetMine handles GET /institutions/me.
func (h *InstitutionHandler) GetMine(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	resp, err := h.svc.GetMine(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrInstitutionNotFound) {
			response.NotFound(c, 30001, "institution not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// CreateUnit handles POST /institutions/units.
func (h *InstitutionHandler) CreateUnit(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.CreateUnit(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotInstitutionOwner) {
			response.Forbidden(c, 30003, "caller does not own an institution")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, resp)
}

// ListUnits handles GET /institutions/units.
func (h *InstitutionHandler) ListUnits(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	resp, err := h.svc.ListUnits(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotInstitutionOwner) {
			response.Forbidden(c, 30003, "caller does not own an institution")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}
