package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/service"
	"turmalink/backend/pkg/response"
)

// ClassHandler serves class endpoints.
type ClassHandler struct {
	svc    service.ClassService
	logger *zap.Logger
}

// NewClassHandler creates the ClassHandler.
func NewClassHandler(svc service.ClassService, logger *zap.Logger) *ClassHandler {
	return &ClassHandler{svc: svc, logger: logger}
}

// Create handles POST /classes.
func (h *ClassHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.CreateClass(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotProfessor) {
			response.Forbidden(c, 30007, "caller is not a professor")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, resp)
}

// Get handles GET /classes/:id.
func (h *ClassHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetClass(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.NotFound(c, 30006, "class not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// List handles GET /classes.
func (h *ClassHandler) List(c *gin.Context) {
	resp, err := h.svc.ListClasses(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// AttachCourse handles PUT /classes/:id/courses/:courseId.
func (h *ClassHandler) AttachCourse(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	err := h.svc.AttachCourse(c.Request.Context(), c.Param("id"), c.Param("courseId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 30006, "class not found")
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, 30005, "course not found")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
