package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/service"
	"turmalink/backend/pkg/response"
)

// CourseHandler serves course endpoints.
type CourseHandler struct {
	svc    service.CourseService
	logger *zap.Logger
}

// NewCourseHandler creates the CourseHandler.
func NewCourseHandler(svc service.CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, logger: logger}
}

// Create handles POST /courses.
func (h *CourseHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.CreateCourse(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrUnitNotFound) {
			response.NotFound(c, 30004, "unit not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, resp)
}

// Get handles GET /courses/:id.
func (h *CourseHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.NotFound(c, 30005, "course not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// List handles GET /courses.
func (h *CourseHandler) List(c *gin.Context) {
	resp, err := h.svc.ListCourses(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}
