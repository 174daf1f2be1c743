package handler

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/service"
	"turmalink/backend/pkg/errors"
	"turmalink/backend/pkg/response"
)

// InvitationHandler serves the invitation state machine endpoints.
type InvitationHandler struct {
	svc    service.InvitationService
	logger *zap.Logger
}

// NewInvitationHandler creates the InvitationHandler.
func NewInvitationHandler(svc service.InvitationService, logger *zap.Logger) *InvitationHandler {
	return &InvitationHandler{svc: svc, logger: logger}
}

// InviteProfessor handles POST /invitations/professor.
func (h *InvitationHandler) InviteProfessor(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.InviteProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.InviteProfessor(c.Request.Context(), &req, userID)
	if err != nil {
		h.writeInviteError(c, err)
		return
	}
	response.Created(c, resp)
}

// InviteStudent handles POST /invitations/student.
func (h *InvitationHandler) InviteStudent(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.InviteStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.InviteStudent(c.Request.Context(), &req, userID)
	if err != nil {
		h.writeInviteError(c, err)
		return
	}
	response.Created(c, resp)
}

// RespondProfessor handles PUT /invitations/professor/:id.
func (h *InvitationHandler) RespondProfessor(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.RespondToProfessorInvitation(c.Request.Context(), c.Param("id"), req.Decision, userID)
	if err != nil {
		h.writeRespondError(c, err)
		return
	}
	response.OK(c, resp)
}

// RespondStudent handles PUT /invitations/student/:id.
func (h *InvitationHandler) RespondStudent(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.RespondToStudentInvitation(c.Request.Context(), c.Param("id"), req.Decision, userID)
	if err != nil {
		h.writeRespondError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *InvitationHandler) writeInviteError(c *gin.Context, err error) {
	var dup *errors.DuplicateInvitationError
	switch {
	case stderrors.As(err, &dup):
		response.ConflictWithData(c, 40002, "an invitation for this email already exists",
			dto.DuplicateInvitationResponse{ExistingID: dup.ExistingID})
	case stderrors.Is(err, service.ErrUnitNotFound):
		response.NotFound(c, 30004, "unit not found")
	case stderrors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 30006, "class not found")
	case stderrors.Is(err, service.ErrInviteeNotRegistered):
		response.NotFound(c, 40003, "email does not belong to a registered user")
	case stderrors.Is(err, service.ErrInviteeNotProfessor):
		response.BadRequest(c, 40004, "user is not a professor")
	default:
		response.InternalError(c)
	}
}

func (h *InvitationHandler) writeRespondError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, service.ErrInvitationNotFound):
		response.NotFound(c, 40001, "invitation not found")
	case stderrors.Is(err, service.ErrInvitationAlreadyAccepted):
		response.Conflict(c, 40005, "invitation already accepted")
	case stderrors.Is(err, service.ErrInvitationAlreadyDeclined):
		response.Conflict(c, 40006, "invitation already declined")
	default:
		response.InternalError(c)
	}
}
