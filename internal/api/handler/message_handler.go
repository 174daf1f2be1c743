package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turmalink/backend/internal/service"
	"turmalink/backend/pkg/response"
)

// MessageHandler serves the inbox endpoints.
type MessageHandler struct {
	svc    service.MessageService
	logger *zap.Logger
}

// NewMessageHandler creates the MessageHandler.
func NewMessageHandler(svc service.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, logger: logger}
}

// ListMine handles GET /messages.
func (h *MessageHandler) ListMine(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	resp, err := h.svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// ListForInvite handles GET /invites/:id/messages.
func (h *MessageHandler) ListForInvite(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	resp, err := h.svc.ListForInvite(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrInviteNotFound) {
			response.NotFound(c, 40007, "invite not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// MarkRead handles PUT /messages/:id/read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	resp, err := h.svc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			response.NotFound(c, 50001, "message not found")
		case errors.Is(err, service.ErrMessageAlreadyRead):
			response.Conflict(c, 50002, "message already read")
		case errors.Is(err, service.ErrMessageAlreadyResponded):
			response.Conflict(c, 50003, "message already responded")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resp)
}
