package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/service"
	"turmalink/backend/pkg/response"
)

// AuthHandler serves registration and session endpoints.
type AuthHandler struct {
	svc    service.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// StartRegistration handles POST /auth/register/start.
func (h *AuthHandler) StartRegistration(c *gin.Context) {
	var req dto.StartRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.StartRegistration(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			response.Conflict(c, 20002, "email already registered")
			return
		}
		response.InternalError(c)
		return
	}
	if resp.Created {
		response.Created(c, resp)
		return
	}
	response.OK(c, resp)
}

// CompleteRegistration handles POST /auth/register/complete.
func (h *AuthHandler) CompleteRegistration(c *gin.Context) {
	var req dto.CompleteRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.CompleteRegistration(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotStarted):
			response.NotFound(c, 20003, "registration was not started for this email")
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			response.Conflict(c, 20002, "email already registered")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resp)
}

// GoogleLogin handles POST /auth/google.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.LoginWithIDToken(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidIDToken) {
			response.Unauthorized(c, 20007, "identity token rejected")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, 20004, "invalid email or password")
		case errors.Is(err, service.ErrAccountNotConfirmed):
			response.Forbidden(c, 20005, "account registration is not complete")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resp)
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	resp, err := h.svc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			response.Unauthorized(c, 20006, "invalid refresh token")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// Logout handles POST /auth/logout. The bearer token being presented is the
// one revoked.
func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		response.Unauthorized(c, 10002, "missing authorization header")
		return
	}

	if err := h.svc.Logout(c.Request.Context(), parts[1]); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
