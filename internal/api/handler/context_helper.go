package handler

import (
	"github.com/gin-gonic/gin"

	"turmalink/backend/internal/api/middleware"
	"turmalink/backend/pkg/response"
)

// callerID pulls the authenticated user id set by the auth middleware. A
// missing id means the route was wired without Auth; the request is aborted.
func callerID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.CtxUserID)
	if id == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		c.Abort()
		return "", false
	}
	return id, true
}
