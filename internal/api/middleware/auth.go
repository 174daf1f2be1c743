package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turmalink/backend/pkg/jwt"
	"turmalink/backend/pkg/redis"
	"turmalink/backend/pkg/response"
)

// Context keys set by Auth.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth validates the bearer token, rejects blacklisted sessions and stores
// the caller's identity on the context. rdb may be nil; revocation checks
// are then skipped.
func Auth(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, 10002, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Unauthorized(c, 10002, "token expired")
			} else {
				response.Unauthorized(c, 10002, "invalid token")
			}
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "invalid token")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, berr := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if berr != nil {
				logger.Warn("blacklist check failed", zap.Error(berr))
			} else if blacklisted {
				response.Unauthorized(c, 10002, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RoleAuth restricts a route to the given roles. Must run after Auth.
func RoleAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Forbidden(c, 10003, "insufficient permissions")
		c.Abort()
	}
}
