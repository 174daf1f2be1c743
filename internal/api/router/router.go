package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turmalink/backend/config"
	"turmalink/backend/internal/api/handler"
	"turmalink/backend/internal/api/middleware"
	"turmalink/backend/internal/model"
	"turmalink/backend/pkg/jwt"
	"turmalink/backend/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// New builds the gin engine with every route and middleware wired.
func New(h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(&cfg.Server.CORS))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(rdb, 20, time.Minute, logger))
	{
		auth.POST("/register/start", h.Auth.StartRegistration)
		auth.POST("/register/complete", h.Auth.CompleteRegistration)
		auth.POST("/google", h.Auth.GoogleLogin)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	// the directory dump is public, matching the product's behavior
	v1.GET("/directory", h.Directory.ListAll)

	authed := v1.Group("")
	authed.Use(middleware.Auth(jwtMgr, rdb, logger))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.GET("/users/me", h.User.GetMe)

		authed.POST("/institutions", h.Institution.Create)
		authed.GET("/institutions/me", h.Institution.GetMine)
		authed.POST("/institutions/units", h.Institution.CreateUnit)
		authed.GET("/institutions/units", h.Institution.ListUnits)

		authed.POST("/courses", h.Course.Create)
		authed.GET("/courses", h.Course.List)
		authed.GET("/courses/:id", h.Course.Get)

		authed.POST("/classes", middleware.RoleAuth(model.RoleProfessor), h.Class.Create)
		authed.GET("/classes", h.Class.List)
		authed.GET("/classes/:id", h.Class.Get)
		authed.PUT("/classes/:id/courses/:courseId", middleware.RoleAuth(model.RoleProfessor), h.Class.AttachCourse)

		authed.POST("/invitations/professor", middleware.RoleAuth(model.RoleInstitution), h.Invitation.InviteProfessor)
		authed.PUT("/invitations/professor/:id", h.Invitation.RespondProfessor)
		authed.POST("/invitations/student", middleware.RoleAuth(model.RoleProfessor), h.Invitation.InviteStudent)
		authed.PUT("/invitations/student/:id", h.Invitation.RespondStudent)

		authed.GET("/messages", h.Message.ListMine)
		authed.PUT("/messages/:id/read", h.Message.MarkRead)
		authed.GET("/invites/:id/messages", h.Message.ListForInvite)

		authed.GET("/directory/export", middleware.RoleAuth(model.RoleInstitution), h.Directory.Export)
	}

	return r
}
