package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devoverflow/backend/internal/container"
	repo "github.com/devoverflow/backend/internal/domain/repository"
	handlers "github.com/devoverflow/backend/internal/interface/http"
	"github.com/devoverflow/backend/internal/interface/middleware"
	"github.com/devoverflow/backend/pkg/helpers"
)

// AdminModule gates the administration endpoints behind the admin role.
type AdminModule struct {
	Handler *handlers.AdminHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, users repo.UserRepository, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, Users: users, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Protect(m.Users, m.JWT))
	admin.Use(middleware.AdminOnly())
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.GET("/users", m.Handler.ListUsers)
		admin.DELETE("/users/:id", m.Handler.DeleteUser)
		admin.GET("/questions", m.Handler.ListQuestions)
		admin.DELETE("/questions/:id", m.Handler.DeleteQuestion)
		admin.GET("/stats", m.Handler.Stats)
	}
}
