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

type CommentModule struct {
	Handler *handlers.CommentHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewCommentModule(h *handlers.CommentHandler, users repo.UserRepository, jwt *helpers.JWTManager) *CommentModule {
	return &CommentModule{Handler: h, Users: users, JWT: jwt}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Protect(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.PUT("/comments/:id", m.Handler.Update)
		auth.DELETE("/comments/:id", m.Handler.Delete)
		auth.POST("/comments/:id/vote", m.Handler.Vote)
	}
}
