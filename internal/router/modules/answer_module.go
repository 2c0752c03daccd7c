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

// AnswerModule wires answer edits, votes, acceptance, and answer comments.
type AnswerModule struct {
	Answers  *handlers.AnswerHandler
	Comments *handlers.CommentHandler
	Users    repo.UserRepository
	JWT      *helpers.JWTManager
}

func NewAnswerModule(a *handlers.AnswerHandler, c *handlers.CommentHandler, users repo.UserRepository, jwt *helpers.JWTManager) *AnswerModule {
	return &AnswerModule{Answers: a, Comments: c, Users: users, JWT: jwt}
}

func (m *AnswerModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/answers/:id/comments", readLimiter, m.Comments.ListForAnswer)

	auth := rg.Group("/")
	auth.Use(middleware.Protect(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.PUT("/answers/:id", m.Answers.Update)
		auth.DELETE("/answers/:id", m.Answers.Delete)
		auth.POST("/answers/:id/vote", m.Answers.Vote)
		auth.POST("/answers/:id/accept", m.Answers.Accept)
		auth.POST("/answers/:id/comments", m.Comments.CreateForAnswer)
	}
}
