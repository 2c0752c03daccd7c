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

// UserModule exposes user profiles and uploads.
type UserModule struct {
	Users   *handlers.UserHandler
	Uploads *handlers.UploadHandler
	AI      *handlers.AIHandler
	Repo    repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewUserModule(u *handlers.UserHandler, up *handlers.UploadHandler, ai *handlers.AIHandler, r repo.UserRepository, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Users: u, Uploads: up, AI: ai, Repo: r, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/upload/config", readLimiter, m.Uploads.Config)
	rg.GET("/ai/status", readLimiter, m.AI.Status)

	auth := rg.Group("/")
	auth.Use(middleware.Protect(m.Repo, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/users/:id", m.Users.Get)
		auth.POST("/upload/single", m.Uploads.Single)
		auth.POST("/upload/profile", m.Uploads.ProfilePicture)
		auth.POST("/ai/chat", m.AI.Chat)
		auth.GET("/ai/answer-suggestion/:id", m.AI.AnswerSuggestion)
		auth.POST("/ai/answer-suggestion/:id", m.AI.CreateAnswer)
		auth.POST("/ai/tag-suggestions", m.AI.TagSuggestions)
		auth.POST("/ai/question-improvements", m.AI.QuestionImprovements)
	}
}
