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

// QuestionModule wires the question lifecycle, including answers and
// comments nested under a question.
type QuestionModule struct {
	Questions *handlers.QuestionHandler
	Answers   *handlers.AnswerHandler
	Comments  *handlers.CommentHandler
	Users     repo.UserRepository
	JWT       *helpers.JWTManager
}

func NewQuestionModule(q *handlers.QuestionHandler, a *handlers.AnswerHandler, c *handlers.CommentHandler, users repo.UserRepository, jwt *helpers.JWTManager) *QuestionModule {
	return &QuestionModule{Questions: q, Answers: a, Comments: c, Users: users, JWT: jwt}
}

func (m *QuestionModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)

	// Public reads
	rg.GET("/questions", readLimiter, m.Questions.List)
	rg.GET("/questions/search", readLimiter, m.Questions.Search)
	rg.GET("/questions/tags/trending", readLimiter, m.Questions.TrendingTags)
	rg.GET("/questions/:id", readLimiter, m.Questions.Get)
	rg.GET("/questions/:id/answers", readLimiter, m.Answers.ListByQuestion)
	rg.GET("/questions/:id/comments", readLimiter, m.Comments.ListForQuestion)

	// Protected writes
	auth := rg.Group("/")
	auth.Use(middleware.Protect(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/questions", m.Questions.Create)
		auth.PUT("/questions/:id", m.Questions.Update)
		auth.DELETE("/questions/:id", m.Questions.Delete)
		auth.POST("/questions/:id/vote", m.Questions.Vote)
		auth.POST("/questions/:id/answers", m.Answers.Create)
		auth.POST("/questions/:id/comments", m.Comments.CreateForQuestion)
	}
}
