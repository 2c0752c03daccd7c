package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/internal/application"
	"github.com/devoverflow/backend/internal/interface/middleware"
	"github.com/devoverflow/backend/pkg/response"
	"github.com/devoverflow/backend/pkg/validation"
)

type AIHandler struct {
	Svc    *application.AIService
	Logger *logrus.Logger
}

func NewAIHandler(svc *application.AIService, logger *logrus.Logger) *AIHandler {
	return &AIHandler{Svc: svc, Logger: logger}
}

type chatRequest struct {
	Query  string `json:"query" binding:"required"`
	APIKey string `json:"api_key"`
}

// Status GET /api/ai/status
func (h *AIHandler) Status(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Status(), "ai status")
}

// Chat POST /api/ai/chat (protected)
func (h *AIHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	answer, err := h.Svc.Chat(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Query, req.APIKey)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"response": answer}, "chat response")
}

type draftRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// AnswerSuggestion GET /api/ai/answer-suggestion/:id (protected)
func (h *AIHandler) AnswerSuggestion(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"suggestion": h.Svc.SuggestAnswer(c.Param("id"))}, "answer suggestion")
}

// CreateAnswer POST /api/ai/answer-suggestion/:id (protected)
func (h *AIHandler) CreateAnswer(c *gin.Context) {
	response.Success(c, http.StatusCreated, gin.H{"answer": h.Svc.ComposeAnswer(c.Param("id"))}, "answer created")
}

// TagSuggestions POST /api/ai/tag-suggestions (protected)
func (h *AIHandler) TagSuggestions(c *gin.Context) {
	var req draftRequest
	_ = c.ShouldBindJSON(&req) // draft fields are optional while suggestions are mocked
	response.Success(c, http.StatusOK, gin.H{"tags": h.Svc.SuggestTags(req.Title, req.Body)}, "tag suggestions")
}

// QuestionImprovements POST /api/ai/question-improvements (protected)
func (h *AIHandler) QuestionImprovements(c *gin.Context) {
	var req draftRequest
	_ = c.ShouldBindJSON(&req)
	response.Success(c, http.StatusOK, gin.H{"suggestions": h.Svc.SuggestImprovements(req.Title, req.Body)}, "question improvements")
}
