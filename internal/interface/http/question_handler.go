package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/internal/application"
	"github.com/devoverflow/backend/internal/domain/entity"
	"github.com/devoverflow/backend/internal/interface/middleware"
	"github.com/devoverflow/backend/pkg/response"
	"github.com/devoverflow/backend/pkg/validation"
)

type QuestionHandler struct {
	Svc    *application.QuestionService
	Logger *logrus.Logger
}

func NewQuestionHandler(svc *application.QuestionService, logger *logrus.Logger) *QuestionHandler {
	return &QuestionHandler{Svc: svc, Logger: logger}
}

type questionRequest struct {
	Title string   `json:"title" binding:"required"`
	Body  string   `json:"body" binding:"required"`
	Tags  []string `json:"tags" binding:"required,min=1"`
}

type questionUpdateRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

type voteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// Create POST /api/questions (protected)
func (h *QuestionHandler) Create(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	q, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.QuestionInput{
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, questionProjection(q), "question created")
}

// Get GET /api/questions/:id
func (h *QuestionHandler) Get(c *gin.Context) {
	q, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, questionProjection(q), "question")
}

// List GET /api/questions
func (h *QuestionHandler) List(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)
	qs, err := h.Svc.List(limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(qs))
	for _, q := range qs {
		out = append(out, questionProjection(q))
	}
	response.Success(c, http.StatusOK, out, "questions")
}

// Update PUT /api/questions/:id (protected, owner or admin)
func (h *QuestionHandler) Update(c *gin.Context) {
	var req questionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	q, err := h.Svc.Update(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), c.GetString(middleware.CtxRoleKey),
		application.QuestionInput{Title: req.Title, Body: req.Body, Tags: req.Tags})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, questionProjection(q), "question updated")
}

// Delete DELETE /api/questions/:id (protected, owner or admin)
func (h *QuestionHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), c.GetString(middleware.CtxRoleKey))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "question deleted")
}

// Vote POST /api/questions/:id/vote (protected)
func (h *QuestionHandler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	q, err := h.Svc.Vote(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), entity.VoteDirection(req.Direction))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, questionProjection(q), "vote recorded")
}

// Search GET /api/questions/search?q=...
func (h *QuestionHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "missing query parameter 'q'", nil)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, queryInt(c, "size", 10))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results")
}

// TrendingTags GET /api/questions/tags/trending
func (h *QuestionHandler) TrendingTags(c *gin.Context) {
	tags, err := h.Svc.TrendingTags(c.Request.Context(), queryInt(c, "limit", 10))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tags, "trending tags")
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
