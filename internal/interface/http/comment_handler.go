package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/internal/application"
	"github.com/devoverflow/backend/internal/domain/entity"
	"github.com/devoverflow/backend/internal/interface/middleware"
	"github.com/devoverflow/backend/pkg/response"
	"github.com/devoverflow/backend/pkg/validation"
)

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type commentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CreateForQuestion POST /api/questions/:id/comments (protected)
func (h *CommentHandler) CreateForQuestion(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.AddToQuestion(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), req.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, commentProjection(cm), "comment created")
}

// CreateForAnswer POST /api/answers/:id/comments (protected)
func (h *CommentHandler) CreateForAnswer(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.AddToAnswer(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), req.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, commentProjection(cm), "comment created")
}

// ListForQuestion GET /api/questions/:id/comments
func (h *CommentHandler) ListForQuestion(c *gin.Context) {
	cs, err := h.Svc.ListByQuestion(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(cs))
	for _, cm := range cs {
		out = append(out, commentProjection(cm))
	}
	response.Success(c, http.StatusOK, out, "comments")
}

// ListForAnswer GET /api/answers/:id/comments
func (h *CommentHandler) ListForAnswer(c *gin.Context) {
	cs, err := h.Svc.ListByAnswer(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(cs))
	for _, cm := range cs {
		out = append(out, commentProjection(cm))
	}
	response.Success(c, http.StatusOK, out, "comments")
}

// Update PUT /api/comments/:id (protected, owner or admin)
func (h *CommentHandler) Update(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.Update(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), c.GetString(middleware.CtxRoleKey), req.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, commentProjection(cm), "comment updated")
}

// Delete DELETE /api/comments/:id (protected, owner or admin)
func (h *CommentHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), c.GetString(middleware.CtxRoleKey))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "comment deleted")
}

// Vote POST /api/comments/:id/vote (protected)
func (h *CommentHandler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.Vote(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), entity.VoteDirection(req.Direction))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, commentProjection(cm), "vote recorded")
}
