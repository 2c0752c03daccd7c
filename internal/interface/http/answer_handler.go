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

type AnswerHandler struct {
	Svc    *application.AnswerService
	Logger *logrus.Logger
}

func NewAnswerHandler(svc *application.AnswerService, logger *logrus.Logger) *AnswerHandler {
	return &AnswerHandler{Svc: svc, Logger: logger}
}

type answerRequest struct {
	Body string `json:"body" binding:"required"`
}

// Create POST /api/questions/:id/answers (protected)
func (h *AnswerHandler) Create(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), req.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, answerProjection(a), "answer created")
}

// ListByQuestion GET /api/questions/:id/answers
func (h *AnswerHandler) ListByQuestion(c *gin.Context) {
	as, err := h.Svc.ListByQuestion(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(as))
	for _, a := range as {
		out = append(out, answerProjection(a))
	}
	response.Success(c, http.StatusOK, out, "answers")
}

// Update PUT /api/answers/:id (protected, owner or admin)
func (h *AnswerHandler) Update(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), c.GetString(middleware.CtxRoleKey), req.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, answerProjection(a), "answer updated")
}

// Delete DELETE /api/answers/:id (protected, owner or admin)
func (h *AnswerHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), c.GetString(middleware.CtxRoleKey))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "answer deleted")
}

// Vote POST /api/answers/:id/vote (protected)
func (h *AnswerHandler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Vote(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.CtxUserIDKey), entity.VoteDirection(req.Direction))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, answerProjection(a), "vote recorded")
}

// Accept POST /api/answers/:id/accept (protected, question owner)
func (h *AnswerHandler) Accept(c *gin.Context) {
	a, err := h.Svc.Accept(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, answerProjection(a), "answer accepted")
}
