package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/internal/application"
	"github.com/devoverflow/backend/pkg/response"
)

type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

// ListUsers GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userProjection(u))
	}
	response.Success(c, http.StatusOK, out, "users")
}

// DeleteUser DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteUser(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.Logger.WithField("user_id", id).Info("user deleted by admin")
	response.Success[any](c, http.StatusOK, nil, "user deleted")
}

// ListQuestions GET /api/admin/questions
func (h *AdminHandler) ListQuestions(c *gin.Context) {
	qs, err := h.Svc.ListQuestions(queryInt(c, "limit", 20), queryInt(c, "offset", 0))
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

// DeleteQuestion DELETE /api/admin/questions/:id
func (h *AdminHandler) DeleteQuestion(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteQuestion(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.Logger.WithField("question_id", id).Info("question deleted by admin")
	response.Success[any](c, http.StatusOK, nil, "question deleted")
}

// Stats GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.GetStats()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, "platform stats")
}
