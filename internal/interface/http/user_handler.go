package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/internal/application"
	"github.com/devoverflow/backend/internal/domain/entity"
	"github.com/devoverflow/backend/internal/interface/middleware"
	"github.com/devoverflow/backend/pkg/response"
)

type UserHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Get GET /api/users/:id (protected, self or admin)
func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id != c.GetString(middleware.CtxUserIDKey) && c.GetString(middleware.CtxRoleKey) != entity.RoleAdmin {
		response.Error(c, http.StatusForbidden, "not authorized to view this user", nil)
		return
	}
	u, err := h.Svc.GetProfile(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userProjection(u), "user")
}
