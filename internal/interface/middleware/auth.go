package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devoverflow/backend/internal/domain/entity"
	repo "github.com/devoverflow/backend/internal/domain/repository"
	"github.com/devoverflow/backend/pkg/helpers"
	"github.com/devoverflow/backend/pkg/response"
)

// Context keys set by Protect.
const (
	CtxUserIDKey = "userID"
	CtxRoleKey   = "userRole"
	CtxUserKey   = "user"
)

// Protect validates the bearer token and resolves the claim subject to a
// live user record. A token whose subject was deleted after issuance is
// rejected as stale. On success the identity is attached to the context.
func Protect(users repo.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "not authorized to access this route", nil)
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			// expired and malformed both end here; the split stays internal
			response.AbortError(c, http.StatusUnauthorized, "not authorized, token failed", nil)
			return
		}
		u, err := users.GetByID(claims.UserID)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "user no longer exists", nil)
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxRoleKey, u.Role)
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

// AdminOnly gates a route group to admin users. Must run after Protect.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRoleKey) != entity.RoleAdmin {
			response.AbortError(c, http.StatusForbidden, "forbidden: admin access required", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
