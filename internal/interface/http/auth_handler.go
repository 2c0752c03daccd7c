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

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Lastname string `json:"lastname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,pwd"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), req.Name, req.Lastname, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	response.Success(c, http.StatusCreated, gin.H{"user": userProjection(u)},
		"Registration successful! Please check your email to verify your account.")
}

// VerifyEmail GET /api/auth/verify/:token
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	u, sess, err := h.Svc.VerifyEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.Logger.WithField("user_id", u.ID).Info("email verified")
	response.Success(c, http.StatusOK, gin.H{
		"token":      sess.Token,
		"expires_at": sess.ExpiresAt,
		"user":       userProjection(u),
	}, u.Name+" "+u.Lastname+" verified successfully!")
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, sess, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"token":      sess.Token,
		"expires_at": sess.ExpiresAt,
		"user":       userProjection(u),
	}, "login successful")
}

// ForgotPassword POST /api/auth/forgotPassword
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Password reset email sent")
}

// ResetPassword POST /api/auth/resetPassword
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, sess, err := h.Svc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.Logger.WithField("user_id", u.ID).Info("password reset")
	response.Success(c, http.StatusOK, gin.H{
		"token":      sess.Token,
		"expires_at": sess.ExpiresAt,
		"user":       userProjection(u),
	}, "password reset successful")
}

// Me GET /api/auth/me (protected)
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": userProjection(u)}, "current user")
}
