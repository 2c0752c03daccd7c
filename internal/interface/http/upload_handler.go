package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/internal/application"
	"github.com/devoverflow/backend/internal/interface/middleware"
	"github.com/devoverflow/backend/pkg/response"
)

type UploadHandler struct {
	Svc    *application.UploadService
	Logger *logrus.Logger
}

func NewUploadHandler(svc *application.UploadService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Svc: svc, Logger: logger}
}

// Config GET /api/upload/config
func (h *UploadHandler) Config(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.GetLimits(), "upload config")
}

// Single POST /api/upload/single (protected, multipart field "file")
func (h *UploadHandler) Single(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "missing file field", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "could not read file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadFile(c.Request.Context(), c.GetString(middleware.CtxUserIDKey),
		f, fh.Size, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "file uploaded")
}

// ProfilePicture POST /api/upload/profile (protected, multipart field "file")
func (h *UploadHandler) ProfilePicture(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "missing file field", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "could not read file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadProfilePicture(c.Request.Context(), c.GetString(middleware.CtxUserIDKey),
		f, fh.Size, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.Logger.WithField("user_id", c.GetString(middleware.CtxUserIDKey)).Info("profile picture updated")
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "profile picture updated")
}
