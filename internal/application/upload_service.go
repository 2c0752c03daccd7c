package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	repo "github.com/devoverflow/backend/internal/domain/repository"
	"github.com/devoverflow/backend/pkg/helpers"
)

var (
	ErrStorageUnavailable = errors.New("file storage is not configured")
	ErrFileTooLarge       = errors.New("file exceeds the size limit")
	ErrFileTypeNotAllowed = errors.New("file type is not allowed")
)

// UploadService puts user files into Google Cloud Storage and, for profile
// pictures, records the public URL on the user row.
type UploadService struct {
	Users        repo.UserRepository
	GCS          *storage.Client
	Bucket       string
	MaxFileSize  int64
	AllowedTypes []string
	Logger       *logrus.Logger
}

func NewUploadService(users repo.UserRepository, gcs *storage.Client, bucket string, maxSize int64, allowedTypes []string, logger *logrus.Logger) *UploadService {
	return &UploadService{
		Users:        users,
		GCS:          gcs,
		Bucket:       bucket,
		MaxFileSize:  maxSize,
		AllowedTypes: allowedTypes,
		Logger:       logger,
	}
}

// Limits describes the upload constraints clients should honor.
type Limits struct {
	MaxFileSize  int64    `json:"max_file_size"`
	AllowedTypes []string `json:"allowed_types"`
}

func (s *UploadService) GetLimits() Limits {
	return Limits{MaxFileSize: s.MaxFileSize, AllowedTypes: s.AllowedTypes}
}

func (s *UploadService) typeAllowed(contentType string) bool {
	for _, t := range s.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

// UploadFile stores a file under files/<userID>/ and returns its public URL.
func (s *UploadService) UploadFile(ctx context.Context, userID string, r io.Reader, size int64, filename, contentType string) (string, error) {
	return s.upload(ctx, "files", userID, r, size, filename, contentType)
}

// UploadProfilePicture stores an image under avatars/<userID>/ and updates
// the user's profile picture URL.
func (s *UploadService) UploadProfilePicture(ctx context.Context, userID string, r io.Reader, size int64, filename, contentType string) (string, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return "", ErrUserNotFound
	}
	url, err := s.upload(ctx, "avatars", userID, r, size, filename, contentType)
	if err != nil {
		return "", err
	}
	u.ProfilePicture = url
	if err := s.Users.Update(u); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UploadService) upload(ctx context.Context, prefix, userID string, r io.Reader, size int64, filename, contentType string) (string, error) {
	if s.GCS == nil || s.Bucket == "" {
		return "", ErrStorageUnavailable
	}
	if s.MaxFileSize > 0 && size > s.MaxFileSize {
		return "", ErrFileTooLarge
	}
	if !s.typeAllowed(contentType) {
		return "", ErrFileTypeNotAllowed
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join(prefix, userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.Bucket, objectPath, contentType, r)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("object", objectPath).Error("gcs upload failed")
		}
		return "", err
	}
	return url, nil
}
