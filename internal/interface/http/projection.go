package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devoverflow/backend/internal/application"
	"github.com/devoverflow/backend/internal/domain/entity"
	"github.com/devoverflow/backend/pkg/response"
)

// userProjection is the only outward-facing view of a user. Password hash,
// token digests, and stored API keys never appear here.
func userProjection(u *entity.User) gin.H {
	return gin.H{
		"id":              u.ID,
		"name":            u.Name,
		"lastname":        u.Lastname,
		"email":           u.Email,
		"role":            u.Role,
		"is_verified":     u.IsVerified,
		"profile_picture": u.ProfilePicture,
	}
}

func questionProjection(q *entity.Question) gin.H {
	return gin.H{
		"id":         q.ID,
		"title":      q.Title,
		"body":       q.Body,
		"tags":       q.Tags,
		"user_id":    q.UserID,
		"upvotes":    q.Upvoters,
		"downvotes":  q.Downvoters,
		"score":      q.Score(),
		"created_at": q.CreatedAt,
		"updated_at": q.UpdatedAt,
	}
}

func answerProjection(a *entity.Answer) gin.H {
	return gin.H{
		"id":          a.ID,
		"question_id": a.QuestionID,
		"user_id":     a.UserID,
		"body":        a.Body,
		"is_accepted": a.IsAccepted,
		"upvotes":     a.Upvoters,
		"downvotes":   a.Downvoters,
		"score":       a.Score(),
		"created_at":  a.CreatedAt,
	}
}

func commentProjection(c *entity.Comment) gin.H {
	out := gin.H{
		"id":         c.ID,
		"body":       c.Body,
		"user_id":    c.UserID,
		"upvotes":    c.Upvoters,
		"downvotes":  c.Downvoters,
		"score":      c.Score(),
		"created_at": c.CreatedAt,
	}
	if c.QuestionID != "" {
		out["question_id"] = c.QuestionID
	}
	if c.AnswerID != "" {
		out["answer_id"] = c.AnswerID
	}
	return out
}

// writeServiceError maps service sentinel errors onto the error taxonomy.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound),
		errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrNotVerified):
		response.Error(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrDuplicateAccount):
		response.Error(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidOrExpiredToken),
		errors.Is(err, application.ErrPasswordMismatch),
		errors.Is(err, application.ErrInvalidVote),
		errors.Is(err, application.ErrAPIKeyNeeded),
		errors.Is(err, entity.ErrTitleRequired),
		errors.Is(err, entity.ErrTitleTooLong),
		errors.Is(err, entity.ErrBodyRequired),
		errors.Is(err, entity.ErrTagsRequired),
		errors.Is(err, entity.ErrCommentBodyRequired),
		errors.Is(err, entity.ErrCommentBothTargets),
		errors.Is(err, entity.ErrCommentNoTarget):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrNoSuchVerifiedUser):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, err.Error(), nil)
	case errors.Is(err, application.ErrFileTypeNotAllowed):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrStorageUnavailable):
		response.Error(c, http.StatusServiceUnavailable, err.Error(), nil)
	case errors.Is(err, application.ErrDeliveryFailure):
		response.Error(c, http.StatusInternalServerError, err.Error(), nil)
	case errors.Is(err, application.ErrAIDisabled):
		response.Error(c, http.StatusServiceUnavailable, err.Error(), nil)
	default:
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
