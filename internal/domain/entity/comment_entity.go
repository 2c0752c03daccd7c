package entity

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCommentBodyRequired = errors.New("comment body is required")
	ErrCommentBothTargets  = errors.New("a comment cannot be linked to both a question and an answer")
	ErrCommentNoTarget     = errors.New("a comment must be linked to either a question or an answer")
)

// Comment is a votable remark attached to exactly one of a question or an
// answer. The exclusive link is enforced at construction.
type Comment struct {
	ID         string
	Body       string
	UserID     string
	QuestionID string
	AnswerID   string
	VoteState
	CreatedAt time.Time
}

// NewComment validates and builds a comment. Exactly one of questionID and
// answerID must be set.
func NewComment(body, userID, questionID, answerID string) (*Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrCommentBodyRequired
	}
	if questionID != "" && answerID != "" {
		return nil, ErrCommentBothTargets
	}
	if questionID == "" && answerID == "" {
		return nil, ErrCommentNoTarget
	}
	return &Comment{Body: body, UserID: userID, QuestionID: questionID, AnswerID: answerID}, nil
}
