package entity

import (
	"errors"
	"strings"
	"time"
)

// Question limits mirrored in the API validation layer.
const MaxQuestionTitleLen = 200

var (
	ErrTitleRequired = errors.New("question title is required")
	ErrTitleTooLong  = errors.New("question title cannot be more than 200 characters")
	ErrBodyRequired  = errors.New("body is required")
	ErrTagsRequired  = errors.New("at least one tag is required")
)

// Question is a votable post opening a thread of answers.
type Question struct {
	ID     string
	Title  string
	Body   string
	Tags   []string
	UserID string
	VoteState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TagCount is one row of the tag-usage ranking, most used first. The slice
// form keeps the ordering through JSON serialization.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// NewQuestion validates and builds a question owned by userID.
func NewQuestion(title, body string, tags []string, userID string) (*Question, error) {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return nil, ErrTitleRequired
	case len(title) > MaxQuestionTitleLen:
		return nil, ErrTitleTooLong
	case strings.TrimSpace(body) == "":
		return nil, ErrBodyRequired
	case len(tags) == 0:
		return nil, ErrTagsRequired
	}
	return &Question{Title: title, Body: body, Tags: tags, UserID: userID}, nil
}
