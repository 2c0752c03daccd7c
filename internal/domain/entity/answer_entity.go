package entity

import "time"

// Answer is a votable response to a question. At most one answer per
// question carries IsAccepted, set by the question owner.
type Answer struct {
	ID         string
	QuestionID string
	UserID     string
	Body       string
	IsAccepted bool
	VoteState
	CreatedAt time.Time
	UpdatedAt time.Time
}
