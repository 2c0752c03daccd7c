package repository

import "github.com/devoverflow/backend/internal/domain/entity"

// QuestionRepository defines question persistence operations.
type QuestionRepository interface {
	Create(q *entity.Question) error
	GetByID(id string) (*entity.Question, error)
	Update(q *entity.Question) error
	// UpdateVotes persists only the vote sets of the row with the given id.
	UpdateVotes(id string, votes entity.VoteState) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Question, error)
	// TagCounts returns tag usage frequency, most used first.
	TagCounts(limit int) ([]entity.TagCount, error)
	Count() (int, error)
}

// AnswerRepository defines answer persistence operations.
type AnswerRepository interface {
	Create(a *entity.Answer) error
	GetByID(id string) (*entity.Answer, error)
	Update(a *entity.Answer) error
	UpdateVotes(id string, votes entity.VoteState) error
	Delete(id string) error
	ListByQuestion(questionID string) ([]*entity.Answer, error)
	Count() (int, error)
}

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(c *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	Update(c *entity.Comment) error
	UpdateVotes(id string, votes entity.VoteState) error
	Delete(id string) error
	ListByQuestion(questionID string) ([]*entity.Comment, error)
	ListByAnswer(answerID string) ([]*entity.Comment, error)
}
