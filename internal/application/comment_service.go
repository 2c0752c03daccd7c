package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/internal/domain/entity"
	repo "github.com/devoverflow/backend/internal/domain/repository"
)

// CommentService handles comments on questions and answers. The exclusive
// question-or-answer link is enforced by the Comment constructor.
type CommentService struct {
	Comments  repo.CommentRepository
	Questions repo.QuestionRepository
	Answers   repo.AnswerRepository
	Logger    *logrus.Logger
}

func NewCommentService(comments repo.CommentRepository, questions repo.QuestionRepository, answers repo.AnswerRepository, logger *logrus.Logger) *CommentService {
	return &CommentService{Comments: comments, Questions: questions, Answers: answers, Logger: logger}
}

func (s *CommentService) AddToQuestion(ctx context.Context, questionID, userID, body string) (*entity.Comment, error) {
	if _, err := s.Questions.GetByID(questionID); err != nil {
		return nil, ErrNotFound
	}
	c, err := entity.NewComment(body, userID, questionID, "")
	if err != nil {
		return nil, err
	}
	if err := s.Comments.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) AddToAnswer(ctx context.Context, answerID, userID, body string) (*entity.Comment, error) {
	if _, err := s.Answers.GetByID(answerID); err != nil {
		return nil, ErrNotFound
	}
	c, err := entity.NewComment(body, userID, "", answerID)
	if err != nil {
		return nil, err
	}
	if err := s.Comments.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) ListByQuestion(questionID string) ([]*entity.Comment, error) {
	if _, err := s.Questions.GetByID(questionID); err != nil {
		return nil, ErrNotFound
	}
	return s.Comments.ListByQuestion(questionID)
}

func (s *CommentService) ListByAnswer(answerID string) ([]*entity.Comment, error) {
	if _, err := s.Answers.GetByID(answerID); err != nil {
		return nil, ErrNotFound
	}
	return s.Comments.ListByAnswer(answerID)
}

func (s *CommentService) Update(ctx context.Context, id, userID, role, body string) (*entity.Comment, error) {
	c, err := s.Comments.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if c.UserID != userID && role != entity.RoleAdmin {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(body) == "" {
		return nil, entity.ErrCommentBodyRequired
	}
	c.Body = body
	if err := s.Comments.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, id, userID, role string) error {
	c, err := s.Comments.GetByID(id)
	if err != nil {
		return ErrNotFound
	}
	if c.UserID != userID && role != entity.RoleAdmin {
		return ErrForbidden
	}
	return s.Comments.Delete(id)
}

// Vote toggles userID's vote on a comment.
func (s *CommentService) Vote(ctx context.Context, id, userID string, dir entity.VoteDirection) (*entity.Comment, error) {
	if !dir.Valid() {
		return nil, ErrInvalidVote
	}
	c, err := s.Comments.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	c.Toggle(userID, dir)
	if err := s.Comments.UpdateVotes(c.ID, c.VoteState); err != nil {
		return nil, err
	}
	return c, nil
}
