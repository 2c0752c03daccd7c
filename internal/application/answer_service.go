package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/internal/domain/entity"
	repo "github.com/devoverflow/backend/internal/domain/repository"
)

// AnswerService handles answers under a question, including voting and
// acceptance by the question owner.
type AnswerService struct {
	Answers   repo.AnswerRepository
	Questions repo.QuestionRepository
	Logger    *logrus.Logger
}

func NewAnswerService(answers repo.AnswerRepository, questions repo.QuestionRepository, logger *logrus.Logger) *AnswerService {
	return &AnswerService{Answers: answers, Questions: questions, Logger: logger}
}

func (s *AnswerService) Create(ctx context.Context, questionID, userID, body string) (*entity.Answer, error) {
	if strings.TrimSpace(body) == "" {
		return nil, entity.ErrBodyRequired
	}
	if _, err := s.Questions.GetByID(questionID); err != nil {
		return nil, ErrNotFound
	}
	a := &entity.Answer{QuestionID: questionID, UserID: userID, Body: body}
	if err := s.Answers.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnswerService) ListByQuestion(questionID string) ([]*entity.Answer, error) {
	if _, err := s.Questions.GetByID(questionID); err != nil {
		return nil, ErrNotFound
	}
	return s.Answers.ListByQuestion(questionID)
}

func (s *AnswerService) Update(ctx context.Context, id, userID, role, body string) (*entity.Answer, error) {
	a, err := s.Answers.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if a.UserID != userID && role != entity.RoleAdmin {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(body) == "" {
		return nil, entity.ErrBodyRequired
	}
	a.Body = body
	if err := s.Answers.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnswerService) Delete(ctx context.Context, id, userID, role string) error {
	a, err := s.Answers.GetByID(id)
	if err != nil {
		return ErrNotFound
	}
	if a.UserID != userID && role != entity.RoleAdmin {
		return ErrForbidden
	}
	return s.Answers.Delete(id)
}

// Vote toggles userID's vote on an answer.
func (s *AnswerService) Vote(ctx context.Context, id, userID string, dir entity.VoteDirection) (*entity.Answer, error) {
	if !dir.Valid() {
		return nil, ErrInvalidVote
	}
	a, err := s.Answers.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	a.Toggle(userID, dir)
	if err := s.Answers.UpdateVotes(a.ID, a.VoteState); err != nil {
		return nil, err
	}
	return a, nil
}

// Accept marks an answer accepted. Only the question owner may accept.
func (s *AnswerService) Accept(ctx context.Context, id, userID string) (*entity.Answer, error) {
	a, err := s.Answers.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	q, err := s.Questions.GetByID(a.QuestionID)
	if err != nil {
		return nil, ErrNotFound
	}
	if q.UserID != userID {
		return nil, ErrForbidden
	}
	a.IsAccepted = true
	if err := s.Answers.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}
