package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/internal/domain/entity"
	repo "github.com/devoverflow/backend/internal/domain/repository"
)

// AdminService backs the role-gated administration endpoints.
type AdminService struct {
	Users     repo.UserRepository
	Questions repo.QuestionRepository
	Answers   repo.AnswerRepository
	Logger    *logrus.Logger
}

func NewAdminService(users repo.UserRepository, questions repo.QuestionRepository, answers repo.AnswerRepository, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Questions: questions, Answers: answers, Logger: logger}
}

// Stats are the platform-wide counters shown on the admin dashboard.
type Stats struct {
	UserCount     int `json:"user_count"`
	QuestionCount int `json:"question_count"`
	AnswerCount   int `json:"answer_count"`
}

func (s *AdminService) ListUsers() ([]*entity.User, error) {
	return s.Users.List()
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.Users.GetByID(id); err != nil {
		return ErrUserNotFound
	}
	return s.Users.Delete(id)
}

func (s *AdminService) ListQuestions(limit, offset int) ([]*entity.Question, error) {
	return s.Questions.List(limit, offset)
}

func (s *AdminService) DeleteQuestion(ctx context.Context, id string) error {
	if _, err := s.Questions.GetByID(id); err != nil {
		return ErrNotFound
	}
	return s.Questions.Delete(id)
}

func (s *AdminService) GetStats() (Stats, error) {
	users, err := s.Users.Count()
	if err != nil {
		return Stats{}, err
	}
	questions, err := s.Questions.Count()
	if err != nil {
		return Stats{}, err
	}
	answers, err := s.Answers.Count()
	if err != nil {
		return Stats{}, err
	}
	return Stats{UserCount: users, QuestionCount: questions, AnswerCount: answers}, nil
}
