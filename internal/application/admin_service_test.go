package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devoverflow/backend/internal/domain/entity"
)

func newTestAdminService(t *testing.T) (*AdminService, *memUserRepo, *memQuestionRepo, *memAnswerRepo) {
	t.Helper()
	users := newMemUserRepo()
	questions := newMemQuestionRepo()
	answers := newMemAnswerRepo()
	return NewAdminService(users, questions, answers, nil), users, questions, answers
}

func TestAdminStats(t *testing.T) {
	svc, users, questions, answers := newTestAdminService(t)

	require.NoError(t, users.Create(&entity.User{Email: "a@example.com"}))
	require.NoError(t, users.Create(&entity.User{Email: "b@example.com"}))

	q, err := entity.NewQuestion("t", "b", []string{"go"}, "u1")
	require.NoError(t, err)
	require.NoError(t, questions.Create(q))
	require.NoError(t, answers.Create(&entity.Answer{QuestionID: q.ID, UserID: "u2", Body: "a"}))

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, Stats{UserCount: 2, QuestionCount: 1, AnswerCount: 1}, stats)
}

func TestAdminDeleteUser(t *testing.T) {
	svc, users, _, _ := newTestAdminService(t)
	ctx := context.Background()

	u := &entity.User{Email: "a@example.com"}
	require.NoError(t, users.Create(u))

	require.NoError(t, svc.DeleteUser(ctx, u.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, u.ID), ErrUserNotFound)
}

func TestAdminDeleteQuestion(t *testing.T) {
	svc, _, questions, _ := newTestAdminService(t)
	ctx := context.Background()

	q, err := entity.NewQuestion("t", "b", []string{"go"}, "u1")
	require.NoError(t, err)
	require.NoError(t, questions.Create(q))

	require.NoError(t, svc.DeleteQuestion(ctx, q.ID))
	assert.ErrorIs(t, svc.DeleteQuestion(ctx, q.ID), ErrNotFound)
}
