package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devoverflow/backend/internal/domain/entity"
)

func TestAIChat_Disabled(t *testing.T) {
	svc := NewAIService(newMemUserRepo(), nil, false, "")

	_, err := svc.Chat(context.Background(), "u1", "hello", "")
	assert.ErrorIs(t, err, ErrAIDisabled)
	assert.False(t, svc.Status().Enabled)
}

func TestAIChat_KeyFallback(t *testing.T) {
	users := newMemUserRepo()
	u := &entity.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, users.Create(u))
	ctx := context.Background()

	// no key anywhere
	svc := NewAIService(users, nil, true, "")
	_, err := svc.Chat(ctx, u.ID, "hello", "")
	assert.ErrorIs(t, err, ErrAPIKeyNeeded)

	// server key suffices
	svc = NewAIService(users, nil, true, "server-key")
	out, err := svc.Chat(ctx, u.ID, "hello", "")
	require.NoError(t, err)
	assert.Contains(t, out, "hello")

	// a supplied key is stored on the user for later calls
	svc = NewAIService(users, nil, true, "")
	_, err = svc.Chat(ctx, u.ID, "hello", "user-key")
	require.NoError(t, err)

	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-key", stored.GeminiAPIKey)

	_, err = svc.Chat(ctx, u.ID, "again", "")
	assert.NoError(t, err)
}

func TestAIChat_UnknownUser(t *testing.T) {
	svc := NewAIService(newMemUserRepo(), nil, true, "server-key")

	_, err := svc.Chat(context.Background(), "missing", "hello", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAISuggestions(t *testing.T) {
	svc := NewAIService(newMemUserRepo(), nil, true, "")

	assert.Equal(t, "AI suggests: The answer might be 42.", svc.SuggestAnswer("q1"))
	assert.Equal(t, "AI created answer for question q1", svc.ComposeAnswer("q1"))
	assert.Equal(t, []string{"ai-suggestion-1", "ai-suggestion-2"}, svc.SuggestTags("title", "body"))
	assert.Equal(t, "AI suggests improving the title and adding a code block.", svc.SuggestImprovements("title", "body"))
}
