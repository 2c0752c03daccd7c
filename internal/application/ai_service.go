package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	repo "github.com/devoverflow/backend/internal/domain/repository"
)

var (
	ErrAIDisabled   = errors.New("AI features are currently disabled")
	ErrAPIKeyNeeded = errors.New("an API key is required for this feature")
)

// AIService fronts the chatbot integration. Responses are mocked; the
// per-user API key handling is real and the key is stored on the user row,
// never serialized outward.
type AIService struct {
	Users     repo.UserRepository
	Logger    *logrus.Logger
	Enabled   bool
	ServerKey string
	ModelName string
}

func NewAIService(users repo.UserRepository, logger *logrus.Logger, enabled bool, serverKey string) *AIService {
	return &AIService{Users: users, Logger: logger, Enabled: enabled, ServerKey: serverKey, ModelName: "Google Gemini Pro"}
}

// Status describes the AI integration availability.
type AIStatus struct {
	Enabled bool   `json:"ai_enabled"`
	Model   string `json:"model"`
	Version string `json:"version"`
}

func (s *AIService) Status() AIStatus {
	return AIStatus{Enabled: s.Enabled, Model: s.ModelName, Version: "1.0"}
}

// Chat answers a query on behalf of userID. A key supplied with the request
// is stored for later calls; otherwise the stored key, then the server-wide
// key, is used.
func (s *AIService) Chat(ctx context.Context, userID, query, apiKey string) (string, error) {
	if !s.Enabled {
		return "", ErrAIDisabled
	}
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return "", ErrUserNotFound
	}

	if apiKey != "" {
		u.GeminiAPIKey = apiKey
		if err := s.Users.Update(u); err != nil {
			return "", err
		}
	}

	key := u.GeminiAPIKey
	if key == "" {
		key = s.ServerKey
	}
	if key == "" {
		return "", ErrAPIKeyNeeded
	}

	if s.Logger != nil && len(key) >= 4 {
		s.Logger.WithField("key_suffix", key[len(key)-4:]).Debug("dispatching AI call")
	}
	return s.complete(ctx, query, key)
}

// complete is a placeholder for the real Gemini call.
func (s *AIService) complete(ctx context.Context, query, apiKey string) (string, error) {
	return fmt.Sprintf("This is a mock response from Gemini for the query: %q", query), nil
}

// The suggestion endpoints below are mocked like the chat completion; unlike
// Chat they need no API key, so they stay usable while the wiring is stubbed.

// SuggestAnswer proposes an answer for a question.
func (s *AIService) SuggestAnswer(questionID string) string {
	return "AI suggests: The answer might be 42."
}

// ComposeAnswer drafts a full answer for a question.
func (s *AIService) ComposeAnswer(questionID string) string {
	return fmt.Sprintf("AI created answer for question %s", questionID)
}

// SuggestTags proposes tags for a draft question.
func (s *AIService) SuggestTags(title, body string) []string {
	return []string{"ai-suggestion-1", "ai-suggestion-2"}
}

// SuggestImprovements reviews a draft question.
func (s *AIService) SuggestImprovements(title, body string) string {
	return "AI suggests improving the title and adding a code block."
}
