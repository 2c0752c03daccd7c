package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion(t *testing.T) {
	t.Parallel()

	q, err := NewQuestion("  How do goroutines work?  ", "details here", []string{"go"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "How do goroutines work?", q.Title)
	assert.Equal(t, "u1", q.UserID)
	assert.Equal(t, 0, q.Score())
}

func TestNewQuestion_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		body  string
		tags  []string
		want  error
	}{
		{"empty title", "", "body", []string{"go"}, ErrTitleRequired},
		{"whitespace title", "   ", "body", []string{"go"}, ErrTitleRequired},
		{"title too long", strings.Repeat("a", MaxQuestionTitleLen+1), "body", []string{"go"}, ErrTitleTooLong},
		{"empty body", "title", "  ", []string{"go"}, ErrBodyRequired},
		{"no tags", "title", "body", nil, ErrTagsRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuestion(tt.title, tt.body, tt.tags, "u1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewQuestion_TitleAtLimit(t *testing.T) {
	t.Parallel()

	_, err := NewQuestion(strings.Repeat("a", MaxQuestionTitleLen), "body", []string{"go"}, "u1")
	assert.NoError(t, err)
}
