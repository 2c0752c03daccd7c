package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle_CastAndRetract(t *testing.T) {
	t.Parallel()

	var v VoteState

	v.Toggle("u1", VoteUp)
	assert.Equal(t, []string{"u1"}, v.Upvoters)
	assert.Empty(t, v.Downvoters)
	assert.Equal(t, 1, v.Score())

	// same vote again retracts
	v.Toggle("u1", VoteUp)
	assert.Empty(t, v.Upvoters)
	assert.Empty(t, v.Downvoters)
	assert.Equal(t, 0, v.Score())
}

func TestToggle_SwitchDirection(t *testing.T) {
	t.Parallel()

	var v VoteState

	v.Toggle("u1", VoteUp)
	v.Toggle("u1", VoteDown)

	assert.Empty(t, v.Upvoters)
	assert.Equal(t, []string{"u1"}, v.Downvoters)
	assert.Equal(t, -1, v.Score())

	v.Toggle("u1", VoteUp)
	assert.Equal(t, []string{"u1"}, v.Upvoters)
	assert.Empty(t, v.Downvoters)
}

func TestToggle_MutualExclusion(t *testing.T) {
	t.Parallel()

	var v VoteState
	v.Toggle("u1", VoteUp)
	v.Toggle("u2", VoteUp)
	v.Toggle("u3", VoteDown)
	v.Toggle("u2", VoteDown)

	// no user ever appears in both sets
	for _, up := range v.Upvoters {
		assert.NotContains(t, v.Downvoters, up)
	}
	assert.Equal(t, []string{"u1"}, v.Upvoters)
	assert.ElementsMatch(t, []string{"u3", "u2"}, v.Downvoters)
	assert.Equal(t, -1, v.Score())
}

func TestToggle_OtherVotersUntouched(t *testing.T) {
	t.Parallel()

	v := VoteState{Upvoters: []string{"a", "b", "c"}}
	v.Toggle("b", VoteDown)

	assert.Equal(t, []string{"a", "c"}, v.Upvoters)
	assert.Equal(t, []string{"b"}, v.Downvoters)
}

func TestVoteDirectionValid(t *testing.T) {
	t.Parallel()

	assert.True(t, VoteUp.Valid())
	assert.True(t, VoteDown.Valid())
	assert.False(t, VoteDirection("sideways").Valid())
	assert.False(t, VoteDirection("").Valid())
}
