package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndLookup(t *testing.T) {
	sessions := NewSessionService()

	token := sessions.Create("ms1")
	assert.NotEmpty(t, token)

	username, ok := sessions.Lookup(token)
	assert.True(t, ok)
	assert.Equal(t, "ms1", username)
}

func TestLookup_UnknownToken(t *testing.T) {
	sessions := NewSessionService()

	_, ok := sessions.Lookup("not-a-token")
	assert.False(t, ok)
}

func TestCreate_TokensAreUnique(t *testing.T) {
	sessions := NewSessionService()

	first := sessions.Create("ms1")
	second := sessions.Create("ms1")
	assert.NotEqual(t, first, second)

	// Both sessions stay valid; there is no per-teacher limit.
	_, ok := sessions.Lookup(first)
	assert.True(t, ok)
	_, ok = sessions.Lookup(second)
	assert.True(t, ok)
}
