package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Is(t *testing.T) {
	s := State{Scope: ScopeSubscription, Name: "Active"}

	assert.True(t, s.Is(NameActive))
	assert.True(t, s.Is("active"))
	assert.True(t, s.Is("ACTIVE"))
	assert.False(t, s.Is(NameInactive))
	assert.False(t, s.Is(NameSuspended))
}
