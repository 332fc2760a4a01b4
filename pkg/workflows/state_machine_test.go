package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	sm := NewStateMachine()

	assert.True(t, sm.CanTransition(StatusPending, StatusApproved))
	assert.True(t, sm.CanTransition(StatusPending, StatusRejected))
	assert.True(t, sm.CanTransition(StatusRejected, StatusApproved))

	assert.False(t, sm.CanTransition(StatusApproved, StatusRejected))
	assert.False(t, sm.CanTransition(StatusApproved, StatusPending))
	assert.False(t, sm.CanTransition(StatusRejected, StatusPending))
}

func TestCanTransitionSameState(t *testing.T) {
	sm := NewStateMachine()

	assert.True(t, sm.CanTransition(StatusApproved, StatusApproved))
	assert.True(t, sm.CanTransition(StatusPending, StatusPending))
	assert.True(t, sm.CanTransition(StatusRejected, StatusRejected))
}

func TestCanTransitionUnknownState(t *testing.T) {
	sm := NewStateMachine()

	assert.False(t, sm.CanTransition("archived", StatusApproved))
}

func TestGetAllowedTransitions(t *testing.T) {
	sm := NewStateMachine()

	assert.ElementsMatch(t, []string{StatusApproved, StatusRejected}, sm.GetAllowedTransitions(StatusPending))
	assert.Empty(t, sm.GetAllowedTransitions(StatusApproved))
	assert.Empty(t, sm.GetAllowedTransitions("archived"))
}
