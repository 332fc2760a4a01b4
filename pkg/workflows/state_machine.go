package workflows

// Review approval states.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// StateMachine enforces review approval transitions
type StateMachine struct {
	allowedTransitions map[string][]string
}

// NewStateMachine creates a new state machine with allowed transitions
func NewStateMachine() *StateMachine {
	return &StateMachine{
		allowedTransitions: map[string][]string{
			StatusPending:  {StatusApproved, StatusRejected},
			StatusRejected: {StatusApproved}, // Allow reversing a rejection
			StatusApproved: {},
		},
	}
}

// CanTransition checks if a status transition is allowed.
// A same-state transition counts as allowed so repeat approvals stay idempotent.
func (sm *StateMachine) CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return false
	}
	for _, allowedTo := range allowed {
		if allowedTo == to {
			return true
		}
	}
	return false
}

// GetAllowedTransitions returns the allowed next statuses for a given status
func (sm *StateMachine) GetAllowedTransitions(from string) []string {
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return []string{}
	}
	return allowed
}
