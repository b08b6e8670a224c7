package store

import (
	"fikse-agent-be/internal/entity"
	"fikse-agent-be/pkg/rank"
)

// Conversation states. Transitions are linear with a reset escape from any
// state back to greeting.
const (
	StateGreeting       = "greeting"
	StateSearching      = "searching"
	StateSelecting      = "selecting"
	StateManualAddition = "manual_addition"
	StateConfirming     = "confirming"
	StateCompleted      = "completed"
)

// Session is the per-conversation state. Turns for one session id must be
// applied sequentially by the caller; the session itself carries no lock.
type Session struct {
	ID       string `json:"id"`
	UserName string `json:"user_name,omitempty"`
	State    string `json:"state"`

	// Suggestions shown to the user, waiting for a selection.
	Suggestions []rank.Candidate `json:"suggestions,omitempty"`

	// Draft order being assembled; finalized only from confirming.
	Draft *entity.Order `json:"draft,omitempty"`

	// Set after an affirmative in manual_addition: the next free-text
	// message is a description of an extra service to search for.
	AwaitingManualEntry bool `json:"awaiting_manual_entry,omitempty"`

	LastQuery string `json:"last_query,omitempty"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		State: StateGreeting,
		Draft: entity.NewDraftOrder(),
	}
}
