package dto

// AgentTurnRequest is one conversation turn.
type AgentTurnRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// AgentTurnResponse carries the reply plus the structured session state the
// UI renders (current state, suggestions if any, draft order if any).
type AgentTurnResponse struct {
	SessionId   string         `json:"session_id"`
	Intent      string         `json:"intent"`
	Reply       string         `json:"reply"`
	State       string         `json:"state"`
	Suggestions []SearchResult `json:"suggestions,omitempty"`
	DraftOrder  *OrderResponse `json:"draft_order,omitempty"`
	Order       *OrderResponse `json:"order,omitempty"`
}

// SessionStateResponse is the debugging snapshot of one session.
type SessionStateResponse struct {
	SessionId        string         `json:"session_id"`
	UserName         string         `json:"user_name,omitempty"`
	State            string         `json:"state"`
	SuggestionsCount int            `json:"suggestions_count"`
	DraftOrder       *OrderResponse `json:"draft_order,omitempty"`
}
