package contract

import "fikse-agent-be/pkg/store"

// SessionRepository abstracts conversation session storage so the agent can
// run against memory, redis, or anything else keyed by session id.
type SessionRepository interface {
	Save(session *store.Session)
	Get(sessionID string) (*store.Session, bool)
	Delete(sessionID string)
}
