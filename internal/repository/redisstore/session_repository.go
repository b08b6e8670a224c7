package redisstore

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fikse-agent-be/internal/repository/contract"
	"fikse-agent-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "agent:session:"
	sessionTTL = 1 * time.Hour
)

// SessionRepository stores sessions as JSON in redis so multiple workers can
// share conversation state.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) contract.SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func (r *SessionRepository) Save(session *store.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal session %s: %v", session.ID, err)
		return
	}
	if err := r.rdb.Set(context.Background(), keyPrefix+session.ID, data, sessionTTL).Err(); err != nil {
		log.Printf("[ERROR] Failed to save session %s to redis: %v", session.ID, err)
	}
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	data, err := r.rdb.Get(context.Background(), keyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, false
	}
	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("[ERROR] Failed to unmarshal session %s: %v", sessionID, err)
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Delete(sessionID string) {
	if err := r.rdb.Del(context.Background(), keyPrefix+sessionID).Err(); err != nil {
		log.Printf("[ERROR] Failed to delete session %s from redis: %v", sessionID, err)
	}
}
