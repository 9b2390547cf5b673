// Package memstore provides the default in-memory SessionStore. Sessions do
// not survive restarts; the redis store covers deployments that want warm
// state.
package memstore

import (
	"context"
	"sync"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/model"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/repository"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/metrics"
)

var _ repository.SessionStore = (*SessionStore)(nil)

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func New() *SessionStore {
	return &SessionStore{sessions: make(map[string]*model.Session)}
}

// Get returns a copy; callers mutate freely and commit via Save.
func (s *SessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sess.Clone(), nil
}

func (s *SessionStore) Save(ctx context.Context, sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess.Clone()
	metrics.ObserveHistoryLen(len(sess.History))
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
