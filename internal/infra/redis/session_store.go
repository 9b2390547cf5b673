package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/model"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/repository"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/metrics"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore keeps conversation sessions in Redis so warm state survives a
// process restart. Sessions expire after the configured TTL of inactivity.
type SessionStore struct {
	client *Client
	ttl    time.Duration
}

func NewSessionStore(client *Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "conv_session:" + id
}

func (s *SessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id))
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess model.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *model.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, s.ttl); err != nil {
		return err
	}
	metrics.ObserveHistoryLen(len(sess.History))
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id))
}
