package repository

import (
	"context"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/model"
)

// SessionStore persists conversation sessions keyed by conversation id.
// Implementations return copies; callers mutate and commit via Save.
// Get returns domain.ErrNotFound when the conversation has no session yet.
type SessionStore interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id string) error
}
