package ai

import (
	"context"
	"time"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
)

var _ adapter.GenerationAdapter = (*NoopAdapter)(nil)

// NoopAdapter returns a canned two-section reply for local/dev runs without
// API keys. The canned text follows the output grammar so the parser path is
// exercised end to end.
type NoopAdapter struct{}

func NewNoopAdapter() *NoopAdapter { return &NoopAdapter{} }

func (a *NoopAdapter) ModelName() string { return "noop" }

func (a *NoopAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return "[Feedback]\nLooks good.\n\n[Reply]\nDit is een testantwoord. Hoe gaat het met je?", nil
}
