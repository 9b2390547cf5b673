package ai

import (
	"context"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.GenerationAdapter = (*limitedAI)(nil)

type limitedAI struct {
	inner adapter.GenerationAdapter
	sem   chan struct{}
}

// NewLimited caps concurrent generation calls across all conversations.
func NewLimited(inner adapter.GenerationAdapter, maxConcurrent int) adapter.GenerationAdapter {
	if maxConcurrent <= 0 {
		return inner
	}
	return &limitedAI{
		inner: inner,
		sem:   make(chan struct{}, maxConcurrent),
	}
}

func (l *limitedAI) ModelName() string { return l.inner.ModelName() }

func (l *limitedAI) Generate(ctx context.Context, prompt string) (string, error) {
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-l.sem }()
	return l.inner.Generate(ctx, prompt)
}
