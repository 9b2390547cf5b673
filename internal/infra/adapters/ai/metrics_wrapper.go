package ai

import (
	"context"
	"time"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/metrics"
)

// Compile-time check
var _ adapter.GenerationAdapter = (*measuredAI)(nil)

type measuredAI struct {
	inner    adapter.GenerationAdapter
	provider string
}

// WithMetrics wraps a generation adapter with latency/success observation.
func WithMetrics(inner adapter.GenerationAdapter, provider string) adapter.GenerationAdapter {
	return &measuredAI{inner: inner, provider: provider}
}

func (m *measuredAI) ModelName() string { return m.inner.ModelName() }

func (m *measuredAI) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := m.inner.Generate(ctx, prompt)
	metrics.ObserveGeneration(m.provider, m.inner.ModelName(), int(time.Since(start).Milliseconds()), err == nil)
	return out, err
}
