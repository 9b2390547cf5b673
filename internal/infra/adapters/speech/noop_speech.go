package speech

import (
	"context"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
)

var (
	_ adapter.Transcriber = (*NoopTranscriber)(nil)
	_ adapter.Synthesizer = (*NoopSynthesizer)(nil)
)

// NoopTranscriber returns a fixed transcript so the full turn pipeline can
// run locally without speech credentials.
type NoopTranscriber struct {
	Text string
}

func NewNoopTranscriber() *NoopTranscriber {
	return &NoopTranscriber{Text: "Hallo, hoe gaat het?"}
}

func (n *NoopTranscriber) Transcribe(ctx context.Context, wav []byte) (string, error) {
	return n.Text, nil
}

// NoopSynthesizer returns empty audio.
type NoopSynthesizer struct{}

func NewNoopSynthesizer() *NoopSynthesizer { return &NoopSynthesizer{} }

func (n *NoopSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return []byte{}, nil
}
