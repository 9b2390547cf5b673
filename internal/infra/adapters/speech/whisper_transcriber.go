package speech

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/metrics"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.Transcriber = (*WhisperTranscriber)(nil)

// WhisperTranscriber implements adapter.Transcriber over the OpenAI audio
// transcription API. An empty transcript (silence) is returned as "", nil.
type WhisperTranscriber struct {
	client   openai.Client
	model    string
	language string
}

func NewWhisperTranscriber(apiKey, model, language string) (*WhisperTranscriber, error) {
	if apiKey == "" {
		return nil, errors.New("whisper: empty api key")
	}
	return &WhisperTranscriber{
		client:   openai.NewClient(option.WithAPIKey(apiKey)),
		model:    model,
		language: language,
	}, nil
}

func (w *WhisperTranscriber) Transcribe(ctx context.Context, wav []byte) (string, error) {
	start := time.Now()
	res, err := w.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model:    openai.AudioModel(w.model),
		File:     openai.File(bytes.NewReader(wav), "audio.wav", "audio/wav"),
		Language: openai.String(w.language),
	})
	metrics.ObserveSpeech("transcribe", int(time.Since(start).Milliseconds()), err == nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Text), nil
}
