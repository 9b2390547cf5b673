package speech

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/metrics"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.Synthesizer = (*TTSSynthesizer)(nil)

// TTSSynthesizer renders reply text as MP3 via the OpenAI speech API.
type TTSSynthesizer struct {
	client openai.Client
	model  string
	voice  string
}

func NewTTSSynthesizer(apiKey, model, voice string) (*TTSSynthesizer, error) {
	if apiKey == "" {
		return nil, errors.New("tts: empty api key")
	}
	return &TTSSynthesizer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		voice:  voice,
	}, nil
}

func (t *TTSSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()
	res, err := t.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(t.model),
		Voice:          openai.AudioSpeechNewParamsVoice(t.voice),
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		metrics.ObserveSpeech("synthesize", int(time.Since(start).Milliseconds()), false)
		return nil, err
	}
	defer res.Body.Close()
	audio, err := io.ReadAll(res.Body)
	metrics.ObserveSpeech("synthesize", int(time.Since(start).Milliseconds()), err == nil)
	return audio, err
}
