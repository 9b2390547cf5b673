package ai

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
)

var _ adapter.GenerationAdapter = (*GeminiAdapter)(nil)

// GeminiAdapter implements the generation port using the official SDK.
// The instruction prompt is self-contained (persona, history, task), so each
// call is a single-shot GenerateContent rather than a chat session.
type GeminiAdapter struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func NewGeminiAdapter(ctx context.Context, apiKey, baseURL, model string, maxOut, thinkingBudget int) (*GeminiAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: empty api key")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: baseURL,
		},
	})
	if err != nil {
		return nil, err
	}
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxOut),
		ThinkingConfig: &genai.ThinkingConfig{
			// Replies are conversational; effort beyond the configured
			// budget only adds latency before speech.
			ThinkingBudget: genai.Ptr(int32(thinkingBudget)),
		},
	}
	return &GeminiAdapter{client: c, model: model, config: cfg}, nil
}

func (g *GeminiAdapter) ModelName() string { return g.model }

func (g *GeminiAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", err
	}

	text := ""
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if t := resp.Candidates[0].Content.Parts[0].Text; t != "" {
			text = t
		}
	}
	return strings.TrimSpace(text), nil
}
