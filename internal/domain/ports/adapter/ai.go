package adapter

import "context"

// GenerationAdapter is the port for the text-generation collaborator. The
// model identifier and generation-effort settings are fixed at construction;
// each call consumes one composed instruction string and returns the raw
// generated text.
type GenerationAdapter interface {
	Generate(ctx context.Context, prompt string) (string, error)

	// ModelName reports the configured model, for logging and metrics.
	ModelName() string
}
