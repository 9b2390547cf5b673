package adapter

import "context"

// Transcriber is the port for the speech-to-text collaborator. It consumes
// normalized mono audio (WAV, fixed sample rate, single channel) and returns
// the best transcript. An empty transcript means no speech was detected and
// is a normal outcome, not an error.
type Transcriber interface {
	Transcribe(ctx context.Context, wav []byte) (string, error)
}

// Synthesizer is the port for the text-to-speech collaborator. It renders
// reply text as encoded audio bytes in the configured voice.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
