package adapter

import (
	"context"
	"io"
)

// Transcoder normalizes uploaded audio of arbitrary container/codec into
// mono WAV at the sample rate the transcriber expects. Kept narrow so the
// subprocess-based implementation can be swapped or stubbed in tests.
type Transcoder interface {
	ToWAV(ctx context.Context, src io.Reader) ([]byte, error)
}
