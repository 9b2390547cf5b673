// Package transcode normalizes uploaded audio for the transcriber by
// shelling out to ffmpeg over stdin/stdout pipes. No temp files.
package transcode

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/metrics"
)

var _ adapter.Transcoder = (*FFmpeg)(nil)

type FFmpeg struct {
	bin        string
	sampleRate int
}

func New(bin string, sampleRate int) *FFmpeg {
	return &FFmpeg{bin: bin, sampleRate: sampleRate}
}

// ToWAV converts whatever container the browser recorded (webm, m4a, ogg)
// into mono WAV at the configured sample rate.
func (f *FFmpeg) ToWAV(ctx context.Context, src io.Reader) ([]byte, error) {
	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.bin,
		"-i", "pipe:0",
		"-ar", strconv.Itoa(f.sampleRate),
		"-ac", "1",
		"-f", "wav",
		"pipe:1",
	)
	cmd.Stdin = src
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		metrics.TranscodeFailed()
		return nil, fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.String()))
	}
	return out.Bytes(), nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
