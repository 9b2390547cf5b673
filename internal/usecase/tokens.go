package usecase

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encOnce sync.Once
	enc     *tiktoken.Tiktoken
)

// estimatePromptTokens gives a best-effort token count for logging and
// metrics. cl100k_base is close enough across providers; returns 0 when the
// encoding cannot be loaded.
func estimatePromptTokens(s string) int {
	encOnce.Do(func() {
		if e, err := tiktoken.GetEncoding("cl100k_base"); err == nil {
			enc = e
		}
	})
	if enc == nil {
		return 0
	}
	return len(enc.Encode(s, nil, nil))
}
