package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound         = errors.New("entity not found")
	ErrNoSpeech         = errors.New("no speech detected")
	ErrGenerationFailed = errors.New("text generation failed")
	ErrRateLimited      = errors.New("too many turns, slow down")
)
