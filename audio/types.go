package audio

import "errors"

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound")
	ErrDisabled       = errors.New("audio disabled")
)
