package box

import "errors"

// Sentinel errors. Both are invalid-argument failures; callers match them with
// errors.Is.
var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidConfig   = errors.New("invalid config")
)
