package config

import "errors"

// InvalidArgumentError is the structured diagnostic published for every
// recoverable validation problem (wrong type, unknown option, value below
// minimum). Consumers subscribed to the diagnostics error channel can
// identify it with errors.As regardless of message wording.
type InvalidArgumentError struct {
	Message string
}

// Error returns the human-readable message.
func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Name returns the stable type tag carried by every invalid-argument
// diagnostic.
func (e *InvalidArgumentError) Name() string {
	return "InvalidArgumentError"
}

// ErrInvalidLogger indicates that a caller-supplied logger is structurally
// unusable (missing or non-callable Debug/Info/Warn/Error). This is the
// only fatal validation failure: a broken logger cannot be trusted to
// report anything else, so Validate returns it immediately instead of
// emitting a diagnostic.
var ErrInvalidLogger = errors.New("invalid logger configuration: logger must have debug, info, warn and error methods")
