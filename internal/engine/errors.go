package engine

import "fmt"

// ConfigurationError means a session cannot be started with the available
// game catalog. Fatal to session creation; callers should surface it and
// abort.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "engine: " + e.Reason
}

// InvalidStateError means a call arrived out of sequence, such as
// submitting an answer with no active session or challenge. It indicates a
// caller bug and is not retryable.
type InvalidStateError struct {
	Op string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("engine: %s requires an active session and challenge", e.Op)
}
