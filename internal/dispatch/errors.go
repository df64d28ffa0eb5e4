package dispatch

import (
	"errors"
	"fmt"
)

// ErrCredentialMissing is returned when an AI-routed invocation is attempted
// without the provider credential set. The check happens before any network
// activity.
var ErrCredentialMissing = errors.New("API key environment variable not set")

// ActionError reports a quick-command action that exited non-zero or failed
// to launch. It aborts the remaining pipeline.
type ActionError struct {
	Action string
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("command failed: %v (action: %s)", e.Err, e.Action)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
