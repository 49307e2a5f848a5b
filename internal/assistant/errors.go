package assistant

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks references to jobs or templates that do not exist.
	ErrNotFound = errors.New("not found")
	// ErrMalformedInput marks caller input that cannot be interpreted.
	ErrMalformedInput = errors.New("malformed input")
	// ErrProcessing wraps unexpected internal failures.
	ErrProcessing = errors.New("processing failed")
)

// recoverProcessing turns a panic outside the model attempt into an ErrProcessing error.
func recoverProcessing(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrProcessing, r)
	}
}

// recoverAttempt turns a panic during a model attempt into an ordinary error,
// so the capability falls back to the rule-based path.
func recoverAttempt(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("model attempt panicked: %v", r)
	}
}
