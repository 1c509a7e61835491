package encoder

import "errors"

// ErrNotFound is returned by Available when the encoder is not on the search path
var ErrNotFound = errors.New("encoder not found")

// UnknownErrorMessage is reported when the encoder exits non-zero without a word on stderr
const UnknownErrorMessage = "unknown encoder error"

// EncodeError describes a failed encoder run for one file
type EncodeError struct {
	Source   string
	ExitCode int    // -1 if the process never ran or was killed
	Stderr   string // last non-empty line of the encoder's stderr
	Err      error
}

// Error implements error. A process that never started reports why.
func (e *EncodeError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.ExitCode < 0 && e.Err != nil {
		return e.Err.Error()
	}
	return UnknownErrorMessage
}

// Unwrap returns the underlying process error
func (e *EncodeError) Unwrap() error {
	return e.Err
}
