package regex

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every error ParseStrict returns.
var ErrMalformed = errors.New("malformed pattern")

// SyntaxError reports where and why a pattern was rejected.
type SyntaxError struct {
	// Offset is the byte offset into the pattern, or -1 if unknown.
	Offset int
	Reason string
	inner  error
}

func newSyntaxError(offset int, reason string, inner error) *SyntaxError {
	return &SyntaxError{Offset: offset, Reason: reason, inner: inner}
}

func (e *SyntaxError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("syntax error: %s", e.Reason)
	}
	return fmt.Sprintf("syntax error at %d: %s", e.Offset, e.Reason)
}

func (e *SyntaxError) Unwrap() []error {
	if e.inner == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.inner}
}
