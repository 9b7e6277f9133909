package ruuid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid.
	// Every parse failure wraps it.
	ErrInvalidFormat = errors.New("ruuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("ruuid: invalid UUID length (expected 16 bytes)")
)

// maxQuoted bounds how much of a rejected input is echoed in error messages.
const maxQuoted = 64

// ParseError describes why a string was rejected by Parse.
type ParseError struct {
	Input  string // the rejected input
	Offset int    // byte offset of the offending character
	Reason string
}

func newParseError(input string, offset int, reason string) *ParseError {
	return &ParseError{Input: input, Offset: offset, Reason: reason}
}

func (e *ParseError) Error() string {
	in := e.Input
	if len(in) > maxQuoted {
		in = in[:maxQuoted] + "..."
	}
	return fmt.Sprintf("ruuid: invalid UUID format %q: %s at offset %d", in, e.Reason, e.Offset)
}

// Unwrap makes errors.Is(err, ErrInvalidFormat) hold for every ParseError.
func (e *ParseError) Unwrap() error {
	return ErrInvalidFormat
}
