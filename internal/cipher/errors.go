package cipher

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by the typed errors below.
var (
	// ErrUnknownKind is wrapped when a cipher kind outside the known six is requested.
	ErrUnknownKind = errors.New("unknown cipher kind")

	// ErrShiftRequired is wrapped when Caesar decoding is asked for without a shift.
	ErrShiftRequired = errors.New("caesar decode requires a shift")

	// ErrMalformed is wrapped by every DecodeError.
	ErrMalformed = errors.New("malformed cipher text")
)

// DecodeError reports cipher text that cannot be decoded by a deterministic cipher.
type DecodeError struct {
	Kind    Kind   // cipher that rejected the input
	Input   string // offending token or whole input
	Message string // human-readable reason
	Err     error  // underlying error, if any
}

func (e *DecodeError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("decode %s: %q: %s", e.Kind, e.Input, e.Message)
	}
	return fmt.Sprintf("decode %s: %s", e.Kind, e.Message)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformed, e.Err}
	}
	return []error{ErrMalformed}
}

// InvalidParameterError reports misuse of the engine API: an unknown kind, a
// missing Caesar shift, a bad weight table or an unencodable character.
type InvalidParameterError struct {
	Param   string
	Value   any
	Message string
	Err     error
}

func (e *InvalidParameterError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid parameter: %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("invalid parameter: %s", e.Message)
}

func (e *InvalidParameterError) Unwrap() error {
	return e.Err
}

func newDecodeError(kind Kind, input, message string, err error) error {
	return &DecodeError{Kind: kind, Input: input, Message: message, Err: err}
}

func unknownKind(kind Kind) error {
	return &InvalidParameterError{
		Param:   "kind",
		Value:   string(kind),
		Message: fmt.Sprintf("unknown cipher kind %q", string(kind)),
		Err:     ErrUnknownKind,
	}
}
