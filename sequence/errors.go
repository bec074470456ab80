package sequence

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all sequence line errors.
var Error = errs.Class("sequence")

// Error kinds. Use errors.Is to test a decode failure against them.
var (
	ErrIncompleteLine        = Error.New("incomplete line")
	ErrInvalidStrand         = Error.New("invalid strand")
	ErrInvalidStart          = Error.New("invalid start")
	ErrInvalidAlignedLength  = Error.New("invalid aligned length")
	ErrInvalidSequenceLength = Error.New("invalid sequence length")
)

// FieldError describes a sequence line field that could not be decoded.
type FieldError struct {
	Kind  error
	Field string
	Value string

	// Err is the underlying conversion error, if any.
	Err error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %q", e.Kind, e.Value)
	}

	return fmt.Sprintf("%v: %s=%q", e.Kind, e.Field, e.Value)
}

// Is reports whether target is the kind of this error.
func (e *FieldError) Is(target error) bool {
	return target == e.Kind
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
