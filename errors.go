package maf

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"

	"github.com/calebcase/maf/sequence"
)

// Error is the class of the maf error kinds.
var Error = errs.Class("maf")

// Error kinds.
var (
	ErrIOFailure      = Error.New("read failure")
	ErrUnexpectedLine = Error.New("unexpected line")
	ErrBadLineType    = Error.New("bad line type")
	ErrBadMetadata    = Error.New("bad metadata")
)

// Sequence line error kinds.
var (
	ErrIncompleteLine        = sequence.ErrIncompleteLine
	ErrInvalidStrand         = sequence.ErrInvalidStrand
	ErrInvalidStart          = sequence.ErrInvalidStart
	ErrInvalidAlignedLength  = sequence.ErrInvalidAlignedLength
	ErrInvalidSequenceLength = sequence.ErrInvalidSequenceLength
)

// ParseError is returned for every failed decode.
type ParseError struct {
	// Kind is one of the error kinds above.
	Kind error

	// Line is the number of the offending line, counted from the first
	// line the decoder read.
	Line int

	// Text is the offending line for ErrUnexpectedLine and the offending
	// token for ErrBadLineType.
	Text string

	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	switch {
	case e.Err != nil && errors.Is(e.Err, e.Kind):
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("line %d: %v: %v", e.Line, e.Kind, e.Err)
	}

	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Kind, e.Text)
}

// Is reports whether target is the kind of this error.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
