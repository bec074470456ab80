package line

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/calebcase/oops"
)

// Reader is a pull cursor over the lines of a stream.
type Reader struct {
	r *bufio.Reader

	consumed uint64
	number   int

	text string
	err  error
}

// NewReader returns a Reader over r. If r is already a *bufio.Reader it is
// used directly.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Reader{
		r: br,
	}
}

// Next advances to the next line. It returns false at the end of the stream
// or when a read fails, in which case Err reports the failure.
func (lr *Reader) Next() (ok bool) {
	lr.text = ""

	if lr.err != nil {
		return false
	}

	s, err := lr.r.ReadString('\n')
	lr.consumed += uint64(len(s))

	if err != nil {
		if !errors.Is(err, io.EOF) {
			lr.err = oops.Trace(err)

			return false
		}

		// Zero bytes read: end of stream.
		if len(s) == 0 {
			return false
		}
	}

	lr.number++
	lr.text = trim(s)

	return true
}

// Text returns the current line without its terminator.
func (lr *Reader) Text() string {
	return lr.text
}

// Number returns the 1-based number of the current line. It counts every line
// this Reader has produced.
func (lr *Reader) Number() int {
	return lr.number
}

// Consumed returns the number of bytes read from the stream.
func (lr *Reader) Consumed() uint64 {
	return lr.consumed
}

func (lr *Reader) Err() error {
	return lr.err
}

func trim(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}

	s = s[:len(s)-1]

	return strings.TrimSuffix(s, "\r")
}
