package maf

import (
	"bytes"
	"io"
	"strings"

	"github.com/calebcase/oops"

	"github.com/calebcase/maf/sequence"
)

// ErrInvalidItem is returned when an item cannot be written as MAF text.
var ErrInvalidItem = Error.New("invalid item")

// Encoder writes items as MAF text.
type Encoder struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes one item. Blocks are followed by a blank line so that the
// output decodes back into the same items.
func (e *Encoder) Encode(item Item) (err error) {
	e.buf.Reset()

	switch item := item.(type) {
	case Comment:
		if strings.ContainsAny(string(item), "\r\n") {
			return oops.Trace(ErrInvalidItem)
		}

		e.buf.WriteByte('#')
		e.buf.WriteString(string(item))
		e.buf.WriteByte('\n')
	case *Block:
		if item == nil ||
			!strings.HasPrefix(item.Header, "a") ||
			strings.ContainsAny(item.Header, "\r\n") {

			return oops.Trace(ErrInvalidItem)
		}

		e.buf.WriteString(item.Header)
		e.buf.WriteByte('\n')

		for _, rec := range item.Sequences {
			if !encodable(rec) {
				return oops.Trace(ErrInvalidItem)
			}

			e.buf.WriteString(rec.String())
			e.buf.WriteByte('\n')
		}

		e.buf.WriteByte('\n')
	default:
		return oops.Trace(ErrInvalidItem)
	}

	_, err = e.w.Write(e.buf.Bytes())
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// encodable reports whether rec survives a write and a re-read unchanged.
func encodable(rec sequence.Record) bool {
	if rec.Name == "" || strings.ContainsAny(rec.Name, " \t\r\n\v\f") {
		return false
	}

	if len(rec.Residues) == 0 || bytes.ContainsAny(rec.Residues, " \t\r\n\v\f") {
		return false
	}

	return rec.Strand == sequence.Forward || rec.Strand == sequence.Reverse
}
