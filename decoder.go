package maf

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/calebcase/maf/line"
	"github.com/calebcase/maf/sequence"
)

// ParseItem decodes the next item from br. It reads no further than the end of
// that item. At the end of input it returns io.EOF.
//
// Line numbers in errors count from the first line read by this call.
func ParseItem(br *bufio.Reader, opts ...Option) (Item, error) {
	o := newOptions(opts)

	p := &parser{
		lr:  line.NewReader(br),
		log: o.log,
	}

	return p.item()
}

// Decoder reads successive items from a stream.
type Decoder struct {
	p *parser

	item Item
	err  error
	done bool
}

// NewDecoder returns a decoder reading from r. The decoder does not close r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := newOptions(opts)

	return &Decoder{
		p: &parser{
			lr:  line.NewReader(r),
			log: o.log,
		},
	}
}

// Decode returns the next item or io.EOF at the end of input. After a parse
// error decoding may be resumed by calling Decode again; it continues with the
// line following the failed one.
func (d *Decoder) Decode() (Item, error) {
	return d.p.item()
}

// Next advances to the next item. It returns false at the end of input or on
// the first error, after which it keeps returning false.
func (d *Decoder) Next() (ok bool) {
	if d.done {
		return false
	}

	d.item, d.err = d.p.item()
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil
		}

		d.item = nil
		d.done = true

		return false
	}

	return true
}

// Item returns the current item.
func (d *Decoder) Item() Item {
	return d.item
}

// Err returns the error that stopped Next, if any. It is nil at the end of
// input.
func (d *Decoder) Err() error {
	return d.err
}

// Line returns the number of lines read so far.
func (d *Decoder) Line() int {
	return d.p.lr.Number()
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.p.lr.Consumed()
}

type parser struct {
	lr  *line.Reader
	log *zap.Logger
}

func (p *parser) next() (text string, ok bool) {
	if !p.lr.Next() {
		return "", false
	}

	text = p.lr.Text()
	p.log.Debug("line", zap.Int("line", p.lr.Number()), zap.String("text", text))

	return text, true
}

func (p *parser) item() (Item, error) {
	for {
		text, ok := p.next()
		if !ok {
			break
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		switch text[0] {
		case '#':
			return Comment(text[1:]), nil
		case 'a':
			b, err := p.block(text)
			if err != nil {
				return nil, err
			}

			return b, nil
		}

		return nil, p.fail(&ParseError{
			Kind: ErrUnexpectedLine,
			Line: p.lr.Number(),
			Text: text,
		})
	}

	if err := p.readErr(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}

// block consumes body lines up to a blank line or the end of input.
func (p *parser) block(header string) (*Block, error) {
	b := &Block{
		Header: header,
	}

	for {
		text, ok := p.next()
		if !ok {
			break
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			return b, nil
		}

		switch fields[0] {
		case "s":
			rec, err := sequence.Decode(fields[1:])
			if err != nil {
				return nil, p.fail(p.fieldErr(err))
			}

			b.Sequences = append(b.Sequences, rec)
		default:
			return nil, p.fail(&ParseError{
				Kind: ErrBadLineType,
				Line: p.lr.Number(),
				Text: fields[0],
			})
		}
	}

	if err := p.readErr(); err != nil {
		return nil, err
	}

	return b, nil
}

func (p *parser) fieldErr(err error) *ParseError {
	pe := &ParseError{
		Kind: err,
		Line: p.lr.Number(),
		Text: p.lr.Text(),
		Err:  err,
	}

	var fe *sequence.FieldError
	if errors.As(err, &fe) {
		pe.Kind = fe.Kind
	}

	return pe
}

func (p *parser) readErr() error {
	err := p.lr.Err()
	if err == nil {
		return nil
	}

	return p.fail(&ParseError{
		Kind: ErrIOFailure,
		Line: p.lr.Number() + 1,
		Err:  err,
	})
}

func (p *parser) fail(pe *ParseError) error {
	p.log.Debug("parse error", zap.Int("line", pe.Line), zap.Error(pe))

	return pe
}
