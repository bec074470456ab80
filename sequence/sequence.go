package sequence

import (
	"strconv"
	"strings"
)

// Fields is the number of fields following the "s" marker.
const Fields = 6

// Record is one aligned sequence of a block.
type Record struct {
	Name     string
	Start    uint64
	Size     uint64
	Strand   Strand
	SrcSize  uint64
	Residues []byte
}

// Decode parses the fields of a sequence line. The leading "s" marker must
// already be removed from tokens.
//
// Fewer than Fields tokens fail with ErrIncompleteLine before any field is
// examined. Otherwise the last Fields tokens are decoded from right to left
// and the first failing field determines the error. Tokens in front of the
// name are ignored.
func Decode(tokens []string) (rec Record, err error) {
	if len(tokens) < Fields {
		return Record{}, &FieldError{
			Kind:  ErrIncompleteLine,
			Value: strings.Join(tokens, " "),
		}
	}

	var f [Fields]string
	copy(f[:], tokens[len(tokens)-Fields:])

	rec.Residues = []byte(f[5])

	rec.SrcSize, err = parseUint("srcSize", f[4], ErrInvalidSequenceLength)
	if err != nil {
		return Record{}, err
	}

	rec.Strand, err = ParseStrand(f[3])
	if err != nil {
		return Record{}, err
	}

	rec.Size, err = parseUint("size", f[2], ErrInvalidAlignedLength)
	if err != nil {
		return Record{}, err
	}

	rec.Start, err = parseUint("start", f[1], ErrInvalidStart)
	if err != nil {
		return Record{}, err
	}

	rec.Name = f[0]

	return rec, nil
}

// parseUint accepts unsigned base 10 integers only. Signs are rejected.
func parseUint(field, s string, kind error) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &FieldError{
			Kind:  kind,
			Field: field,
			Value: s,
			Err:   err,
		}
	}

	return v, nil
}

// End returns the offset just past the aligned region in the source sequence.
func (r Record) End() uint64 {
	return r.Start + r.Size
}

// String renders the record as a MAF "s" line.
func (r Record) String() string {
	var b strings.Builder

	b.WriteString("s ")
	b.WriteString(r.Name)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(r.Start, 10))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(r.Size, 10))
	b.WriteByte(' ')
	b.WriteString(r.Strand.String())
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(r.SrcSize, 10))
	b.WriteByte(' ')
	b.Write(r.Residues)

	return b.String()
}
