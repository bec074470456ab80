package sequence_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/maf/sequence"
)

func TestDecode(t *testing.T) {
	type TC struct {
		Name   string
		Tokens []string
		Record sequence.Record
		Kind   error
	}

	tcs := []TC{
		{
			Name:   "forward",
			Tokens: []string{"chr1", "100", "50", "+", "1000", "ACGT--GT"},
			Record: sequence.Record{
				Name:     "chr1",
				Start:    100,
				Size:     50,
				Strand:   sequence.Forward,
				SrcSize:  1000,
				Residues: []byte("ACGT--GT"),
			},
		},
		{
			Name:   "reverse",
			Tokens: []string{"panTro1.chr6", "28741140", "38", "-", "161576975", "AAA-GGGAATGTTAACCAAATGA---ATTGTCTCTTACGGTG"},
			Record: sequence.Record{
				Name:     "panTro1.chr6",
				Start:    28741140,
				Size:     38,
				Strand:   sequence.Reverse,
				SrcSize:  161576975,
				Residues: []byte("AAA-GGGAATGTTAACCAAATGA---ATTGTCTCTTACGGTG"),
			},
		},
		{
			Name:   "zeros",
			Tokens: []string{"x", "0", "0", "+", "0", "-"},
			Record: sequence.Record{
				Name:     "x",
				Strand:   sequence.Forward,
				Residues: []byte("-"),
			},
		},
		{
			Name:   "residues are not validated",
			Tokens: []string{"x", "1", "2", "+", "3", "\x01é*"},
			Record: sequence.Record{
				Name:     "x",
				Start:    1,
				Size:     2,
				Strand:   sequence.Forward,
				SrcSize:  3,
				Residues: []byte("\x01é*"),
			},
		},
		{
			Name:   "leading extra tokens ignored",
			Tokens: []string{"junk", "x", "1", "2", "-", "3", "A"},
			Record: sequence.Record{
				Name:     "x",
				Start:    1,
				Size:     2,
				Strand:   sequence.Reverse,
				SrcSize:  3,
				Residues: []byte("A"),
			},
		},
		{
			Name:   "no tokens",
			Tokens: []string{},
			Kind:   sequence.ErrIncompleteLine,
		},
		{
			Name:   "five tokens",
			Tokens: []string{"chr1", "100", "50", "+", "ACGT"},
			Kind:   sequence.ErrIncompleteLine,
		},
		{
			Name:   "bad source length",
			Tokens: []string{"chr1", "100", "50", "+", "lots", "ACGT"},
			Kind:   sequence.ErrInvalidSequenceLength,
		},
		{
			Name:   "negative source length",
			Tokens: []string{"chr1", "100", "50", "+", "-1000", "ACGT"},
			Kind:   sequence.ErrInvalidSequenceLength,
		},
		{
			Name:   "bad strand",
			Tokens: []string{"chr1", "100", "50", "0", "1000", "ACGT"},
			Kind:   sequence.ErrInvalidStrand,
		},
		{
			Name:   "bad aligned length",
			Tokens: []string{"chr1", "100", "5.0", "+", "1000", "ACGT"},
			Kind:   sequence.ErrInvalidAlignedLength,
		},
		{
			Name:   "bad start",
			Tokens: []string{"chr1", "-100", "50", "+", "1000", "ACGT"},
			Kind:   sequence.ErrInvalidStart,
		},
		{
			Name:   "start overflow",
			Tokens: []string{"chr1", "18446744073709551616", "50", "+", "1000", "ACGT"},
			Kind:   sequence.ErrInvalidStart,
		},
		{
			// Right to left: the source length fails before the start.
			Name:   "first failure from the right wins",
			Tokens: []string{"chr1", "x", "50", "+", "y", "ACGT"},
			Kind:   sequence.ErrInvalidSequenceLength,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			rec, err := sequence.Decode(tc.Tokens)
			if tc.Kind != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.Kind), "got %v", err)
				require.True(t, sequence.Error.Has(tc.Kind))
				require.Equal(t, sequence.Record{}, rec)

				var fe *sequence.FieldError
				require.True(t, errors.As(err, &fe))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.Record, rec, spew.Sdump(rec))
		})
	}
}

func TestDecodeCopiesResidues(t *testing.T) {
	tokens := []string{"x", "1", "2", "+", "3", "ACGT"}

	rec, err := sequence.Decode(tokens)
	require.NoError(t, err)

	rec.Residues[0] = 'T'
	require.Equal(t, "ACGT", tokens[5])
}

func TestDecodeConversionCause(t *testing.T) {
	_, err := sequence.Decode([]string{"x", "1", "2", "+", "many", "A"})
	require.Error(t, err)

	var ne *strconv.NumError
	require.True(t, errors.As(err, &ne))
	require.Contains(t, err.Error(), `srcSize="many"`)
}

func TestParseStrand(t *testing.T) {
	for _, s := range []string{"+", "-"} {
		strand, err := sequence.ParseStrand(s)
		require.NoError(t, err)
		require.Equal(t, s, strand.String())
	}

	for _, s := range []string{"++", "", "0", "--", "+-", " +", "forward"} {
		t.Run(strconv.Quote(s), func(t *testing.T) {
			_, err := sequence.ParseStrand(s)
			require.True(t, errors.Is(err, sequence.ErrInvalidStrand), "got %v", err)
		})
	}
}

func TestStrandText(t *testing.T) {
	var s sequence.Strand

	require.NoError(t, s.UnmarshalText([]byte("-")))
	require.Equal(t, sequence.Reverse, s)

	text, err := s.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-", string(text))

	require.Error(t, s.UnmarshalText([]byte("x")))

	_, err = sequence.Strand(0).MarshalText()
	require.Error(t, err)
}

func TestRecordString(t *testing.T) {
	line := "s hg18.chr7 27578828 38 + 158545518 AAA-GGGAATGTTAACCAAATGA---ATTGTCTCTTACGGTG"

	rec, err := sequence.Decode(strings.Fields(line)[1:])
	require.NoError(t, err)

	require.Equal(t, line, rec.String())
	require.Equal(t, uint64(27578866), rec.End())
}
