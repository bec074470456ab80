package sequence

// Strand is the orientation of an aligned sequence relative to its source.
type Strand byte

// Strands
const (
	Forward Strand = '+'
	Reverse Strand = '-'
)

// ParseStrand decodes a strand field. Only "+" and "-" are valid.
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	}

	return 0, &FieldError{
		Kind:  ErrInvalidStrand,
		Field: "strand",
		Value: s,
	}
}

func (s Strand) String() string {
	switch s {
	case Forward:
		return "+"
	case Reverse:
		return "-"
	}

	return "?"
}

// MarshalText implements encoding.TextMarshaler.
func (s Strand) MarshalText() (text []byte, err error) {
	switch s {
	case Forward, Reverse:
		return []byte{byte(s)}, nil
	}

	return nil, &FieldError{
		Kind:  ErrInvalidStrand,
		Field: "strand",
		Value: string([]byte{byte(s)}),
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strand) UnmarshalText(text []byte) (err error) {
	*s, err = ParseStrand(string(text))

	return err
}
