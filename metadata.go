package maf

import (
	"fmt"
	"strconv"
	"strings"
)

// Metadata holds the key=value pairs of a block header.
type Metadata map[string]string

// ParseMetadata decodes a header line such as "a score=23262.0 pass=2". The
// leading 'a' is optional. A pair without '=' or with an empty key fails with
// ErrBadMetadata.
func ParseMetadata(header string) (Metadata, error) {
	md := Metadata{}

	for _, field := range strings.Fields(strings.TrimPrefix(header, "a")) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadMetadata, field)
		}

		md[key] = value
	}

	return md, nil
}

// Score returns the block score, if present and numeric.
func (md Metadata) Score() (score float64, ok bool) {
	v, ok := md["score"]
	if !ok {
		return 0, false
	}

	score, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}

	return score, true
}
