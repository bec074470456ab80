package maf

import "github.com/calebcase/maf/sequence"

// Item is a Comment or a *Block.
type Item interface {
	item()
}

// Comment is the text of a comment line after its '#' marker.
type Comment string

func (Comment) item() {}

// Block is one alignment block.
type Block struct {
	// Header is the raw header line, including the leading 'a'.
	Header string

	// Sequences are in input order. Empty when the header is directly
	// followed by a blank line.
	Sequences []sequence.Record
}

func (*Block) item() {}

// Metadata decodes the key=value pairs of the header.
func (b *Block) Metadata() (Metadata, error) {
	return ParseMetadata(b.Header)
}
