// Package maf incrementally decodes Multiple Alignment Format streams.
//
// A MAF stream is line oriented:
//
//  ##maf version=1 scoring=tba.v8
//  # tba.v8 (((human chimp) baboon) (mouse rat))
//
//  a score=23262.0
//  s hg16.chr7    27707221 13 + 158545518 gcagctgaaaaca
//  s panTro1.chr6 28869787 13 + 161576975 gcagctgaaaaca
//
// Comment lines start with '#'. An alignment block starts with an 'a' header
// line and continues with one 's' line per aligned sequence until a blank line
// or the end of the stream.
//
// Decoding is pull based: every call consumes just enough lines to produce one
// Item, either a Comment or a *Block. Memory use is bounded by the largest
// block, not the size of the stream.
//
//  d := maf.NewDecoder(r)
//  for d.Next() {
//  	switch item := d.Item().(type) {
//  	case maf.Comment:
//  	case *maf.Block:
//  	}
//  }
//  if err := d.Err(); err != nil {
//  	...
//  }
//
// Header lines are stored verbatim, including the leading 'a' marker. Use
// ParseMetadata or Block.Metadata to decode their key=value pairs.
//
// Every failure is returned as a *ParseError whose kind can be tested with
// errors.Is. The end of input is reported as io.EOF. The decoder never
// resynchronizes after an error on its own.
package maf
