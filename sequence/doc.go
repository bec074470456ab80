// Package sequence decodes the sequence ("s") lines of a MAF alignment block.
//
// A sequence line carries six whitespace separated fields after its marker:
//
//  s  name      start  size  strand  srcSize    residues
//  s  hg18.chr7 27578828 38  +       158545518  AAA-GGGAATGTTAACCAAATGA---ATTGTCTCTTACGGTG
//
// Start is the 0-based offset of the aligned region in the source sequence,
// size is the number of non-gap residues it covers, and srcSize is the total
// length of the source sequence. Residues are kept byte for byte, gap
// characters included, and are not checked against any alphabet.
//
// Fields are decoded from the end of the line toward the front, so the name
// is whatever token precedes the five trailing fields.
package sequence
