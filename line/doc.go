// Package line provides the line level view of a MAF stream.
//
// A Reader turns a buffered byte stream into a single pass sequence of
// logical text lines. Line terminators are normalized:
//
//  | Input        | Text   |
//  |--------------|--------|
//  | "abc\n"      | "abc"  |
//  | "abc\r\n"    | "abc"  |
//  | "abc" (EOF)  | "abc"  |
//  | "abc\r" (EOF)| "abc\r"|
//
// Only a trailing "\n" and, when it is present, a "\r" directly in front of it
// are removed. All other bytes are passed through unmodified. The reader does
// not interpret line content.
//
// The reader borrows the underlying stream. It never closes it and keeps no
// state beyond the bufio.Reader it reads through, so a caller may create a
// new Reader over the same *bufio.Reader for every parse call.
package line
