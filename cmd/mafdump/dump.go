package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/calebcase/maf"
	"github.com/calebcase/maf/sequence"
)

// Stats counts what was decoded from one input.
type Stats struct {
	Blocks    uint64
	Sequences uint64
	Comments  uint64
	Bytes     uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("%s blocks, %s sequences, %s comments, %s read",
		humanize.Comma(int64(s.Blocks)),
		humanize.Comma(int64(s.Sequences)),
		humanize.Comma(int64(s.Comments)),
		humanize.Bytes(s.Bytes),
	)
}

type dumper struct {
	conf  Config
	log   *zap.Logger
	stdin io.Reader
	out   io.Writer
}

// dump decodes every path in order and stops at the first failure.
func (d *dumper) dump(paths []string) (err error) {
	for _, path := range paths {
		stats, err := d.dumpFile(path)
		if err != nil {
			d.log.Error("decode failed", zap.String("path", path), zap.Error(err))

			return err
		}

		d.log.Info("decoded", zap.String("path", path), zap.Stringer("stats", stats))

		if d.conf.Format == FormatSummary {
			_, err = fmt.Fprintf(d.out, "%s: %s\n", path, stats)
			if err != nil {
				return Error.Wrap(err)
			}
		}
	}

	return nil
}

func (d *dumper) dumpFile(path string) (stats Stats, err error) {
	rc, err := d.open(path)
	if err != nil {
		return stats, err
	}
	defer func() {
		cerr := rc.Close()
		if err == nil && cerr != nil {
			err = Error.Wrap(cerr)
		}
	}()

	out := bufio.NewWriter(d.out)
	defer func() {
		ferr := out.Flush()
		if err == nil && ferr != nil {
			err = Error.Wrap(ferr)
		}
	}()

	w := d.writer(out)

	dec := maf.NewDecoder(rc, maf.WithLogger(d.log.Named("maf")))
	for dec.Next() {
		item := dec.Item()

		switch item := item.(type) {
		case maf.Comment:
			stats.Comments++

			if !d.conf.Comments {
				continue
			}
		case *maf.Block:
			stats.Blocks++
			stats.Sequences += uint64(len(item.Sequences))
		}

		if w == nil {
			continue
		}

		err = w(item)
		if err != nil {
			return stats, Error.Wrap(err)
		}
	}
	stats.Bytes = dec.Consumed()

	if err := dec.Err(); err != nil {
		return stats, Error.Wrap(err)
	}

	return stats, nil
}

// writer returns the item writer for the configured format, or nil when items
// are only counted.
func (d *dumper) writer(w io.Writer) func(maf.Item) error {
	switch d.conf.Format {
	case FormatMAF:
		return maf.NewEncoder(w).Encode
	case FormatJSON:
		enc := json.NewEncoder(w)

		return func(item maf.Item) error {
			return enc.Encode(newJSONItem(item))
		}
	case FormatSpew:
		return func(item maf.Item) error {
			spew.Fdump(w, item)

			return nil
		}
	}

	return nil
}

type jsonRecord struct {
	Name     string          `json:"name"`
	Start    uint64          `json:"start"`
	Size     uint64          `json:"size"`
	Strand   sequence.Strand `json:"strand"`
	SrcSize  uint64          `json:"srcSize"`
	Residues string          `json:"residues"`
}

type jsonItem struct {
	Comment   *string      `json:"comment,omitempty"`
	Header    string       `json:"header,omitempty"`
	Sequences []jsonRecord `json:"sequences,omitempty"`
}

func newJSONItem(item maf.Item) jsonItem {
	switch item := item.(type) {
	case maf.Comment:
		text := string(item)

		return jsonItem{Comment: &text}
	case *maf.Block:
		ji := jsonItem{
			Header:    item.Header,
			Sequences: make([]jsonRecord, 0, len(item.Sequences)),
		}

		for _, rec := range item.Sequences {
			ji.Sequences = append(ji.Sequences, jsonRecord{
				Name:     rec.Name,
				Start:    rec.Start,
				Size:     rec.Size,
				Strand:   rec.Strand,
				SrcSize:  rec.SrcSize,
				Residues: string(rec.Residues),
			})
		}

		return ji
	}

	return jsonItem{}
}

// open returns the decompressed contents of path. Gzip input is detected by
// its magic bytes.
func (d *dumper) open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser

	if path == "-" {
		src = io.NopCloser(d.stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, Error.Wrap(err)
		}

		src = f
	}

	br := bufio.NewReader(src)

	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		_ = src.Close()

		return nil, Error.Wrap(err)
	}

	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			_ = src.Close()

			return nil, Error.Wrap(err)
		}

		return &readCloser{
			Reader:  zr,
			closers: []io.Closer{zr, src},
		}, nil
	}

	return &readCloser{
		Reader:  br,
		closers: []io.Closer{src},
	}, nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() (err error) {
	for _, c := range rc.closers {
		cerr := c.Close()
		if err == nil {
			err = cerr
		}
	}

	return err
}
