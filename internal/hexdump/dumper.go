package hexdump

import (
	"bufio"
	"fmt"
	"io"
)

// Stats summarizes a finished dump.
type Stats struct {
	Rows  int
	Bytes int64
}

// Dumper writes hex dump lines to an output sink. The row buffer is owned
// by the Dumper and reused for every row, so a Dumper must not be shared
// between goroutines.
type Dumper struct {
	w     *bufio.Writer
	row   [RowSize]byte
	stats Stats
}

// New returns a Dumper writing to w.
func New(w io.Writer) *Dumper {
	return &Dumper{w: bufio.NewWriter(w)}
}

// Dump reads src to completion and writes one line per 16-byte row.
//
// A short read ends the dump after its bytes are written as the final row.
// Read errors are treated the same as end of input; only errors writing to
// the sink are returned.
func (d *Dumper) Dump(src io.Reader) error {
	d.stats = Stats{}

	var offset int64
	for {
		n, _ := io.ReadFull(src, d.row[:])
		if n == 0 {
			break
		}

		if _, err := d.w.WriteString(FormatRow(offset, Row(d.row[:n]))); err != nil {
			return fmt.Errorf("failed to write row at %#x: %w", offset, err)
		}
		if err := d.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write row at %#x: %w", offset, err)
		}
		d.stats.Rows++
		d.stats.Bytes += int64(n)

		if n < RowSize {
			break
		}
		offset += RowSize
	}

	if err := d.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// Stats returns the counters of the most recent Dump.
func (d *Dumper) Stats() Stats {
	return d.stats
}
