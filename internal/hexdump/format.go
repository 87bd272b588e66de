package hexdump

import (
	"fmt"
	"strings"
)

// RowSize is the number of bytes rendered on each dump line.
const RowSize = 16

// hexWidth is the fixed width of the hex section: two digits per slot,
// a space after every odd slot, and one trailing separator.
const hexWidth = RowSize*2 + RowSize/2 + 1

// Row is the valid region of a single dump line. Its length is between
// 1 and RowSize; only the last row of a dump may be shorter than RowSize.
type Row []byte

// PadLen returns how many byte slots are left blank at the end of the row.
func (r Row) PadLen() int {
	if len(r) >= RowSize {
		return 0
	}
	return RowSize - len(r)
}

// IsPrintable reports whether b is shown as itself in the ASCII column.
// The range deliberately runs up to 176, past the 7-bit printable set.
func IsPrintable(b byte) bool {
	return b >= 32 && b <= 176
}

// FormatOffset renders the address of a row's first byte.
func FormatOffset(offset int64) string {
	return fmt.Sprintf("%07x: ", offset)
}

// FormatHexBytes renders the hex section of a row. Missing bytes keep
// their two-column slot so the ASCII column always starts at the same place.
func FormatHexBytes(r Row) string {
	const digits = "0123456789abcdef"

	valid := min(len(r), RowSize)

	var b strings.Builder
	b.Grow(hexWidth)

	// i is the slot index across both loops; a space follows every odd slot.
	i := 0
	for ; i < valid; i++ {
		b.WriteByte(digits[r[i]>>4])
		b.WriteByte(digits[r[i]&0x0f])
		if i%2 == 1 {
			b.WriteByte(' ')
		}
	}
	for pad := r.PadLen(); pad > 0; pad, i = pad-1, i+1 {
		b.WriteString("  ")
		if i%2 == 1 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(' ')
	return b.String()
}

// FormatASCII renders the ASCII column for the valid bytes of a row.
func FormatASCII(r Row) string {
	out := make([]byte, len(r))
	for i, c := range r {
		if IsPrintable(c) {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// FormatRow renders a complete dump line without the trailing newline.
func FormatRow(offset int64, r Row) string {
	return FormatOffset(offset) + FormatHexBytes(r) + FormatASCII(r)
}
