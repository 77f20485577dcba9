package grid

import (
	"github.com/grailbio/base/bitset"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// BitsPerWord is the number of bits per machine word.
const BitsPerWord = bitset.BitsPerWord

// DefaultMark is the character denoting an occupied cell.
const DefaultMark = '@'

// Bitmap is a 2-dimensional bitmap with nRow rows and nCol columns.
type Bitmap struct {
	// bits stores the raw bits.  Logical row n of the bitmap is
	// bits[n*rowWidth:(n+1)*rowWidth].
	bits []uintptr
	// rowWidth stores the number of words in each logical bitmap row.
	rowWidth int
	nRow     int
	nCol     int
}

// NewBitmap creates an empty Bitmap.
func NewBitmap(nRow, nCol int) (b Bitmap) {
	if nRow < 0 || nCol < 0 {
		log.Panicf("grid.NewBitmap: negative dimensions %d x %d", nRow, nCol)
	}
	b.rowWidth = (nCol + BitsPerWord - 1) / BitsPerWord
	b.bits = make([]uintptr, nRow*b.rowWidth)
	b.nRow = nRow
	b.nCol = nCol
	return
}

// Parse builds a Bitmap from text rows, setting the cells equal to mark.
// Rows shorter than the longest row are treated as empty on the right.
func Parse(lines []string, mark byte) (Bitmap, error) {
	nCol := 0
	for _, line := range lines {
		if len(line) > nCol {
			nCol = len(line)
		}
	}
	if len(lines) == 0 || nCol == 0 {
		return Bitmap{}, errors.New("grid.Parse: empty grid")
	}
	b := NewBitmap(len(lines), nCol)
	for r, line := range lines {
		row := b.Row(r)
		for c := 0; c < len(line); c++ {
			if line[c] == mark {
				bitset.Set(row, c)
			}
		}
	}
	return b, nil
}

// NRow returns the number of rows.
func (b *Bitmap) NRow() int {
	return b.nRow
}

// NCol returns the number of columns.
func (b *Bitmap) NCol() int {
	return b.nCol
}

// Row returns a []uintptr corresponding to a single row of the bitmap.
func (b *Bitmap) Row(r int) []uintptr {
	base := r * b.rowWidth
	return b.bits[base : base+b.rowWidth]
}

// Test returns whether (r, c) is set.  Out-of-bounds cells are never set.
func (b *Bitmap) Test(r, c int) bool {
	if r < 0 || r >= b.nRow || c < 0 || c >= b.nCol {
		return false
	}
	return bitset.Test(b.Row(r), c)
}

// Set sets a single bit of the bitmap.  (Nothing bad happens if the bit was
// already set.)
func (b *Bitmap) Set(r, c int) {
	bitset.Set(b.Row(r), c)
}

// Clear clears a single bit of the bitmap.  (Nothing bad happens if the bit
// was already clear.)
func (b *Bitmap) Clear(r, c int) {
	bitset.Clear(b.Row(r), c)
}

// PopCount returns the number of set bits.
func (b *Bitmap) PopCount() int {
	n := 0
	for r := 0; r < b.nRow; r++ {
		for c := 0; c < b.nCol; c++ {
			if bitset.Test(b.Row(r), c) {
				n++
			}
		}
	}
	return n
}

// String renders the bitmap using '@' and '.'.
func (b *Bitmap) String() string {
	buf := make([]byte, 0, b.nRow*(b.nCol+1))
	for r := 0; r < b.nRow; r++ {
		for c := 0; c < b.nCol; c++ {
			if bitset.Test(b.Row(r), c) {
				buf = append(buf, DefaultMark)
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
