package grid

import (
	"github.com/grailbio/base/log"
)

// DefaultMaxNeighbors is the neighbour count at which a roll becomes
// unreachable.
const DefaultMaxNeighbors = 4

// Cell is a (row, column) pair.
type Cell struct {
	R, C int
}

// Neighbors returns the number of set cells among the 8 cells surrounding
// (r, c).
func (b *Bitmap) Neighbors(r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if (dr != 0 || dc != 0) && b.Test(r+dr, c+dc) {
				n++
			}
		}
	}
	return n
}

// Accessible returns the set cells with fewer than maxNeighbors set
// neighbours, in row-major order.
func (b *Bitmap) Accessible(maxNeighbors int) []Cell {
	var cells []Cell
	for r := 0; r < b.nRow; r++ {
		for c := 0; c < b.nCol; c++ {
			if b.Test(r, c) && b.Neighbors(r, c) < maxNeighbors {
				cells = append(cells, Cell{r, c})
			}
		}
	}
	return cells
}

// CountAccessible returns len(b.Accessible(maxNeighbors)).
func CountAccessible(b *Bitmap, maxNeighbors int) int {
	return len(b.Accessible(maxNeighbors))
}

// RemoveAll repeatedly removes every accessible cell until none are left.
// Within a round, cells are judged against the bitmap as it was at the start
// of the round.  It returns the total number of cells removed and the number
// of rounds that removed at least one cell.  b is modified.
func RemoveAll(b *Bitmap, maxNeighbors int) (removed, rounds int) {
	candidates := b.Accessible(maxNeighbors)
	for len(candidates) > 0 {
		for _, cell := range candidates {
			b.Clear(cell.R, cell.C)
		}
		removed += len(candidates)
		rounds++
		if log.At(log.Debug) {
			log.Debug.Printf("round %d: removed %d, %d total", rounds, len(candidates), removed)
		}
		// Only neighbours of removed cells can have become accessible.
		next := make(map[Cell]struct{})
		for _, cell := range candidates {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					r, c := cell.R+dr, cell.C+dc
					if b.Test(r, c) && b.Neighbors(r, c) < maxNeighbors {
						next[Cell{r, c}] = struct{}{}
					}
				}
			}
		}
		candidates = candidates[:0]
		for cell := range next {
			candidates = append(candidates, cell)
		}
	}
	return
}
