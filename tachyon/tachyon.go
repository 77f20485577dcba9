// Package tachyon simulates tachyon beams moving down through a manifold of
// splitters.
//
// A beam enters at 'S' and moves straight down.  When it reaches a splitter
// ('^'), it stops there and two new beams continue downward from the cells
// immediately left and right of the splitter.  Beams that end up in the same
// cell merge.  Counting instead every distinct path a single particle could
// take gives the number of timelines.
package tachyon

import (
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

const (
	// Start marks the cell where the beam enters.
	Start = 'S'
	// Splitter marks a beam splitter.
	Splitter = '^'
)

// ErrNoStart is returned by Simulate when the manifold has no entry point.
var ErrNoStart = errors.New("tachyon: no start cell 'S' in manifold")

// Result holds both answers.
type Result struct {
	// Splits is the number of splitters reached by at least one beam.
	Splits int
	// Timelines is the number of distinct paths through the manifold.
	Timelines uint64
}

// Simulate runs the beam through every row of lines.
func Simulate(lines []string) (Result, error) {
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	var (
		res     Result
		started bool
		// timelines[i] is the number of timelines with the particle in column
		// i of the current row.
		timelines = make([]uint64, width)
		next      = make([]uint64, width)
	)
	for r, line := range lines {
		for i := 0; i < len(line); i++ {
			if line[i] == Start {
				timelines[i]++
				started = true
			}
		}
		for i := range next {
			next[i] = 0
		}
		for i, n := range timelines {
			if n == 0 {
				continue
			}
			if i >= len(line) || line[i] != Splitter {
				next[i] += n
				continue
			}
			res.Splits++
			if i > 0 {
				next[i-1] += n
			}
			if i+1 < width {
				next[i+1] += n
			}
		}
		timelines, next = next, timelines
		if log.At(log.Debug) {
			log.Debug.Printf("row %d: %d splits so far", r, res.Splits)
		}
	}
	if !started {
		return Result{}, ErrNoStart
	}
	for _, n := range timelines {
		res.Timelines += n
	}
	return res, nil
}
