// Package repeat finds product IDs whose decimal digits are a shorter digit
// sequence repeated several times, e.g. 6464 (64 twice) or 123123123 (123
// three times).  IDs are generated arithmetically from the repeated block, so
// ranges are never enumerated.
package repeat

import (
	"sort"

	"github.com/grailbio/aoc/interval"
	"github.com/grailbio/base/log"
)

// maxDigits is the most decimal digits a nonnegative PosType can have.
const maxDigits = 19

var pow10 [maxDigits + 1]uint64

func init() {
	pow10[0] = 1
	for i := 1; i <= maxDigits; i++ {
		pow10[i] = pow10[i-1] * 10
	}
}

// Opts bounds the number of times the block must repeat.
type Opts struct {
	// MinRepeats is the smallest accepted repeat count; at least 2.
	MinRepeats int
	// MaxRepeats is the largest accepted repeat count.  0 means no limit.
	MaxRepeats int
}

// Part1Opts accepts blocks repeated exactly twice.
var Part1Opts = Opts{MinRepeats: 2, MaxRepeats: 2}

// Part2Opts accepts blocks repeated at least twice.
var Part2Opts = Opts{MinRepeats: 2}

func numDigits(x uint64) int {
	n := 1
	for n < maxDigits && x >= pow10[n] {
		n++
	}
	return n
}

// Find returns the repeated-block IDs inside r, in increasing order.  Negative
// parts of r are ignored.
func Find(r interval.Interval, opts Opts) []uint64 {
	if r.End < 0 {
		return nil
	}
	lo := uint64(0)
	if r.Start > 0 {
		lo = uint64(r.Start)
	}
	hi := uint64(r.End)
	minRepeats := opts.MinRepeats
	if minRepeats < 2 {
		minRepeats = 2
	}

	// The same ID can come out of several repeat counts, e.g. 222222 is 2 x 6,
	// 22 x 3 and 222 x 2.
	seen := make(map[uint64]struct{})
	var ids []uint64
	for nDigit := numDigits(lo); nDigit <= numDigits(hi); nDigit++ {
		maxRepeats := nDigit
		if opts.MaxRepeats > 0 && opts.MaxRepeats < maxRepeats {
			maxRepeats = opts.MaxRepeats
		}
		for k := minRepeats; k <= maxRepeats; k++ {
			if nDigit%k != 0 {
				continue
			}
			blockLen := nDigit / k
			// base is 1, followed by blockLen-1 zeros, k times; e.g. 10101 for
			// blockLen 2, k 3.  ID = block * base.
			base := (pow10[nDigit] - 1) / (pow10[blockLen] - 1)
			blockLo := pow10[blockLen-1]
			if b := (lo + base - 1) / base; b > blockLo {
				blockLo = b
			}
			blockHi := pow10[blockLen] - 1
			if b := hi / base; b < blockHi {
				blockHi = b
			}
			for block := blockLo; block <= blockHi; block++ {
				id := block * base
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if log.At(log.Debug) {
		log.Debug.Printf("%v: %v", r, ids)
	}
	return ids
}

// Sum returns the sum of all repeated-block IDs in the given ranges.  Ranges
// are normalized first, so an ID in several overlapping ranges counts once.
func Sum(ranges []interval.Interval, opts Opts) uint64 {
	var total uint64
	for _, r := range interval.Normalize(ranges) {
		for _, id := range Find(r, opts) {
			total += id
		}
	}
	return total
}
