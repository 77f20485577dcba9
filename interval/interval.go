package interval

import (
	"fmt"
	"math"
	"sort"
)

// PosType is the type used to represent interval coordinates and query
// points.
type PosType int64

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt64

// PosTypeMin is the minimum value that can be represented by a PosType.
const PosTypeMin = math.MinInt64

// Interval is a closed integer range [Start, End].  Start <= End is assumed
// everywhere; ParseInterval enforces it.
type Interval struct {
	Start PosType
	End   PosType
}

// Len returns the number of integers in the interval.
func (iv Interval) Len() uint64 {
	return uint64(iv.End) - uint64(iv.Start) + 1
}

// Contains returns whether pos is inside the interval.
func (iv Interval) Contains(pos PosType) bool {
	return iv.Start <= pos && pos <= iv.End
}

// String returns the interval in "<start>-<end>" form.
func (iv Interval) String() string {
	return fmt.Sprintf("%d-%d", iv.Start, iv.End)
}

// Normalize returns the interval-union of intervals as a sorted sequence of
// pairwise-disjoint intervals, with result[i].End < result[i+1].Start.
//
// Intervals are merged when the later one (by start) begins at or before the
// end of the running union, i.e. on overlap or containment.  Touching
// intervals such as [1, 5] and [6, 10] stay separate.
//
// The input slice is not modified.
func Normalize(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return []Interval{}
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	result := make([]Interval, 0, len(sorted))
	acc := sorted[0]
	for _, r := range sorted[1:] {
		if r.Start <= acc.End {
			// Intervals overlap, merge them.
			if r.End > acc.End {
				acc.End = r.End
			}
			continue
		}
		result = append(result, acc)
		acc = r
	}
	return append(result, acc)
}

// CountCovered returns the number of distinct integers covered by a
// normalized interval sequence.  Passing a sequence that still has overlaps
// double-counts them.
func CountCovered(normalized []Interval) uint64 {
	var total uint64
	for _, iv := range normalized {
		total += iv.Len()
	}
	return total
}

// searchStart returns the number of intervals in a[] whose start is <= x.
// a[searchStart(a, x) - 1] is therefore the only interval that may contain x.
func searchStart(a []Interval, x PosType) int {
	return sort.Search(len(a), func(i int) bool { return a[i].Start > x })
}

// Contains returns whether pos is covered by the normalized interval
// sequence.
func Contains(normalized []Interval, pos PosType) bool {
	idx := searchStart(normalized, pos)
	return idx != 0 && pos <= normalized[idx-1].End
}

// CountQueriesCovered returns the number of queries covered by the
// normalized interval sequence.  Each query is located with a binary search,
// so this is O(m log n).  Duplicate queries are counted once per occurrence.
func CountQueriesCovered(normalized []Interval, queries []PosType) int {
	n := 0
	for _, q := range queries {
		if Contains(normalized, q) {
			n++
		}
	}
	return n
}
