package interval

// fwdsearchStart returns searchStart(a, x), assuming the answer is >= idx.
// It checks a[idx], then a[idx + 1], then a[idx + 3], then a[idx + 7], etc.,
// and then uses binary search to finish the job.  It's usually a better
// choice than searchStart when iterating over nondecreasing positions.
func fwdsearchStart(a []Interval, x PosType, idx int) int {
	nextIncr := 1
	startIdx := idx
	endIdx := len(a)
	for idx < endIdx {
		if a[idx].Start > x {
			endIdx = idx
			break
		}
		startIdx = idx + 1
		idx += nextIncr
		nextIncr *= 2
	}
	// This is really just an inlined sort.Search call.  We spell it out since
	// startIdx is usually equal to endIdx.
	for startIdx < endIdx {
		midIdx := int(uint(startIdx+endIdx) >> 1)
		if a[midIdx].Start > x {
			endIdx = midIdx
		} else {
			startIdx = midIdx + 1
		}
	}
	return startIdx
}

// Union is a normalized interval set with search state cached for spot
// queries.  When queries arrive in nondecreasing order, each lookup resumes
// from the previous one.  A Union is not safe for concurrent use; Clone it
// per goroutine.
type Union struct {
	// intervals is the normalized, disjoint interval sequence.  Never mutated
	// after construction, so clones share it.
	intervals []Interval
	// lastPos is the last spot-queried position.
	lastPos PosType
	// lastIdx is searchStart(intervals, lastPos).  Cached to accelerate
	// sequential queries.
	lastIdx int
	// isSequential is true if all queries so far have been in order of
	// nondecreasing position.
	isSequential bool
}

// NewUnion normalizes intervals and returns a Union over the result.
func NewUnion(intervals []Interval) *Union {
	u := &Union{intervals: Normalize(intervals)}
	u.reset()
	return u
}

func (u *Union) reset() {
	u.lastPos = PosTypeMin
	u.lastIdx = 0
	u.isSequential = true
}

// Intervals returns the normalized interval sequence.  The caller must not
// modify it.
func (u *Union) Intervals() []Interval {
	return u.intervals
}

// Covered returns the number of distinct integers in the union.
func (u *Union) Covered() uint64 {
	return CountCovered(u.intervals)
}

// Contains checks whether pos is inside the union.
func (u *Union) Contains(pos PosType) bool {
	if u.isSequential {
		if pos >= u.lastPos {
			u.lastIdx = fwdsearchStart(u.intervals, pos, u.lastIdx)
			u.lastPos = pos
			return u.lastIdx != 0 && pos <= u.intervals[u.lastIdx-1].End
		}
		u.isSequential = false
	}
	return Contains(u.intervals, pos)
}

// CountContained returns the number of queries inside the union.  Sorted
// query streams take the sequential fast path.
func (u *Union) CountContained(queries []PosType) int {
	n := 0
	for _, q := range queries {
		if u.Contains(q) {
			n++
		}
	}
	return n
}

// Clone returns a new Union which shares the interval set, but has its own
// search state.
func (u *Union) Clone() *Union {
	c := &Union{intervals: u.intervals}
	c.reset()
	return c
}
