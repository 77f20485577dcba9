package interval

import (
	"github.com/biogo/store/llrb"
)

// treeNode is an llrb key.  Nodes in a Tree are disjoint, so ordering by
// start alone is enough.
type treeNode Interval

// Compare compares two treeNode objects for use in llrb.
func (n treeNode) Compare(c2 llrb.Comparable) int {
	n2 := c2.(treeNode)
	switch {
	case n.Start < n2.Start:
		return -1
	case n.Start > n2.Start:
		return 1
	}
	return 0
}

// Tree maintains an interval-union incrementally.  After any sequence of
// Insert calls, Intervals returns exactly what Normalize would return for the
// same intervals, in any order.  It is meant for callers that receive
// intervals one at a time and want to query the union along the way.
type Tree struct {
	nodes llrb.Tree
}

// Insert adds iv to the union, merging it with every stored interval it
// overlaps or contains.
func (t *Tree) Insert(iv Interval) {
	merged := iv
	if c := t.nodes.Floor(treeNode{Start: iv.Start}); c != nil {
		prev := c.(treeNode)
		if iv.Start <= prev.End {
			if iv.End <= prev.End {
				// Already fully covered.
				return
			}
			merged.Start = prev.Start
			t.nodes.Delete(prev)
		}
	}
	for {
		c := t.nodes.Ceil(treeNode{Start: merged.Start})
		if c == nil {
			break
		}
		next := c.(treeNode)
		if next.Start > merged.End {
			break
		}
		if next.End > merged.End {
			merged.End = next.End
		}
		t.nodes.Delete(next)
	}
	t.nodes.Insert(treeNode(merged))
}

// Contains checks whether pos is inside the union.
func (t *Tree) Contains(pos PosType) bool {
	c := t.nodes.Floor(treeNode{Start: pos})
	return c != nil && pos <= c.(treeNode).End
}

// Len returns the number of disjoint intervals currently stored.
func (t *Tree) Len() int {
	return t.nodes.Len()
}

// Intervals returns the union as a sorted, disjoint interval sequence.
func (t *Tree) Intervals() []Interval {
	result := make([]Interval, 0, t.nodes.Len())
	t.nodes.Do(func(c llrb.Comparable) bool {
		result = append(result, Interval(c.(treeNode)))
		return false
	})
	return result
}
