package interval

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestFwdsearchStart(t *testing.T) {
	a := []Interval{{1, 2}, {5, 8}, {10, 10}, {20, 30}, {40, 41}, {50, 60}}
	for x := PosType(-1); x <= 62; x++ {
		want := searchStart(a, x)
		for idx := 0; idx <= want; idx++ {
			expect.EQ(t, fwdsearchStart(a, x, idx), want)
		}
	}
}

func TestUnionSequential(t *testing.T) {
	u := NewUnion([]Interval{{16, 20}, {3, 5}, {12, 18}, {10, 14}})
	expect.EQ(t, u.Intervals(), []Interval{{3, 5}, {10, 20}})
	expect.EQ(t, u.Covered(), uint64(14))

	// Nondecreasing queries stay on the cursor path.
	expect.EQ(t, u.CountContained([]PosType{1, 5, 5, 8, 11, 17, 32}), 4)
	expect.True(t, u.isSequential)
	expect.EQ(t, u.lastIdx, 2)

	// Going backward switches to plain binary search without changing answers.
	expect.True(t, u.Contains(4))
	expect.False(t, u.isSequential)
	expect.False(t, u.Contains(9))
	expect.True(t, u.Contains(20))

	c := u.Clone()
	expect.True(t, c.isSequential)
	expect.EQ(t, c.Intervals(), u.Intervals())
	expect.False(t, c.Contains(2))
}

func TestUnionEmpty(t *testing.T) {
	u := NewUnion(nil)
	expect.False(t, u.Contains(0))
	expect.False(t, u.Contains(PosTypeMax))
	expect.EQ(t, u.Covered(), uint64(0))
}

func TestTree(t *testing.T) {
	var tree Tree
	tree.Insert(Interval{10, 14})
	tree.Insert(Interval{3, 5})
	expect.EQ(t, tree.Len(), 2)
	tree.Insert(Interval{16, 20})
	// Touching, not merged.
	tree.Insert(Interval{6, 6})
	expect.EQ(t, tree.Len(), 4)
	expect.True(t, tree.Contains(6))
	expect.False(t, tree.Contains(15))
	// Bridges [10, 14] and [16, 20].
	tree.Insert(Interval{12, 18})
	expect.EQ(t, tree.Intervals(), []Interval{{3, 5}, {6, 6}, {10, 20}})
	// Already covered.
	tree.Insert(Interval{11, 19})
	expect.EQ(t, tree.Len(), 3)
	// Swallows everything.
	tree.Insert(Interval{0, 100})
	expect.EQ(t, tree.Intervals(), []Interval{{0, 100}})
}
