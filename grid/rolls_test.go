// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/grailbio/aoc/grid"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

var example = strings.Split(`..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.`, "\n")

func TestExample(t *testing.T) {
	b, err := grid.Parse(example, grid.DefaultMark)
	assert.NoError(t, err)
	expect.EQ(t, b.NRow(), 10)
	expect.EQ(t, b.NCol(), 10)
	expect.EQ(t, b.PopCount(), 71)
	expect.EQ(t, b.String(), strings.Join(example, "\n")+"\n")

	expect.EQ(t, grid.CountAccessible(&b, grid.DefaultMaxNeighbors), 13)

	removed, rounds := grid.RemoveAll(&b, grid.DefaultMaxNeighbors)
	expect.EQ(t, removed, 43)
	expect.EQ(t, rounds, 9)
	expect.EQ(t, b.PopCount(), 71-43)
	expect.EQ(t, grid.CountAccessible(&b, grid.DefaultMaxNeighbors), 0)
}

func TestNeighbors(t *testing.T) {
	b, err := grid.Parse([]string{"@@@", "@@@", "@@"}, '@')
	assert.NoError(t, err)
	expect.EQ(t, b.Neighbors(1, 1), 7)
	expect.EQ(t, b.Neighbors(0, 0), 3)
	expect.EQ(t, b.Neighbors(2, 2), 3)
	expect.False(t, b.Test(2, 2))
	expect.False(t, b.Test(-1, 0))
	expect.False(t, b.Test(0, 3))
}

func TestWideRows(t *testing.T) {
	// Spans several words per row.
	nCol := 3*grid.BitsPerWord + 5
	b := grid.NewBitmap(2, nCol)
	b.Set(1, nCol-1)
	b.Set(0, grid.BitsPerWord)
	expect.True(t, b.Test(1, nCol-1))
	expect.EQ(t, b.Neighbors(0, nCol-2), 1)
	b.Clear(1, nCol-1)
	expect.EQ(t, b.PopCount(), 1)
}

// removeSequential removes one accessible cell at a time.  The final count
// does not depend on removal order.
func removeSequential(b *grid.Bitmap, maxNeighbors int) int {
	removed := 0
	for {
		cells := b.Accessible(maxNeighbors)
		if len(cells) == 0 {
			return removed
		}
		b.Clear(cells[0].R, cells[0].C)
		removed++
	}
}

func TestRemoveAllMatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 50; iter++ {
		nRow, nCol := r.Intn(12)+1, r.Intn(12)+1
		lines := make([]string, nRow)
		for i := range lines {
			row := make([]byte, nCol)
			for j := range row {
				row[j] = '.'
				if r.Intn(3) != 0 {
					row[j] = '@'
				}
			}
			lines[i] = string(row)
		}
		b1, err := grid.Parse(lines, '@')
		assert.NoError(t, err)
		b2, err := grid.Parse(lines, '@')
		assert.NoError(t, err)
		removed, _ := grid.RemoveAll(&b1, grid.DefaultMaxNeighbors)
		expect.EQ(t, removed, removeSequential(&b2, grid.DefaultMaxNeighbors))
		expect.EQ(t, b1.String(), b2.String())
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := grid.Parse(nil, '@')
	expect.True(t, err != nil)
}
