// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package circular_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/grailbio/aoc/circular"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

var exampleRotations = strings.Split("L68 L30 R48 L5 R60 L55 L1 L99 R14 L82", " ")

func TestSolveExample(t *testing.T) {
	rotations, err := circular.ParseRotations(exampleRotations)
	assert.NoError(t, err)
	res := circular.Solve(rotations, circular.DefaultOpts)
	expect.EQ(t, res.EndsAtZero, 3)
	expect.EQ(t, res.ClicksAtZero, 6)
}

func TestTurn(t *testing.T) {
	tests := []struct {
		start    int
		rotation string
		wantPos  int
		wantHits int
	}{
		{50, "L68", 82, 1},
		{50, "R50", 0, 1},
		{0, "L5", 95, 0},
		{0, "R100", 0, 1},
		{0, "L100", 0, 1},
		{50, "R1000", 50, 10},
		{50, "L1000", 50, 10},
		{5, "L5", 0, 1},
		{5, "L4", 1, 0},
		{99, "R1", 0, 1},
		{0, "R0", 0, 0},
	}
	for _, tt := range tests {
		r, err := circular.ParseRotation(tt.rotation)
		assert.NoError(t, err)
		d := circular.NewDial(circular.Opts{Size: 100, Start: tt.start})
		expect.EQ(t, d.Turn(r), tt.wantHits, "%d %s", tt.start, tt.rotation)
		expect.EQ(t, d.Pos(), tt.wantPos, "%d %s", tt.start, tt.rotation)
	}
}

// TestTurnMatchesClickByClick checks Turn against a one-click-at-a-time
// simulation.
func TestTurnMatchesClickByClick(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for iter := 0; iter < 1000; iter++ {
		size := r.Intn(20) + 1
		start := r.Intn(size)
		dir := circular.Left
		step := size - 1
		if r.Intn(2) == 0 {
			dir = circular.Right
			step = 1
		}
		clicks := r.Intn(5 * size)

		d := circular.NewDial(circular.Opts{Size: size, Start: start})
		hits := d.Turn(circular.Rotation{Dir: dir, Clicks: clicks})

		pos, wantHits := start, 0
		for i := 0; i < clicks; i++ {
			pos = (pos + step) % size
			if pos == 0 {
				wantHits++
			}
		}
		expect.EQ(t, hits, wantHits)
		expect.EQ(t, d.Pos(), pos)
	}
}

func TestParseRotationErrors(t *testing.T) {
	for _, s := range []string{"", "L", "X10", "R-3", "Lx"} {
		_, err := circular.ParseRotation(s)
		expect.True(t, err != nil, s)
	}
}
