package cmd

import (
	"context"
	"strings"

	"github.com/grailbio/aoc/circular"
	"github.com/grailbio/aoc/grid"
	"github.com/grailbio/aoc/input"
	"github.com/grailbio/aoc/interval"
	"github.com/grailbio/aoc/joltage"
	"github.com/grailbio/aoc/repeat"
	"github.com/grailbio/aoc/tachyon"
	"github.com/grailbio/aoc/worksheet"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// answers holds the part 1 and part 2 answers of a day.
type answers [2]uint64

// solver reads the input at path and computes both parts.
type solver func(ctx context.Context, path string) (answers, error)

type day struct {
	num   int
	short string
	solve solver
}

var days = []day{
	{1, "Count how often the safe dial points at 0", solveDial},
	{2, "Sum product IDs made of a repeated digit block", solveRepeat},
	{3, "Sum the largest joltage of each battery bank", solveJoltage},
	{4, "Count paper rolls a forklift can reach", solveRolls},
	{5, "Count fresh ingredient IDs", solveFresh},
	{6, "Evaluate the cephalopod math worksheet", solveWorksheet},
	{7, "Count tachyon beam splits and timelines", solveTachyon},
}

func solveDial(ctx context.Context, path string) (answers, error) {
	lines, err := input.ReadLines(ctx, path)
	if err != nil {
		return answers{}, err
	}
	rotations, err := circular.ParseRotations(lines)
	if err != nil {
		return answers{}, errors.E(err, path)
	}
	res := circular.Solve(rotations, circular.DefaultOpts)
	return answers{uint64(res.EndsAtZero), uint64(res.ClicksAtZero)}, nil
}

func solveRepeat(ctx context.Context, path string) (answers, error) {
	data, err := input.ReadString(ctx, path)
	if err != nil {
		return answers{}, err
	}
	ranges, err := interval.ParseIntervalList(strings.TrimSpace(data))
	if err != nil {
		return answers{}, errors.E(err, path)
	}
	return answers{repeat.Sum(ranges, repeat.Part1Opts), repeat.Sum(ranges, repeat.Part2Opts)}, nil
}

func solveJoltage(ctx context.Context, path string) (answers, error) {
	lines, err := input.ReadLines(ctx, path)
	if err != nil {
		return answers{}, err
	}
	banks, err := joltage.ParseBanks(lines)
	if err != nil {
		return answers{}, errors.E(err, path)
	}
	var a answers
	for i, k := range []int{2, 12} {
		if a[i], err = joltage.Total(banks, k); err != nil {
			return answers{}, errors.E(err, path)
		}
	}
	return a, nil
}

func solveRolls(ctx context.Context, path string) (answers, error) {
	lines, err := input.ReadLines(ctx, path)
	if err != nil {
		return answers{}, err
	}
	b, err := grid.Parse(lines, grid.DefaultMark)
	if err != nil {
		return answers{}, errors.E(err, path)
	}
	accessible := grid.CountAccessible(&b, grid.DefaultMaxNeighbors)
	removed, rounds := grid.RemoveAll(&b, grid.DefaultMaxNeighbors)
	log.Printf("%s: removed %d roll(s) in %d round(s)", path, removed, rounds)
	return answers{uint64(accessible), uint64(removed)}, nil
}

func solveFresh(ctx context.Context, path string) (answers, error) {
	inv, err := interval.ReadInventoryFromPath(ctx, path)
	if err != nil {
		return answers{}, errors.E(err, path)
	}
	normalized := interval.Normalize(inv.Intervals)
	return answers{
		uint64(interval.CountQueriesCovered(normalized, inv.Queries)),
		interval.CountCovered(normalized),
	}, nil
}

func solveWorksheet(ctx context.Context, path string) (answers, error) {
	lines, err := input.ReadLines(ctx, path)
	if err != nil {
		return answers{}, err
	}
	sheet, err := worksheet.Parse(lines)
	if err != nil {
		return answers{}, errors.E(err, path)
	}
	rows, err := sheet.Rows()
	if err != nil {
		return answers{}, errors.E(err, path)
	}
	cols, err := sheet.Columns()
	if err != nil {
		return answers{}, errors.E(err, path)
	}
	return answers{worksheet.Evaluate(rows), worksheet.Evaluate(cols)}, nil
}

func solveTachyon(ctx context.Context, path string) (answers, error) {
	lines, err := input.ReadLines(ctx, path)
	if err != nil {
		return answers{}, err
	}
	res, err := tachyon.Simulate(lines)
	if err != nil {
		return answers{}, errors.E(err, path)
	}
	return answers{uint64(res.Splits), res.Timelines}, nil
}
