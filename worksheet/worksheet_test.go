package worksheet_test

import (
	"testing"

	"github.com/grailbio/aoc/worksheet"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

var example = []string{
	"123 328  51 64 ",
	" 45 64  387 23 ",
	"  6 98  215 314",
	"*   +   *   +  ",
}

func TestExample(t *testing.T) {
	sheet, err := worksheet.Parse(example)
	require.NoError(t, err)

	rows, err := sheet.Rows()
	require.NoError(t, err)
	expect.EQ(t, rows[0], worksheet.Problem{Op: worksheet.Mul, Numbers: []uint64{123, 45, 6}})
	expect.EQ(t, rows[3], worksheet.Problem{Op: worksheet.Add, Numbers: []uint64{64, 23, 314}})
	expect.EQ(t, worksheet.Evaluate(rows), uint64(4277556))

	cols, err := sheet.Columns()
	require.NoError(t, err)
	expect.EQ(t, cols[3], worksheet.Problem{Op: worksheet.Add, Numbers: []uint64{4, 431, 623}})
	expect.EQ(t, cols[0], worksheet.Problem{Op: worksheet.Mul, Numbers: []uint64{356, 24, 1}})
	expect.EQ(t, worksheet.Evaluate(cols), uint64(3263827))
}

func TestRaggedRows(t *testing.T) {
	// Same as the example with trailing spaces trimmed and a trailing blank
	// line.
	sheet, err := worksheet.Parse([]string{
		"123 328  51 64",
		" 45 64  387 23",
		"  6 98  215 314",
		"*   +   *   +",
		"",
	})
	require.NoError(t, err)
	rows, err := sheet.Rows()
	require.NoError(t, err)
	expect.EQ(t, worksheet.Evaluate(rows), uint64(4277556))
	cols, err := sheet.Columns()
	require.NoError(t, err)
	expect.EQ(t, worksheet.Evaluate(cols), uint64(3263827))
}

func TestApply(t *testing.T) {
	expect.EQ(t, worksheet.Problem{Op: worksheet.Add}.Apply(), uint64(0))
	expect.EQ(t, worksheet.Problem{Op: worksheet.Mul}.Apply(), uint64(1))
	expect.EQ(t, worksheet.Problem{Op: worksheet.Mul, Numbers: []uint64{2, 3, 7}}.Apply(), uint64(42))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"too short", []string{"1 2"}},
		{"bad operator", []string{"1 2", "+ -"}},
		{"missing operator", []string{"1 2", "+  "}},
		{"two operators", []string{"12", "++"}},
		{"non-digit", []string{"1x 2", "+  *"}},
	}
	for _, tt := range tests {
		sheet, err := worksheet.Parse(tt.lines)
		if err == nil {
			_, err = sheet.Rows()
		}
		if err == nil {
			_, err = sheet.Columns()
		}
		expect.True(t, err != nil, tt.name)
	}
}
