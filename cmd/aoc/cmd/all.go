package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
)

// row is one line of the "all" table.
type row struct {
	day    int
	part   int
	answer uint64
}

// findInput returns the input path for day num in dir, or "" if there is
// none.
func findInput(ctx context.Context, dir string, num int) string {
	base := filepath.Join(dir, fmt.Sprintf("day%d.txt", num))
	for _, path := range []string{base, base + ".gz"} {
		if _, err := file.Stat(ctx, path); err == nil {
			return path
		}
	}
	return ""
}

// solveAll solves every day with an input in dir.
func solveAll(ctx context.Context, dir string) ([]row, error) {
	var rows []row
	for _, d := range days {
		path := findInput(ctx, dir, d.num)
		if path == "" {
			log.Printf("day %d: no input in %s, skipping", d.num, dir)
			continue
		}
		a, err := d.solve(ctx, path)
		if err != nil {
			return nil, err
		}
		for i, v := range a {
			rows = append(rows, row{day: d.num, part: i + 1, answer: v})
		}
	}
	return rows, nil
}

func writeTable(w io.Writer, rows []row) (err error) {
	out := tsv.NewWriter(w)
	out.WriteString("DAY\tPART\tANSWER")
	if err = out.EndLine(); err != nil {
		return
	}
	for _, r := range rows {
		out.WriteUint32(uint32(r.day))
		out.WriteUint32(uint32(r.part))
		out.WriteString(strconv.FormatUint(r.answer, 10))
		if err = out.EndLine(); err != nil {
			return
		}
	}
	return out.Flush()
}
