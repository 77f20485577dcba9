package interval

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/aoc/input"
	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/pkg/errors"
)

// ErrNoSeparator is returned by ReadInventory when the blank line between
// the interval block and the query block is missing.
var ErrNoSeparator = errors.New("interval: no blank line between intervals and queries")

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

func parsePos(s string) (PosType, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	return PosType(v), err
}

// ParseInterval parses an interval string of the form
//   [first pos]-[last pos]
// e.g. "3-5".  A leading '-' on the first position is read as a sign, so
// "-5-3" is [-5, 3].  The first position may not exceed the last.
func ParseInterval(s string) (result Interval, err error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		err = errors.New("interval.ParseInterval: empty interval string")
		return
	}
	dashPos := strings.IndexByte(s[1:], '-')
	if dashPos == -1 {
		err = errors.Errorf("interval.ParseInterval: missing '-' in %q", s)
		return
	}
	dashPos++
	if result.Start, err = parsePos(s[:dashPos]); err != nil {
		err = errors.Wrapf(err, "interval.ParseInterval: bad start in %q", s)
		return
	}
	if result.End, err = parsePos(s[dashPos+1:]); err != nil {
		err = errors.Wrapf(err, "interval.ParseInterval: bad end in %q", s)
		return
	}
	if result.End < result.Start {
		err = errors.Errorf("interval.ParseInterval: invalid range %q, start after end", s)
	}
	return
}

// ParseIntervalList parses a comma-separated list of intervals, e.g.
// "11-22,95-115,998-1012".  Whitespace (including newlines) around each
// entry and empty entries are ignored.
func ParseIntervalList(s string) ([]Interval, error) {
	var result []Interval
	for _, field := range strings.Split(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		iv, err := ParseInterval(field)
		if err != nil {
			return nil, err
		}
		result = append(result, iv)
	}
	return result, nil
}

// Inventory is the parsed form of an interval-block / query-block input.
type Inventory struct {
	// Intervals are in input order; they are not normalized.
	Intervals []Interval
	// Queries are in input order, duplicates preserved.
	Queries []PosType
}

// ReadInventory reads a block of "<start>-<end>" lines, a blank line, and a
// block of single-integer query lines.  Blank lines after the separator are
// skipped.
func ReadInventory(r io.Reader) (inv Inventory, err error) {
	scanner := bufio.NewScanner(r)

	var tokens [2][]byte
	lineIdx := 0
	inQueries := false
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 {
			inQueries = true
			continue
		}
		if nToken != 1 {
			err = errors.Errorf("interval.ReadInventory: line %d has more tokens than expected", lineIdx)
			return
		}
		if !inQueries {
			var iv Interval
			if iv, err = ParseInterval(gunsafe.BytesToString(tokens[0])); err != nil {
				err = errors.Wrapf(err, "line %d", lineIdx)
				return
			}
			inv.Intervals = append(inv.Intervals, iv)
			continue
		}
		var q PosType
		if q, err = parsePos(gunsafe.BytesToString(tokens[0])); err != nil {
			err = errors.Wrapf(err, "interval.ReadInventory: bad query on line %d", lineIdx)
			return
		}
		inv.Queries = append(inv.Queries, q)
	}
	if err = scanner.Err(); err != nil {
		err = errors.Wrap(err, "interval.ReadInventory")
		return
	}
	if !inQueries {
		err = ErrNoSeparator
		return
	}
	log.Printf("Inventory loaded, %d interval(s), %d query point(s).", len(inv.Intervals), len(inv.Queries))
	return
}

// ReadInventoryFromPath is a wrapper for ReadInventory that takes a path
// instead of an io.Reader.  Gzipped inputs are decompressed.
func ReadInventoryFromPath(ctx context.Context, path string) (inv Inventory, err error) {
	var in io.ReadCloser
	if in, err = input.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return ReadInventory(in)
}
