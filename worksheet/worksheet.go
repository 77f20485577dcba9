// Package worksheet evaluates math worksheets laid out as text.  A worksheet
// is a block of number rows followed by one operator row.  Each problem
// occupies a vertical strip of the worksheet; problems are separated by
// character columns that are blank in every row.
//
// Problems can be read two ways:
//
//   - Rows: each row of the strip holds one whitespace-delimited number.
//   - Columns: each character column of the strip holds one number, most
//     significant digit at the top.
//
// For example,
//   123 328
//    45 64
//     6 98
//   *   +
// read by rows is 123*45*6 and 328+64+98; read by columns it is 1*24*356 and
// 369+248+8.
package worksheet

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Op is a problem's operator.
type Op byte

const (
	// Add sums the problem's numbers.
	Add Op = '+'
	// Mul multiplies the problem's numbers.
	Mul Op = '*'
)

// Problem is a single operator applied to a list of numbers.
type Problem struct {
	Op      Op
	Numbers []uint64
}

// Apply returns the result of the problem.  An empty Add is 0, an empty Mul
// is 1.
func (p Problem) Apply() uint64 {
	if p.Op == Add {
		var sum uint64
		for _, n := range p.Numbers {
			sum += n
		}
		return sum
	}
	product := uint64(1)
	for _, n := range p.Numbers {
		product *= n
	}
	return product
}

// Evaluate returns the sum of the results of all problems.
func Evaluate(problems []Problem) uint64 {
	var total uint64
	for _, p := range problems {
		total += p.Apply()
	}
	return total
}

// Sheet is a parsed worksheet.  All rows are padded with spaces to the same
// width.
type Sheet struct {
	numbers []string
	ops     string
	width   int
}

// Parse builds a Sheet from text lines.  Trailing blank lines are ignored;
// the last remaining line is the operator row.
func Parse(lines []string) (Sheet, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return Sheet{}, errors.New("worksheet.Parse: need at least one number row and an operator row")
	}
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = line + strings.Repeat(" ", width-len(line))
	}
	last := len(padded) - 1
	for i := 0; i < width; i++ {
		switch c := padded[last][i]; c {
		case ' ', '\t', byte(Add), byte(Mul):
		default:
			return Sheet{}, errors.Errorf("worksheet.Parse: unknown operator %q at column %d", c, i+1)
		}
	}
	return Sheet{numbers: padded[:last], ops: padded[last], width: width}, nil
}

// strip is the half-open column range [start, end) of one problem.
type strip struct {
	start, end int
	op         Op
}

func (s *Sheet) isBlankColumn(col int) bool {
	if s.ops[col] != ' ' && s.ops[col] != '\t' {
		return false
	}
	for _, row := range s.numbers {
		if row[col] != ' ' && row[col] != '\t' {
			return false
		}
	}
	return true
}

// strips splits the sheet at all-blank columns.
func (s *Sheet) strips() ([]strip, error) {
	var strips []strip
	start := -1
	for col := 0; col <= s.width; col++ {
		if col < s.width && !s.isBlankColumn(col) {
			if start < 0 {
				start = col
			}
			continue
		}
		if start < 0 {
			continue
		}
		st := strip{start: start, end: col}
		for i := start; i < col; i++ {
			if c := s.ops[i]; c != ' ' && c != '\t' {
				if st.op != 0 {
					return nil, errors.Errorf("worksheet: problem at columns %d-%d has more than one operator", start+1, col)
				}
				st.op = Op(c)
			}
		}
		if st.op == 0 {
			return nil, errors.Errorf("worksheet: problem at columns %d-%d has no operator", start+1, col)
		}
		strips = append(strips, st)
		start = -1
	}
	if len(strips) == 0 {
		return nil, errors.New("worksheet: no problems")
	}
	return strips, nil
}

// Rows reads each problem one number per row, left to right.
func (s *Sheet) Rows() ([]Problem, error) {
	strips, err := s.strips()
	if err != nil {
		return nil, err
	}
	problems := make([]Problem, len(strips))
	for i, st := range strips {
		problems[i].Op = st.op
		for r, row := range s.numbers {
			field := strings.TrimSpace(row[st.start:st.end])
			if field == "" {
				continue
			}
			n, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "worksheet: row %d, columns %d-%d", r+1, st.start+1, st.end)
			}
			problems[i].Numbers = append(problems[i].Numbers, n)
		}
	}
	return problems, nil
}

// Columns reads each problem one number per character column, digits top to
// bottom.  Columns are taken right to left, as the worksheet is meant to be
// read; the order does not change the result.
func (s *Sheet) Columns() ([]Problem, error) {
	strips, err := s.strips()
	if err != nil {
		return nil, err
	}
	problems := make([]Problem, len(strips))
	for i, st := range strips {
		problems[i].Op = st.op
		for col := st.end - 1; col >= st.start; col-- {
			var n uint64
			nDigit := 0
			for r, row := range s.numbers {
				c := row[col]
				if c == ' ' || c == '\t' {
					continue
				}
				if c < '0' || c > '9' {
					return nil, errors.Errorf("worksheet: non-digit %q at row %d, column %d", c, r+1, col+1)
				}
				n = n*10 + uint64(c-'0')
				nDigit++
			}
			if nDigit > 0 {
				problems[i].Numbers = append(problems[i].Numbers, n)
			}
		}
	}
	return problems, nil
}
