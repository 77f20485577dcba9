package circular

import (
	"strconv"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// Opts defines the dial geometry.
type Opts struct {
	// Size is the number of positions on the dial.  Must be positive.
	Size int
	// Start is the position the dial points at before the first rotation.
	Start int
}

// DefaultOpts is the safe dial: 0..99, starting at 50.
var DefaultOpts = Opts{Size: 100, Start: 50}

// Direction is the way a dial is turned.
type Direction byte

const (
	// Left turns toward lower numbers.
	Left Direction = 'L'
	// Right turns toward higher numbers.
	Right Direction = 'R'
)

// Rotation is a single "L68"-style instruction.
type Rotation struct {
	Dir    Direction
	Clicks int
}

// String returns the rotation in instruction form.
func (r Rotation) String() string {
	return string(r.Dir) + strconv.Itoa(r.Clicks)
}

// ParseRotation parses an instruction such as "L68" or "R14".
func ParseRotation(s string) (Rotation, error) {
	if len(s) < 2 {
		return Rotation{}, errors.Errorf("circular.ParseRotation: rotation %q too short", s)
	}
	dir := Direction(s[0])
	if dir != Left && dir != Right {
		return Rotation{}, errors.Errorf("circular.ParseRotation: invalid direction in %q", s)
	}
	clicks, err := strconv.Atoi(s[1:])
	if err != nil {
		return Rotation{}, errors.Wrapf(err, "circular.ParseRotation: %q", s)
	}
	if clicks < 0 {
		return Rotation{}, errors.Errorf("circular.ParseRotation: negative click count in %q", s)
	}
	return Rotation{Dir: dir, Clicks: clicks}, nil
}

// ParseRotations parses one rotation per entry, skipping blank entries.
func ParseRotations(lines []string) ([]Rotation, error) {
	rotations := make([]Rotation, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		r, err := ParseRotation(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		rotations = append(rotations, r)
	}
	return rotations, nil
}

// Dial is a circular dial.  The zero value is not usable; call NewDial.
type Dial struct {
	size int
	pos  int
}

// NewDial returns a dial set up according to opts.
func NewDial(opts Opts) *Dial {
	if opts.Size <= 0 {
		log.Panicf("circular.NewDial: nonpositive size %d", opts.Size)
	}
	return &Dial{size: opts.Size, pos: mod(opts.Start, opts.Size)}
}

func mod(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}

// Pos returns the position the dial currently points at.
func (d *Dial) Pos() int {
	return d.pos
}

// Turn applies r and returns the number of clicks during the rotation that
// left the dial pointing at 0, including the final click.
func (d *Dial) Turn(r Rotation) int {
	var hits int
	if r.Dir == Right {
		hits = (d.pos + r.Clicks) / d.size
		d.pos = (d.pos + r.Clicks) % d.size
		return hits
	}
	// Turning left, the first 0 is d.pos clicks away (a full turn away if we
	// start on 0).
	first := d.pos
	if first == 0 {
		first = d.size
	}
	if r.Clicks >= first {
		hits = (r.Clicks-first)/d.size + 1
	}
	d.pos = mod(d.pos-r.Clicks, d.size)
	return hits
}

// Result holds both answers.
type Result struct {
	// EndsAtZero is the number of rotations after which the dial points at 0.
	EndsAtZero int
	// ClicksAtZero is the number of clicks, over all rotations, that left the
	// dial pointing at 0.
	ClicksAtZero int
}

// Solve runs all rotations on a fresh dial.
func Solve(rotations []Rotation, opts Opts) Result {
	var res Result
	d := NewDial(opts)
	for i, r := range rotations {
		prev := d.pos
		hits := d.Turn(r)
		res.ClicksAtZero += hits
		if d.pos == 0 {
			res.EndsAtZero++
		}
		if log.At(log.Debug) {
			log.Debug.Printf("%d: %d %v -> %d | %d (+%d)", i, prev, r, d.pos, res.ClicksAtZero, hits)
		}
	}
	return res
}
