package unit

import (
	"math"

	"github.com/umwelt-studio/numeral/internal/round"
)

// Fit rescales number to the suffix of its family that places the magnitude
// in a readable display window. Values already in [1, 10^gap) stay at their
// current suffix; smaller values walk toward finer units and larger values
// toward coarser ones, stopping at the first suffix whose rescaled value
// lands in the window. Values beyond the ladder's range clamp to its extreme
// suffix. offset widens the window by one extra power of the gap, which
// keeps a value from flipping units right at a threshold boundary.
func (m Map) Fit(number float64, unit, from string, offset bool) (Converted, error) {
	l, err := m.ladder(unit)
	if err != nil {
		return Converted{}, err
	}

	fromIdx, err := l.resolveFrom(from)
	if err != nil {
		return Converted{}, err
	}

	exp := l.Gap
	if offset {
		exp++
	}
	window := math.Pow(10, float64(exp))
	abs := math.Abs(number)

	path, sign := searchPath(l, fromIdx, abs)

	// In-window values stay put, as do values with no suffix left to
	// search toward (zero from the smallest suffix lands here too).
	if (abs >= 1 && abs < window) || len(path) == 0 {
		rounded, err := round.Bankers(number, round.DefaultPrecision)
		if err != nil {
			return Converted{}, err
		}
		return Converted{Number: rounded, Unit: unit, Suffix: l.Suffixes[fromIdx]}, nil
	}

	for step, idx := range path {
		scaled := number * math.Pow(10, float64(sign*(step+1)*l.Gap))
		rounded, err := round.Bankers(scaled, round.DefaultPrecision)
		if err != nil {
			return Converted{}, err
		}
		if a := math.Abs(rounded); a >= 1 && a < window {
			return Converted{Number: rounded, Unit: unit, Suffix: l.Suffixes[idx]}, nil
		}
	}

	// Nothing in range: clamp to the ladder's extreme suffix in the
	// search direction.
	scaled := number * math.Pow(10, float64(sign*len(path)*l.Gap))
	rounded, err := round.Bankers(scaled, round.DefaultPrecision)
	if err != nil {
		return Converted{}, err
	}
	return Converted{Number: rounded, Unit: unit, Suffix: l.Suffixes[path[len(path)-1]]}, nil
}

// searchPath returns the candidate suffix indices to walk, in search order,
// together with the exponent sign applied per step. The sign runs against
// the direction of the walk: moving up the ladder toward coarser suffixes
// shrinks the magnitude, so the exponent is negative, and moving down
// toward finer suffixes grows it, so the exponent is positive.
func searchPath(l Ladder, fromIdx int, abs float64) ([]int, int) {
	if abs < 1 {
		path := make([]int, 0, fromIdx)
		for i := fromIdx - 1; i >= 0; i-- {
			path = append(path, i)
		}
		return path, 1
	}

	path := make([]int, 0, len(l.Suffixes)-fromIdx-1)
	for i := fromIdx + 1; i < len(l.Suffixes); i++ {
		path = append(path, i)
	}
	return path, -1
}
