package unit

import (
	"fmt"
	"math"
)

// Optimizer names a strategy for reducing a data set to one suffix.
type Optimizer string

const (
	// Min fits the smallest magnitude in the data set.
	Min Optimizer = "min"
	// Max fits the largest magnitude in the data set.
	Max Optimizer = "max"
	// Freq fits every value and picks the most frequent resulting suffix.
	Freq Optimizer = "freq"
)

// UnknownOptimizerError reports an unrecognized selection strategy.
type UnknownOptimizerError struct {
	Optimizer Optimizer
}

func (e *UnknownOptimizerError) Error() string {
	return fmt.Sprintf("unknown optimizer: %q", string(e.Optimizer))
}

// OptimalSuffix recommends a single display suffix for a set of values by
// fitting them per the given strategy. Signs are ignored. An empty strategy
// defaults to Freq; an empty data set returns the resolved "from" suffix
// without any fitting. For Freq, ties between equally frequent suffixes
// resolve to the one produced earliest in input order.
func (m Map) OptimalSuffix(numbers []float64, unit, from string, offset bool, opt Optimizer) (string, error) {
	l, err := m.ladder(unit)
	if err != nil {
		return "", err
	}

	fromIdx, err := l.resolveFrom(from)
	if err != nil {
		return "", err
	}
	fromSuffix := l.Suffixes[fromIdx]

	if opt == "" {
		opt = Freq
	}
	switch opt {
	case Min, Max, Freq:
	default:
		return "", &UnknownOptimizerError{Optimizer: opt}
	}

	if len(numbers) == 0 {
		return fromSuffix, nil
	}

	abs := make([]float64, len(numbers))
	for i, n := range numbers {
		abs[i] = math.Abs(n)
	}

	switch opt {
	case Min, Max:
		extreme := abs[0]
		for _, n := range abs[1:] {
			if (opt == Min && n < extreme) || (opt == Max && n > extreme) {
				extreme = n
			}
		}
		fitted, err := m.Fit(extreme, unit, fromSuffix, offset)
		if err != nil {
			return "", err
		}
		return fitted.Suffix, nil

	default: // Freq
		counts := make(map[string]int)
		var order []string
		for _, n := range abs {
			fitted, err := m.Fit(n, unit, fromSuffix, offset)
			if err != nil {
				return "", err
			}
			if _, seen := counts[fitted.Suffix]; !seen {
				order = append(order, fitted.Suffix)
			}
			counts[fitted.Suffix]++
		}

		best := order[0]
		for _, suffix := range order[1:] {
			if counts[suffix] > counts[best] {
				best = suffix
			}
		}
		return best, nil
	}
}
