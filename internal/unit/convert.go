package unit

import (
	"math"

	"github.com/umwelt-studio/numeral/internal/round"
)

// Convert rescales number from one suffix of a family to another. An empty
// from defaults to the family's base suffix. The result passes through
// banker's rounding at the default precision.
func (m Map) Convert(number float64, unit, from, to string) (Converted, error) {
	l, err := m.ladder(unit)
	if err != nil {
		return Converted{}, err
	}

	fromIdx, err := l.resolveFrom(from)
	if err != nil {
		return Converted{}, err
	}

	toIdx := l.indexOf(to)
	if toIdx < 0 {
		return Converted{}, &InvalidSuffixError{Kind: "to", Suffix: to}
	}

	diff := (toIdx - fromIdx) * l.Gap
	scaled := number * math.Pow(10, float64(-diff))
	rounded, err := round.Bankers(scaled, round.DefaultPrecision)
	if err != nil {
		return Converted{}, err
	}

	return Converted{Number: rounded, Unit: unit, Suffix: l.Suffixes[toIdx]}, nil
}

// ConvertToBase rescales number to the family's base suffix. A base index
// pointing outside the suffix list (possible only in caller-supplied
// ladders) fails the same way an unknown "to" suffix does.
func (m Map) ConvertToBase(number float64, unit, from string) (Converted, error) {
	l, err := m.ladder(unit)
	if err != nil {
		return Converted{}, err
	}

	if l.BaseIndex < 0 || l.BaseIndex >= len(l.Suffixes) {
		return Converted{}, &InvalidSuffixError{Kind: "to", Suffix: ""}
	}

	return m.Convert(number, unit, from, l.Suffixes[l.BaseIndex])
}
