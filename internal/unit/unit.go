// Package unit models families of related measurement suffixes (grams and
// kilograms, bytes and kilobytes) as ordered ladders separated by fixed
// powers of ten, and converts magnitudes between the rungs. Beyond exact
// suffix-to-suffix conversion it offers an auto-fit search that picks the
// most readable suffix for a value, and an optimizer that reduces a whole
// data set to a single recommended suffix.
package unit

import (
	"encoding/json"
	"fmt"
	"os"
)

// Ladder describes one unit family: its suffixes in ascending magnitude
// order, the power-of-ten gap between adjacent suffixes, and which suffix
// is the family's canonical base unit.
type Ladder struct {
	// Gap is the power-of-ten multiplier between adjacent suffixes
	// (3 means each step scales by 1000).
	Gap int `json:"gap"`

	// Suffixes lists the unit labels from smallest to largest.
	Suffixes []string `json:"suffixes"`

	// BaseIndex points at the canonical suffix, used as the implicit
	// "from" unit when callers omit one.
	BaseIndex int `json:"baseIndex"`
}

// Map associates family names with their ladders. It is treated as
// immutable once constructed and may be shared across goroutines.
type Map map[string]Ladder

// Converted is the result of any conversion or fit operation: a magnitude
// expressed in the scale of Suffix, which is always one of the family's
// ladder entries.
type Converted struct {
	Number float64 `json:"number"`
	Unit   string  `json:"unit"`
	Suffix string  `json:"suffix"`
}

// InvalidUnitError reports a family name absent from the unit map.
type InvalidUnitError struct {
	Unit string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid unit: %s", e.Unit)
}

// InvalidSuffixError reports a "from" or "to" suffix that is not part of
// the resolved ladder.
type InvalidSuffixError struct {
	Kind   string // "from" or "to"
	Suffix string
}

func (e *InvalidSuffixError) Error() string {
	return fmt.Sprintf("invalid %q suffix: %q", e.Kind, e.Suffix)
}

// Default returns the built-in unit map. The returned map is freshly
// allocated, so callers may extend it without affecting other callers.
func Default() Map {
	return Map{
		"area":   {Gap: 6, Suffixes: []string{"cm²", "m²", "km²"}, BaseIndex: 1},
		"mass":   {Gap: 3, Suffixes: []string{"g", "kg", "ton"}, BaseIndex: 1},
		"volume": {Gap: 3, Suffixes: []string{"mL", "L", "kL"}, BaseIndex: 1},
		"data":   {Gap: 3, Suffixes: []string{"B", "KB", "MB", "GB", "TB", "PB"}, BaseIndex: 0},
		"count":  {Gap: 3, Suffixes: []string{"", "K", "M", "B", "T"}, BaseIndex: 0},
		"custom": {Gap: 3, Suffixes: []string{""}, BaseIndex: 0},
	}
}

// Load reads a caller-supplied unit map from a JSON file and validates
// every ladder in it.
func Load(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit map: %w", err)
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse unit map: %w", err)
	}

	for name, ladder := range m {
		if err := ladder.Validate(); err != nil {
			return nil, fmt.Errorf("invalid ladder for family %q: %w", name, err)
		}
	}

	return m, nil
}

// Validate checks the structural invariants of a ladder: a positive gap,
// at least one suffix, unique suffixes, and a base index inside the list.
func (l Ladder) Validate() error {
	if l.Gap <= 0 {
		return fmt.Errorf("gap must be positive, got %d", l.Gap)
	}
	if len(l.Suffixes) == 0 {
		return fmt.Errorf("ladder has no suffixes")
	}
	if l.BaseIndex < 0 || l.BaseIndex >= len(l.Suffixes) {
		return fmt.Errorf("base index %d out of range for %d suffixes", l.BaseIndex, len(l.Suffixes))
	}

	seen := make(map[string]bool, len(l.Suffixes))
	for _, s := range l.Suffixes {
		if seen[s] {
			return fmt.Errorf("duplicate suffix %q", s)
		}
		seen[s] = true
	}

	return nil
}

// ladder resolves a family name against the map.
func (m Map) ladder(unit string) (Ladder, error) {
	l, ok := m[unit]
	if !ok {
		return Ladder{}, &InvalidUnitError{Unit: unit}
	}
	return l, nil
}

// indexOf returns the position of suffix in the ladder, or -1.
func (l Ladder) indexOf(suffix string) int {
	for i, s := range l.Suffixes {
		if s == suffix {
			return i
		}
	}
	return -1
}

// resolveFrom maps a caller-supplied "from" suffix to its ladder index.
// An empty suffix defaults to the family's base unit.
func (l Ladder) resolveFrom(from string) (int, error) {
	if from == "" {
		if l.BaseIndex < 0 || l.BaseIndex >= len(l.Suffixes) {
			return 0, &InvalidSuffixError{Kind: "from", Suffix: from}
		}
		return l.BaseIndex, nil
	}

	idx := l.indexOf(from)
	if idx < 0 {
		return 0, &InvalidSuffixError{Kind: "from", Suffix: from}
	}
	return idx, nil
}
