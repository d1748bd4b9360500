// Package round provides deterministic rounding of floating-point numbers
// under two disciplines: round-half-away-from-zero and round-half-to-even
// (banker's rounding). Both accept numbers or numeric strings, round at a
// caller-specified decimal precision, and correct for binary floating-point
// representation drift before deciding which way a value rounds.
package round

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal places used when callers have no
// reason to pick their own.
const DefaultPrecision = 1

// tieTolerance bounds how far a fractional part may sit from exactly .5 and
// still count as a tie. The drift correction truncates at 8 decimal places,
// so a true tie can land up to 1e-8 below .5.
const tieTolerance = 1e-8

// InvalidInputError reports a rounding input that is not representable as a
// finite number: a nil value, an unsupported type, a string that does not
// parse, or a NaN/Inf.
type InvalidInputError struct {
	Value any
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %v", e.Value)
}

// Parse coerces input into a float64. It accepts float and integer types as
// well as numeric strings; everything else, including NaN and the infinities,
// fails with *InvalidInputError.
func Parse(input any) (float64, error) {
	var f float64

	switch v := input.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, &InvalidInputError{Value: input}
		}
		f = parsed
	default:
		return 0, &InvalidInputError{Value: input}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &InvalidInputError{Value: input}
	}

	return f, nil
}

// SigDigits returns how many decimal places are needed to reach the first
// significant digit of v. For v in [1, 10) the result is 0, for [10, 100)
// it is -1, and so on; for v in (0, 1) it counts the leading zeros after
// the decimal point plus one (0.001 -> 3, 0.1 -> 1). v must be positive.
func SigDigits(v float64) int {
	// The int conversion folds a negative-zero result (v in [1, 10))
	// back to plain zero.
	return int(-math.Floor(math.Log10(v)))
}

// HalfAwayFromZero rounds input at the given decimal precision, with ties at
// exactly .5 moving away from zero regardless of sign: 2.5 -> 3, -2.5 -> -3.
func HalfAwayFromZero(input any, precision int) (float64, error) {
	v, err := Parse(input)
	if err != nil {
		return 0, err
	}

	factor := math.Pow(10, float64(precision))
	scaled := truncateDrift(math.Abs(v) * factor)
	rounded := math.Floor(scaled + 0.5)
	if v < 0 {
		rounded = -rounded
	}

	return rounded / factor, nil
}

// Bankers rounds input at the given decimal precision with ties going to the
// nearest even integer: 2.5 -> 2, 3.5 -> 4. For magnitudes below 1 the
// effective precision is raised to the first significant digit when the
// requested precision would collapse the value to zero.
func Bankers(input any, precision int) (float64, error) {
	v, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, nil
	}

	abs := math.Abs(v)
	effective := precision
	if abs < 1 {
		if sd := SigDigits(abs); sd > effective {
			effective = sd
		}
	}

	factor := math.Pow(10, float64(effective))
	scaled := truncateDrift(abs * factor)
	whole := math.Trunc(scaled)
	frac := scaled - whole

	var rounded float64
	if math.Abs(frac-0.5) <= tieTolerance {
		if math.Mod(whole, 2) == 0 {
			rounded = whole
		} else {
			rounded = whole + 1
		}
	} else {
		rounded = math.Floor(scaled + 0.5)
	}
	if v < 0 {
		rounded = -rounded
	}

	return rounded / factor, nil
}

// truncateDrift cuts v to 8 decimal places, discarding the representation
// error that scaling by a power of ten introduces (1.005*100 is not 100.5
// in binary floating point). The tie detection in Bankers is calibrated to
// this cut-off.
func truncateDrift(v float64) float64 {
	return math.Trunc(v*1e8) / 1e8
}
