// Package format renders numbers as locale-styled display strings. It layers
// digit grouping, a formatting mode, and optional prefix/suffix decoration on
// top of the rounding engine; all numeric decisions stay in internal/round.
package format

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/umwelt-studio/numeral/internal/round"
)

// Mode selects how many fractional digits a rendered number shows.
type Mode string

const (
	// ModeAuto renders integers without a fractional part and everything
	// else with the configured number of decimals.
	ModeAuto Mode = "auto"
	// ModeFixed always shows the configured number of decimals.
	ModeFixed Mode = "fixed"
	// ModeAdaptive raises the precision for magnitudes below 1 so small
	// values keep their first significant digit.
	ModeAdaptive Mode = "adaptive"
	// ModeRaw skips rounding entirely; the value is only grouped.
	ModeRaw Mode = "raw"
)

// Method selects the rounding discipline behind ModeAuto, ModeFixed and
// ModeAdaptive.
type Method string

const (
	HalfAwayFromZero Method = "halfAwayFromZero"
	Bankers          Method = "bankers"
)

// DefaultDecimals is the fractional precision used when callers have none
// of their own.
const DefaultDecimals = 2

// Affix decorates one side of a rendered number. Space controls whether a
// space separates the affix from the digits.
type Affix struct {
	Text  string
	Space bool
}

// Options configures Number. The zero value of Mode and Method fall back to
// ModeAuto and HalfAwayFromZero; the zero Locale falls back to English.
type Options struct {
	Mode     Mode
	Decimals int
	Method   Method
	Prefix   *Affix
	Suffix   *Affix
	Locale   language.Tag
}

// DefaultOptions returns the options Number assumes sensible: auto mode,
// two decimals, half-away-from-zero rounding, English digit grouping.
func DefaultOptions() Options {
	return Options{
		Mode:     ModeAuto,
		Decimals: DefaultDecimals,
		Method:   HalfAwayFromZero,
		Locale:   language.English,
	}
}

// Number renders value according to opts and returns the display string.
func Number(value float64, opts Options) (string, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeAuto
	}
	method := opts.Method
	if method == "" {
		method = HalfAwayFromZero
	}
	locale := opts.Locale
	if locale == language.Und {
		locale = language.English
	}

	p := message.NewPrinter(locale)

	var rendered string
	switch mode {
	case ModeRaw:
		// The CLDR decimal pattern caps fraction digits at three;
		// raise the cap so raw output keeps the full value.
		rendered = p.Sprint(number.Decimal(value, number.MaxFractionDigits(15)))

	case ModeFixed:
		rounded, err := applyRounding(value, opts.Decimals, method)
		if err != nil {
			return "", err
		}
		rendered = p.Sprint(number.Decimal(rounded, number.Scale(opts.Decimals)))

	case ModeAuto:
		if value == math.Trunc(value) {
			rendered = p.Sprint(number.Decimal(value, number.Scale(0)))
			break
		}
		rounded, err := applyRounding(value, opts.Decimals, method)
		if err != nil {
			return "", err
		}
		rendered = p.Sprint(number.Decimal(rounded, number.Scale(opts.Decimals)))

	case ModeAdaptive:
		decimals := opts.Decimals
		if abs := math.Abs(value); abs > 0 && abs < 1 {
			if sd := round.SigDigits(abs); sd > decimals {
				decimals = sd
			}
		}
		rounded, err := applyRounding(value, decimals, method)
		if err != nil {
			return "", err
		}
		rendered = p.Sprint(number.Decimal(rounded, number.MaxFractionDigits(decimals)))

	default:
		return "", fmt.Errorf("unknown format mode: %q", string(mode))
	}

	return decorate(rendered, opts.Prefix, opts.Suffix), nil
}

func applyRounding(value float64, decimals int, method Method) (float64, error) {
	switch method {
	case HalfAwayFromZero:
		return round.HalfAwayFromZero(value, decimals)
	case Bankers:
		return round.Bankers(value, decimals)
	default:
		return 0, fmt.Errorf("unknown rounding method: %q", string(method))
	}
}

func decorate(rendered string, prefix, suffix *Affix) string {
	var b strings.Builder
	if prefix != nil && prefix.Text != "" {
		b.WriteString(prefix.Text)
		if prefix.Space {
			b.WriteByte(' ')
		}
	}
	b.WriteString(rendered)
	if suffix != nil && suffix.Text != "" {
		if suffix.Space {
			b.WriteByte(' ')
		}
		b.WriteString(suffix.Text)
	}
	return b.String()
}
