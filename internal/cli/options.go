// Package cli provides the command-line interface for numeral
package cli

import (
	"github.com/umwelt-studio/numeral/internal/config"
)

// Options holds the command-line options shared across commands
type Options struct {
	// UnitsFile points at a custom unit map (JSON). If empty, the value
	// from config is used, and failing that the built-in map.
	UnitsFile string

	// Unit names the unit family to operate on (e.g. "mass", "data").
	// If empty, the value from config is used.
	Unit string

	// From is the suffix the input values are expressed in. If empty,
	// the family's base suffix is assumed.
	From string

	// To is the target suffix for the convert command. If empty, convert
	// targets the family's base suffix.
	To string

	// Offset widens the fit window by one power of the family's gap,
	// keeping values from flipping units right at a threshold.
	Offset bool

	// Precision is the decimal precision for the round command.
	Precision int

	// Method selects the rounding discipline for round and format.
	Method string

	// Optimizer selects the strategy for the optimal command. If empty,
	// the value from config is used, and failing that "freq".
	Optimizer string

	// InputFile reads a dataset from a file ("-" for stdin) instead of
	// positional arguments.
	InputFile string

	// Mode, Decimals, Prefix, Suffix and Space configure the format
	// command's rendering.
	Mode     string
	Decimals int
	Prefix   string
	Suffix   string
	Space    bool

	// Locale is a BCP 47 tag for digit grouping (e.g. "en", "de").
	// If empty, the value from config is used, and failing that "en".
	Locale string
}

// SetDefaults fills unset options from configuration and built-in fallbacks
func (o *Options) SetDefaults(cfg *config.Config) {
	if o.UnitsFile == "" {
		o.UnitsFile = cfg.Get("units.file")
	}
	if o.Unit == "" {
		o.Unit = cfg.Get("defaults.unit")
	}
	if o.From == "" {
		o.From = cfg.Get("defaults.from")
	}
	if o.Optimizer == "" {
		o.Optimizer = cfg.Get("defaults.optimizer")
	}
	if o.Locale == "" {
		o.Locale = cfg.Get("format.locale")
	}
	if o.Locale == "" {
		o.Locale = "en"
	}
}
