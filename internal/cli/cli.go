// Package cli provides the command-line interface for numeral.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/umwelt-studio/numeral/internal/config"
	"github.com/umwelt-studio/numeral/internal/unit"
)

var (
	// Default version for development/non-release builds.
	// Release builds override this with the git tag via ldflags.
	version = "dev"
)

// NewRootCmd creates the root command with all subcommands
func NewRootCmd(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "numeral",
		Short:        "Number formatting and unit conversion toolkit",
		Version:      version,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&opts.UnitsFile, "units", "", "Custom unit map file (JSON)")

	// Add commands
	rootCmd.AddCommand(
		newRoundCmd(opts),
		newConvertCmd(opts),
		newFitCmd(opts),
		newOptimalCmd(opts),
		newFormatCmd(opts),
		newUnitsCmd(opts),
		newConfigCmd(),
	)

	return rootCmd
}

// loadOptions loads the project configuration and fills any options the
// caller left unset.
func loadOptions(opts *Options) error {
	cfg, err := config.New(".")
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	opts.SetDefaults(cfg)
	return nil
}

// loadUnitMap resolves the active unit map: a caller-supplied JSON file
// when one is configured, the built-in map otherwise.
func loadUnitMap(opts *Options) (unit.Map, error) {
	if opts.UnitsFile != "" {
		m, err := unit.Load(opts.UnitsFile)
		if err != nil {
			return nil, fmt.Errorf("unable to load unit map: %w", err)
		}
		return m, nil
	}

	return unit.Default(), nil
}

// requireUnit rejects commands that need a unit family when none was given
// on the command line or in config.
func requireUnit(opts *Options) error {
	if opts.Unit == "" {
		return fmt.Errorf("no unit family given; pass --unit or run 'numeral config set defaults.unit <family>'")
	}
	return nil
}

// formatConverted renders a conversion result for terminal output.
func formatConverted(res unit.Converted) string {
	s := strconv.FormatFloat(res.Number, 'f', -1, 64)
	if res.Suffix != "" {
		s += " " + res.Suffix
	}
	return s
}
