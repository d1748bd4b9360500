package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umwelt-studio/numeral/internal/batch"
	"github.com/umwelt-studio/numeral/internal/round"
	"github.com/umwelt-studio/numeral/internal/unit"
)

// newOptimalCmd creates the optimal command
func newOptimalCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimal [values...]",
		Short: "Recommend one display suffix for a set of values",
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runOptimal(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Unit, "unit", "u", "", "Unit family (e.g. mass, data)")
	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Source suffix (default: the family's base suffix)")
	cmd.Flags().BoolVar(&opts.Offset, "offset", false, "Widen the no-conversion window by one order of the gap")
	cmd.Flags().StringVarP(&opts.Optimizer, "optimizer", "O", "", "Selection strategy: min, max or freq (default: freq)")
	cmd.Flags().StringVarP(&opts.InputFile, "input", "i", "", "Read values from a file instead ('-' for stdin)")

	return cmd
}

func runOptimal(opts *Options, args []string) error {
	if err := loadOptions(opts); err != nil {
		return err
	}
	if err := requireUnit(opts); err != nil {
		return err
	}

	m, err := loadUnitMap(opts)
	if err != nil {
		return err
	}

	var numbers []float64
	if opts.InputFile != "" {
		numbers, err = batch.ReadFile(opts.InputFile)
		if err != nil {
			return err
		}
	} else {
		numbers = make([]float64, len(args))
		for i, arg := range args {
			numbers[i], err = round.Parse(arg)
			if err != nil {
				return err
			}
		}
	}

	suffix, err := m.OptimalSuffix(numbers, opts.Unit, opts.From, opts.Offset, unit.Optimizer(opts.Optimizer))
	if err != nil {
		return err
	}

	// Suffix-less families would otherwise print a blank line
	if suffix == "" {
		suffix = `""`
	}
	fmt.Println(suffix)
	return nil
}
