package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/umwelt-studio/numeral/internal/batch"
	"github.com/umwelt-studio/numeral/internal/round"
	"github.com/umwelt-studio/numeral/internal/unit"
)

// newFitCmd creates the fit command
func newFitCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit [value]",
		Short: "Rescale a value to its most readable unit suffix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFit(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Unit, "unit", "u", "", "Unit family (e.g. mass, data)")
	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Source suffix (default: the family's base suffix)")
	cmd.Flags().BoolVar(&opts.Offset, "offset", false, "Widen the no-conversion window by one order of the gap")
	cmd.Flags().StringVarP(&opts.InputFile, "input", "i", "", "Read values from a file instead ('-' for stdin)")

	return cmd
}

func runFit(opts *Options, args []string) error {
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

	if opts.InputFile != "" {
		values, err := batch.ReadFile(opts.InputFile)
		if err != nil {
			return err
		}

		results := make([]unit.Converted, len(values))
		for i, v := range values {
			results[i], err = m.Fit(v, opts.Unit, opts.From, opts.Offset)
			if err != nil {
				return err
			}
		}

		return batch.Write(os.Stdout, results)
	}

	if len(args) == 0 {
		return fmt.Errorf("provide a value or --input")
	}

	number, err := round.Parse(args[0])
	if err != nil {
		return err
	}

	result, err := m.Fit(number, opts.Unit, opts.From, opts.Offset)
	if err != nil {
		return err
	}

	fmt.Println(formatConverted(result))
	return nil
}
