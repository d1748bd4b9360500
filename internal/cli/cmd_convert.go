package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umwelt-studio/numeral/internal/round"
	"github.com/umwelt-studio/numeral/internal/unit"
)

// newConvertCmd creates the convert command
func newConvertCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value between unit suffixes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConvert(opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Unit, "unit", "u", "", "Unit family (e.g. mass, data)")
	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Source suffix (default: the family's base suffix)")
	cmd.Flags().StringVarP(&opts.To, "to", "t", "", "Target suffix (default: the family's base suffix)")

	return cmd
}

func runConvert(opts *Options, value string) error {
	if err := loadOptions(opts); err != nil {
		return err
	}
	if err := requireUnit(opts); err != nil {
		return err
	}

	number, err := round.Parse(value)
	if err != nil {
		return err
	}

	m, err := loadUnitMap(opts)
	if err != nil {
		return err
	}

	var result unit.Converted
	if opts.To == "" {
		result, err = m.ConvertToBase(number, opts.Unit, opts.From)
	} else {
		result, err = m.Convert(number, opts.Unit, opts.From, opts.To)
	}
	if err != nil {
		return err
	}

	fmt.Println(formatConverted(result))
	return nil
}
