package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/umwelt-studio/numeral/internal/format"
	"github.com/umwelt-studio/numeral/internal/round"
)

// newFormatCmd creates the format command
func newFormatCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <value>",
		Short: "Render a number as a locale-styled string",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFormat(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Mode, "mode", string(format.ModeAuto), "Formatting mode: auto, fixed, adaptive or raw")
	cmd.Flags().IntVarP(&opts.Decimals, "decimals", "d", format.DefaultDecimals, "Fractional digits to show")
	cmd.Flags().StringVarP(&opts.Method, "method", "m", string(format.HalfAwayFromZero), "Rounding method (halfAwayFromZero or bankers)")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Text placed before the number")
	cmd.Flags().StringVar(&opts.Suffix, "suffix", "", "Text placed after the number")
	cmd.Flags().BoolVar(&opts.Space, "space", false, "Separate affixes from the number with a space")
	cmd.Flags().StringVarP(&opts.Locale, "locale", "l", "", "BCP 47 locale for digit grouping (default: en)")

	return cmd
}

func runFormat(opts *Options, value string) error {
	if err := loadOptions(opts); err != nil {
		return err
	}

	number, err := round.Parse(value)
	if err != nil {
		return err
	}

	locale, err := language.Parse(opts.Locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", opts.Locale, err)
	}

	fopts := format.Options{
		Mode:     format.Mode(opts.Mode),
		Decimals: opts.Decimals,
		Method:   format.Method(opts.Method),
		Locale:   locale,
	}
	if opts.Prefix != "" {
		fopts.Prefix = &format.Affix{Text: opts.Prefix, Space: opts.Space}
	}
	if opts.Suffix != "" {
		fopts.Suffix = &format.Affix{Text: opts.Suffix, Space: opts.Space}
	}

	rendered, err := format.Number(number, fopts)
	if err != nil {
		return err
	}

	fmt.Println(rendered)
	return nil
}
