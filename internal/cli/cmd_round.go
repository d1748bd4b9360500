package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/umwelt-studio/numeral/internal/config"
	"github.com/umwelt-studio/numeral/internal/round"
)

// newRoundCmd creates the round command
func newRoundCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round <value>",
		Short: "Round a number at a decimal precision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The flag wins over config; config wins over the
			// built-in default.
			if !cmd.Flags().Changed("precision") {
				cfg, err := config.New(".")
				if err != nil {
					return fmt.Errorf("unable to load config: %w", err)
				}
				if v := cfg.Get("defaults.precision"); v != "" {
					p, err := strconv.Atoi(v)
					if err != nil {
						return fmt.Errorf("invalid defaults.precision %q: %w", v, err)
					}
					opts.Precision = p
				}
			}
			return runRound(opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Method, "method", "m", "halfAwayFromZero", "Rounding method (halfAwayFromZero or bankers)")
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", round.DefaultPrecision, "Decimal places to round to")

	return cmd
}

func runRound(opts *Options, value string) error {
	var (
		result float64
		err    error
	)

	switch opts.Method {
	case "halfAwayFromZero":
		result, err = round.HalfAwayFromZero(value, opts.Precision)
	case "bankers":
		result, err = round.Bankers(value, opts.Precision)
	default:
		return fmt.Errorf("unknown rounding method: %q", opts.Method)
	}
	if err != nil {
		return err
	}

	fmt.Println(strconv.FormatFloat(result, 'f', -1, 64))
	return nil
}
