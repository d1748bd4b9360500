package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newUnitsCmd creates the units command
func newUnitsCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Show the active unit map as a tree",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runUnits(opts)
		},
	}

	return cmd
}

func runUnits(opts *Options) error {
	if err := loadOptions(opts); err != nil {
		return err
	}

	m, err := loadUnitMap(opts)
	if err != nil {
		return err
	}

	fmt.Println(m.Tree())
	return nil
}
