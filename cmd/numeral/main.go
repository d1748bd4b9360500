// Package main is the main package for the numeral CLI.
package main

import (
	"os"

	"github.com/umwelt-studio/numeral/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(&cli.Options{}).Execute(); err != nil {
		os.Exit(1)
	}
}
