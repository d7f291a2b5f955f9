package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "figures",
	Short: "A streaming technical-indicator calculation engine",
	Long: `Figures computes technical-indicator series from OHLCV bar data.

It provides tools for:
  - Computing any registered indicator over a CSV bar file
  - Fanning array-valued parameters out into multiple instances
  - Recording computed figure sets to a SQLite journal
  - Exporting figure sets as CSV
  - Listing indicators and their parameter schemas

Complete documentation is available at https://github.com/rustyeddy/figures`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
