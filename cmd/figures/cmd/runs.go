package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/figures/journal"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Query recorded calculation runs",
	Long: `Query and display calculation runs recorded in the SQLite journal.

Examples:
  figures runs list
  figures runs export 01J8X2M3 --out macd.csv`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsExportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Export a recorded run's figures as CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsExport,
}

var (
	runsDBPath string
	runsOut    string
)

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsExportCmd)

	runsCmd.PersistentFlags().StringVarP(&runsDBPath, "db", "d", "./figures.sqlite", "path to SQLite journal DB")
	runsExportCmd.Flags().StringVarP(&runsOut, "out", "o", "", "write CSV output to a file instead of stdout")
}

func runRunsList(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(runsDBPath)
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  %-10s %d bars\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Indicator, r.Bars)
	}
	return nil
}

func runRunsExport(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(runsDBPath)
	if err != nil {
		return err
	}
	defer j.Close()

	figures, err := j.Figures(args[0])
	if err != nil {
		return err
	}
	if len(figures) == 0 {
		return fmt.Errorf("no figures recorded for run %s", args[0])
	}

	out := os.Stdout
	if runsOut != "" {
		f, err := os.Create(runsOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return journal.WriteCSV(out, figures)
}
