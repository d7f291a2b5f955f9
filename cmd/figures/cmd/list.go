package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/figures/indicators"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered indicators and their parameters",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	for _, name := range indicators.Names() {
		def, err := indicators.Lookup(name)
		if err != nil {
			return err
		}
		header := def.Name
		if def.ShortName != "" && def.ShortName != def.Name {
			header += " (" + def.ShortName + ")"
		}
		if def.NeedsVolume {
			header += " [volume]"
		}
		fmt.Println(header)
		for _, p := range def.Params {
			fmt.Printf("  %-14s %s\n", p.Name, describeParam(p.Spec))
		}
	}
	return nil
}

func describeParam(spec indicators.ParamSpec) string {
	desc := fmt.Sprintf("%s (default %s", spec.Default.Kind(), spec.Default)
	if spec.HasRange {
		desc += fmt.Sprintf(", range %g..%g step %g", spec.Min, spec.Max, spec.Step)
	}
	if len(spec.Options) > 0 {
		desc += fmt.Sprintf(", options %s", strings.Join(spec.Options, "|"))
	}
	return desc + ")"
}
