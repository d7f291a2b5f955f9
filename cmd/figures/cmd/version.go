package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the figures CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("figures version %s\n", version)
		fmt.Println("A streaming technical-indicator calculation engine")
		fmt.Println("https://github.com/rustyeddy/figures")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
