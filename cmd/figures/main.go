package main

import (
	"os"

	"github.com/rustyeddy/figures/cmd/figures/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
