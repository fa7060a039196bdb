// Package main is the entry point for the eetoolbox CLI.
package main

import (
	"os"

	"github.com/ELEC2645/eetoolbox/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
