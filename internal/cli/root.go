// Package cli implements the eetoolbox CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ELEC2645/eetoolbox/internal/config"
	"github.com/ELEC2645/eetoolbox/internal/history"
	"github.com/ELEC2645/eetoolbox/internal/prompt"
	"github.com/ELEC2645/eetoolbox/internal/toolbox"
)

var rootCmd = &cobra.Command{
	Use:   "eetoolbox",
	Short: "Interactive electrical-engineering calculator toolbox",
	Long: `Eetoolbox is an interactive calculator for everyday EE work: resistor
color codes, series/parallel combination, RC transients, Ohm's law and
power, and signal sampling. Results can be appended to a plain-text
history log after each calculation.

Running eetoolbox without a subcommand starts the interactive menu.`,
	RunE: runToolbox,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(versionCmd)
}

func runToolbox(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	applyColorSetting(settings)

	tb := toolbox.New(
		prompt.New(os.Stdin, os.Stdout),
		os.Stdout,
		history.New(settings.LogFile),
	)
	tb.Run()
	return nil
}
