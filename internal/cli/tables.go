package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ELEC2645/eetoolbox/internal/config"
	"github.com/ELEC2645/eetoolbox/internal/toolbox"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the resistor color band tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		applyColorSetting(settings)

		toolbox.WriteTables(os.Stdout)
		return nil
	},
}
