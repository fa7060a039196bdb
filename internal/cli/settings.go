package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ELEC2645/eetoolbox/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and edit persisted settings",
	Long: `Edit persisted settings interactively.

This allows you to modify:
  - History log file path
  - Color output

Press Enter to keep the current value for any setting.`,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	applyColorSetting(settings)

	reader := bufio.NewReader(os.Stdin)
	changed := false

	// History log path
	fmt.Printf("History log file [%s]: ", settings.LogFile)
	logFile, _ := reader.ReadString('\n')
	logFile = strings.TrimSpace(logFile)
	if logFile != "" && logFile != settings.LogFile {
		settings.LogFile = logFile
		changed = true
	}

	// Color output
	newColor := promptYesNoWithCurrent(reader, "Color output?", settings.Color)
	if newColor != settings.Color {
		settings.Color = newColor
		changed = true
	}

	if !changed {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println(styleSuccess.Render("\nSettings updated."))
	return nil
}

// promptYesNoWithCurrent prompts for a yes/no value showing the current value.
func promptYesNoWithCurrent(reader *bufio.Reader, prompt string, current bool) bool {
	currentStr := "no"
	if current {
		currentStr = "yes"
	}

	fmt.Printf("  %s [%s]: ", prompt, currentStr)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return current
	}
	return response == "y" || response == "yes"
}
