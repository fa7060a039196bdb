package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ELEC2645/eetoolbox/internal/config"
	"github.com/ELEC2645/eetoolbox/internal/history"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage the calculation history log",
}

var logViewCmd = &cobra.Command{
	Use:     "view",
	Aliases: []string{"cat"},
	Short:   "Print the history log",
	RunE:    runLogView,
}

var logClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Truncate the history log",
	RunE:  runLogClear,
}

var logPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the history log path",
	RunE:  runLogPath,
}

func init() {
	logCmd.AddCommand(logClearCmd)
	logCmd.AddCommand(logPathCmd)
	logCmd.AddCommand(logViewCmd)
}

// openLog resolves the history log from settings.
func openLog() (*history.Log, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	applyColorSetting(settings)
	return history.New(settings.LogFile), nil
}

func runLogView(cmd *cobra.Command, args []string) error {
	log, err := openLog()
	if err != nil {
		return err
	}

	n, err := log.WriteTo(os.Stdout)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println(styleHint.Render("History log is empty."))
	}
	return nil
}

func runLogClear(cmd *cobra.Command, args []string) error {
	log, err := openLog()
	if err != nil {
		return err
	}

	if err := log.Clear(); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render("History log cleared."))
	return nil
}

func runLogPath(cmd *cobra.Command, args []string) error {
	log, err := openLog()
	if err != nil {
		return err
	}
	fmt.Println(log.Path())
	return nil
}
