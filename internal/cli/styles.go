package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ELEC2645/eetoolbox/internal/models"
)

// Adaptive colors matching the toolbox palette.
var (
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
)

// applyColorSetting disables styled output globally when the user has turned
// color off in settings.
func applyColorSetting(settings *models.Settings) {
	if !settings.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
