package toolbox

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for menu and result output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	sectionStyle = lipgloss.NewStyle().Bold(true)
	resultStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	hintStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// bandStyles renders each band color name in its physical color.
var bandStyles = map[string]lipgloss.Style{
	"Black":  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "244"}),
	"Brown":  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	"Red":    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	"Orange": lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"Yellow": lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	"Green":  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	"Blue":   lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	"Violet": lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
	"Grey":   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	"White":  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "15"}),
	"Gold":   lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	"Silver": lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

// styleBand returns the color name rendered in its own color. Unknown names
// pass through unstyled.
func styleBand(color string) string {
	if s, ok := bandStyles[color]; ok {
		return s.Render(color)
	}
	return color
}
