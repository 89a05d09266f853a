package widgets

import "github.com/charmbracelet/lipgloss"

var (
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorMuted    lipgloss.Color = "#a6adc8"
	ColorDisabled lipgloss.Color = "#585b70"
	ColorBase     lipgloss.Color = "#1e1e2e"
	ColorAccent   lipgloss.Color = "#89b4fa"
	ColorBorder   lipgloss.Color = "#45475a"
)
