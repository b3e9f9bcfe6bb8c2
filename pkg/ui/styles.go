package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Primary   = lipgloss.Color("#7D56F4") // Purple
	Secondary = lipgloss.Color("#00D4AA") // Cyan/Teal

	// Severity tier colors
	Critical = lipgloss.Color("#FF0000")
	High     = lipgloss.Color("#FF6B6B")
	Medium   = lipgloss.Color("#FFD93D")
	Low      = lipgloss.Color("#6BCB77")
	Edge     = lipgloss.Color("#4D96FF")

	// Status colors
	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Failure = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Padding(0, 1)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	StatValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	ExcellentStyle = lipgloss.NewStyle().Bold(true).Foreground(Success)
	GoodStyle      = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	ImproveStyle   = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	tierStyles = map[string]lipgloss.Style{
		"CRITICAL": lipgloss.NewStyle().Bold(true).Foreground(Critical),
		"HIGH":     lipgloss.NewStyle().Foreground(High),
		"MEDIUM":   lipgloss.NewStyle().Foreground(Medium),
		"LOW":      lipgloss.NewStyle().Foreground(Low),
		"EDGE":     lipgloss.NewStyle().Foreground(Edge),
	}
)

// TierStyle returns the style for a severity tier name.
func TierStyle(tier string) lipgloss.Style {
	if s, ok := tierStyles[tier]; ok {
		return s
	}
	return StatValueStyle
}
