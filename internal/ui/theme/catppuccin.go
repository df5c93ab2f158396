package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Overlay0 = lipgloss.Color("#6c7086")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Red      = lipgloss.Color("#f38ba8")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Mauve    = lipgloss.Color("#cba6f7")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	// Glyph renders a jamo or syllable as the focus of a card.
	Glyph  = lipgloss.NewStyle().Foreground(Mauve).Bold(true).Padding(0, 1)
	Locked = lipgloss.NewStyle().Foreground(Overlay0)
	Good   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Bad    = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Warn   = lipgloss.NewStyle().Foreground(Yellow)

	Option         = lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).BorderForeground(Surface1)
	OptionSelected = Option.BorderForeground(Lavender).Foreground(Lavender)
	OptionCorrect  = Option.BorderForeground(Green).Foreground(Green)
	OptionWrong    = Option.BorderForeground(Red).Foreground(Red)

	Slot       = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(Surface1)
	SlotFilled = Slot.BorderForeground(Green).Foreground(Mauve).Bold(true)
)

// Level picks the accent for a difficulty tier.
func Level(level int) lipgloss.Style {
	switch level {
	case 1:
		return lipgloss.NewStyle().Foreground(Green)
	case 2:
		return lipgloss.NewStyle().Foreground(Sapphire)
	case 3:
		return lipgloss.NewStyle().Foreground(Peach)
	default:
		return lipgloss.NewStyle().Foreground(Red)
	}
}
