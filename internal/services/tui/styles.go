package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = "86"
	colorLink   = "205"
	colorDanger = "196"
	colorMuted  = "241"
)

var styles = struct {
	Title    lipgloss.Style
	Address  lipgloss.Style
	Link     lipgloss.Style
	Greeting lipgloss.Style
	Error    lipgloss.Style
	Hint     lipgloss.Style
	Box      lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Address: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Link: lipgloss.NewStyle().
		Underline(true).
		Foreground(lipgloss.Color(colorLink)),
	Greeting: lipgloss.NewStyle().
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Padding(1, 2),
}
