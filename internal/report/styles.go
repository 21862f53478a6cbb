package report

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}
	borderColor  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
	successColor = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	titleStyle   = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle  = lipgloss.NewStyle().Foreground(primaryColor).Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// card renders content inside a rounded border box.
func card(title string, lines ...string) string {
	body := title
	if len(lines) > 0 {
		body += "\n\n" + lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 2).
		Render(body)
}
