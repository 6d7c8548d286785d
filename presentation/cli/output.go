package cli

import (
	"ui_automation/domain/entities"

	"github.com/charmbracelet/lipgloss"
)

var (
	passedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008000", Dark: "#55FF55"})
	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D00000", Dark: "#FF5555"}).
			Bold(true)
	brokenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFAA00"})
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// statusLabel renders a fixed width, colored status tag
func statusLabel(status entities.Status) string {
	label := "PASSED"
	style := passedStyle
	switch status {
	case entities.StatusFailed:
		label, style = "FAILED", failedStyle
	case entities.StatusBroken:
		label, style = "BROKEN", brokenStyle
	}
	return style.Render(label)
}
