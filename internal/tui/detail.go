package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDetail renders the right panel: details for the selected user.
func renderDetail(e *Entry, width int) string {
	if e == nil {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Render("No user selected")
	}

	label := lipgloss.NewStyle().Foreground(colorDim)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var lines []string
	lines = append(lines, styleTitle.Render("Selected user"))
	lines = append(lines, "")
	lines = append(lines, value.Render(e.Display))
	lines = append(lines, "")
	lines = append(lines, label.Render("ID:    ")+value.Render(e.ID))
	if e.Name != "" {
		lines = append(lines, label.Render("Name:  ")+value.Render(e.Name))
	}
	if e.Email != "" {
		lines = append(lines, label.Render("Email: ")+value.Render(e.Email))
	}
	lines = append(lines, "")
	lines = append(lines, label.Render("Conversations: ")+value.Render(fmt.Sprintf("%d", e.Count)))

	return strings.Join(lines, "\n")
}
