package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each user occupies.
const linesPerItem = 2

// renderList renders the left panel: the filterable user list.
func (m model) renderList(width, height int) string {
	if len(m.filtered) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No users")
		return empty
	}

	var lines []string
	for i, e := range m.filtered {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		rows := formatEntryLines(e, width, i == m.cursor)
		lines = append(lines, rows...)
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatEntryLines formats a single user as two lines:
//
//	line 1: [>] display name
//	line 2:     count conversations | id (dimmed)
func formatEntryLines(e Entry, width int, selected bool) []string {
	display := strings.ReplaceAll(e.Display, "\n", " ")
	displayMax := width - 2
	if displayMax < 0 {
		displayMax = 0
	}
	if runewidth.StringWidth(display) > displayMax {
		display = runewidth.Truncate(display, displayMax, "")
	}

	var line1 string
	if selected {
		line1 = styleListSelected.Render("> " + display)
	} else {
		line1 = "  " + styleListNormal.Render(display)
	}

	detail := fmt.Sprintf("%d conversations | %s", e.Count, e.ID)
	detailMax := width - 4
	if detailMax < 0 {
		detailMax = 0
	}
	if runewidth.StringWidth(detail) > detailMax {
		detail = runewidth.Truncate(detail, detailMax, "")
	}
	line2 := "    " + lipgloss.NewStyle().Foreground(colorDim).Render(detail)

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
