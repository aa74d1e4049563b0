package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Entry is one selectable user in the picker.
type Entry struct {
	ID      string
	Display string
	Name    string
	Email   string
	Count   int
}

// model

type model struct {
	entries     []Entry
	filtered    []Entry
	cursor      int
	listOffset  int
	filterInput textinput.Model
	width       int
	height      int
	ready       bool
	quitting    bool
	chosen      *Entry
}

// SelectUser opens the picker and blocks until the operator chooses a
// user or quits. ok is false when the picker was cancelled.
func SelectUser(entries []Entry) (id string, ok bool, err error) {
	ti := textinput.New()
	ti.Placeholder = "Filter users..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	m := model{entries: entries, filtered: entries, filterInput: ti}
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.chosen == nil {
		return "", false, nil
	}
	return fm.chosen.ID, true, nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				e := m.filtered[m.cursor]
				m.chosen = &e
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
			}
			return m, nil
		}

		// Pass remaining keys to the filter input
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		m.applyFilter(m.filterInput.Value())
		return m, tiCmd
	}

	return m, nil
}

// applyFilter narrows the visible entries to those matching the query.
func (m *model) applyFilter(query string) {
	m.filtered = filterEntries(m.entries, query)
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
		m.listOffset = 0
	}
}

// filterEntries keeps the entries whose id, name, or email contains the
// query, case-insensitively. An empty query keeps everything.
func filterEntries(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		hay := strings.ToLower(e.ID + " " + e.Name + " " + e.Email)
		if strings.Contains(hay, q) {
			out = append(out, e)
		}
	}
	return out
}

// View renders the full picker.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	detailW := m.detailWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View()

	listPanel := styleActiveBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	var selected *Entry
	if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
		selected = &m.filtered[m.cursor]
	}
	detailPanel := stylePanelBorder.
		Width(detailW).
		Height(panelH).
		Render(renderDetail(selected, detailW))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	status := m.statusBar()

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, status)
}

// helper methods

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	// 60% for the list, minus border padding
	w := m.width*60/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) detailWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width*40/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d users", len(m.filtered)))
	parts = append(parts, "up/dn navigate")
	parts = append(parts, "Enter select")
	parts = append(parts, "Esc quit")
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
