// Package filter provides the contact filter input.
package filter

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/phonebook/internal/ui/styles"
)

// Model wraps a single-line text input.
type Model struct {
	input   textinput.Model
	focused bool
	width   int
}

// New creates an empty, unfocused filter.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Find contacts by name"
	ti.Prompt = ""
	ti.CharLimit = 128
	return Model{input: ti}
}

// SetWidth updates the component width.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.Width = width - 8
	if m.input.Width < 1 {
		m.input.Width = 1
	}
}

// Focus gives the input keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// IsFocused returns whether the filter has focus.
func (m Model) IsFocused() bool {
	return m.focused
}

// Value returns the raw input value.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the input value.
func (m *Model) SetValue(v string) {
	m.input.SetValue(v)
	m.input.CursorEnd()
}

// Update forwards messages to the input while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the filter box.
func (m Model) View() string {
	border := styles.BorderStyle
	label := styles.PanelTitle.Render("Filter")
	if m.focused {
		border = styles.FocusedBorderStyle
		label = styles.PanelTitleFocused.Render("Filter")
	}
	icon := styles.PanelTitleIcon.Render(styles.IconSearch)

	return border.
		Width(m.width - 2).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, icon, label, " ", m.input.View()))
}
