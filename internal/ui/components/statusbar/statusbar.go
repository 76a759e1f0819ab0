// Package statusbar provides the status bar UI component.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/phonebook/internal/ui/keys"
	"github.com/lazyvibe/phonebook/internal/ui/styles"
)

// Model is the status bar component.
type Model struct {
	width    int
	message  string
	isError  bool
	keyMap   keys.KeyMap
	showFull bool
	total    int
	visible  int
	backend  string
}

// New creates a new status bar component.
func New() Model {
	return Model{
		keyMap: keys.DefaultKeyMap(),
	}
}

// SetWidth updates the status bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetMessage sets a temporary message.
func (m *Model) SetMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// ClearMessage clears the temporary message.
func (m *Model) ClearMessage() {
	m.message = ""
	m.isError = false
}

// Message returns the current message and whether it is an error.
func (m Model) Message() (string, bool) {
	return m.message, m.isError
}

// SetCounts updates the visible/total contact counters.
func (m *Model) SetCounts(visible, total int) {
	m.visible = visible
	m.total = total
}

// SetBackend sets the storage backend label.
func (m *Model) SetBackend(name string) {
	m.backend = strings.ToUpper(strings.TrimSpace(name))
}

// ToggleHelp switches between short and full key help.
func (m *Model) ToggleHelp() {
	m.showFull = !m.showFull
}

// ShowingFullHelp reports whether full help is displayed.
func (m Model) ShowingFullHelp() bool {
	return m.showFull
}

// Height returns the number of lines View renders.
func (m Model) Height() int {
	if m.showFull {
		return 1 + len(m.keyMap.FullHelp())
	}
	return 1
}

// View renders the status bar.
func (m Model) View() string {
	brand := styles.StatusBarBrand.Render(" Phonebook ")

	backend := m.backend
	if backend == "" {
		backend = "FILE"
	}
	backendBadge := lipgloss.NewStyle().
		Foreground(styles.Base).
		Background(styles.Accent).
		Bold(true).
		Padding(0, 1).
		Render(backend)

	countInfo := lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Render(fmt.Sprintf(" ● %d/%d ", m.visible, m.total))

	helpItems := make([]string, 0, len(m.keyMap.ShortHelp())+1)
	for _, b := range m.keyMap.ShortHelp() {
		helpItems = append(helpItems, m.renderBinding(b))
	}
	helpItems = append(helpItems, m.renderBinding(m.keyMap.Help))
	help := styles.StatusBarSeparator.String() + strings.Join(helpItems, " ")

	var msgArea string
	if m.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		if m.isError {
			msgStyle = lipgloss.NewStyle().Foreground(styles.Danger).Bold(true)
		}
		msgArea = msgStyle.Render(" " + m.message + " ")
	}

	leftContent := brand + backendBadge + countInfo
	padding := m.width - lipgloss.Width(leftContent) - lipgloss.Width(msgArea) - lipgloss.Width(help)
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	line := styles.StatusBarStyle.
		Padding(0).
		Width(m.width).
		Render(leftContent +
			strings.Repeat(" ", leftPad) +
			msgArea +
			strings.Repeat(" ", rightPad) +
			help)

	if !m.showFull {
		return line
	}

	groups := make([]string, 0, len(m.keyMap.FullHelp()))
	for _, group := range m.keyMap.FullHelp() {
		items := make([]string, 0, len(group))
		for _, b := range group {
			items = append(items, m.renderBinding(b))
		}
		groups = append(groups, " "+strings.Join(items, "  "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append(groups, line)...)
}

// renderBinding renders a key binding hint.
func (m Model) renderBinding(b key.Binding) string {
	h := b.Help()
	return m.renderKey(h.Key, h.Desc)
}

// renderKey renders a key hint.
func (m Model) renderKey(key, desc string) string {
	return styles.StatusBarKey.Render(key) + styles.StatusBarDesc.Render(":"+desc)
}
