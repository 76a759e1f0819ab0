package dialog

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/phonebook/internal/ui/styles"
)

// Alert is a modal message that must be dismissed before anything else
// receives input.
type Alert struct {
	title    string
	message  string
	open     bool
	maxWidth int
}

// NewAlert creates a closed alert.
func NewAlert() Alert {
	return Alert{maxWidth: 50}
}

// Show opens the alert with the given message.
func (a *Alert) Show(title, message string) {
	a.title = title
	a.message = message
	a.open = true
}

// IsOpen reports whether the alert is waiting to be dismissed.
func (a Alert) IsOpen() bool {
	return a.open
}

// Message returns the current message.
func (a Alert) Message() string {
	return a.message
}

// Update dismisses the alert on enter, esc or space. Other keys are swallowed.
func (a Alert) Update(msg tea.Msg) (Alert, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", " ":
			a.open = false
		}
	}
	return a, nil
}

// View renders the alert box.
func (a Alert) View() string {
	title := styles.DialogTitle.
		Foreground(styles.Warning).
		Render(styles.IconWarning + "  " + a.title)
	body := lipgloss.NewStyle().
		Foreground(styles.TextCol).
		Width(a.maxWidth).
		Render(a.message)
	button := styles.DialogButtonActive.
		MarginTop(1).
		Render("Enter: OK")

	return styles.AlertBorder.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, button))
}
