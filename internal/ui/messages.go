// Package ui provides the terminal user interface for Phonebook.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/phonebook/internal/model"
)

// ---------- Contact Messages ----------

// ContactAddedMsg is sent after a contact was added and persisted.
type ContactAddedMsg struct {
	Contact model.Contact
}

// ContactRemovedMsg is sent after a contact was removed and persisted.
type ContactRemovedMsg struct {
	Contact model.Contact
}

// DuplicateRejectedMsg is sent when a submission was rejected.
type DuplicateRejectedMsg struct {
	Name    string
	Message string
}

// ---------- UI Messages ----------

// ErrorMsg is sent when an error occurs.
type ErrorMsg struct {
	Err error
}

// NotificationSentMsg reports the outcome of a background notification.
type NotificationSentMsg struct {
	Err error
}

// ---------- Command Functions ----------

// Emit returns a command that yields msg.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
