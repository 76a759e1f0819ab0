package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/phonebook/internal/notify"
)

// Update handles all messages for the application.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If a dialog is open, only intercept key input; allow other messages through.
	if a.dialogMode != DialogNone {
		if _, ok := msg.(tea.KeyMsg); ok {
			return a.handleDialogUpdate(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		if a.focus == FocusFilter {
			return a.handleFilterKeys(msg)
		}
		return a.handleListKeys(msg)

	case ContactAddedMsg:
		a.statusBar.SetMessage("Contact added: "+msg.Contact.Name, false)
		return a, a.dispatch(notify.Event{
			ContactID:   msg.Contact.ID,
			ContactName: msg.Contact.Name,
			Type:        notify.EventContactAdded,
			Message:     msg.Contact.Name + " (" + msg.Contact.Number + ") added",
			Timestamp:   time.Now(),
		})

	case ContactRemovedMsg:
		a.statusBar.SetMessage("Contact removed: "+msg.Contact.Name, false)
		return a, a.dispatch(notify.Event{
			ContactID:   msg.Contact.ID,
			ContactName: msg.Contact.Name,
			Type:        notify.EventContactRemoved,
			Message:     msg.Contact.Name + " removed",
			Timestamp:   time.Now(),
		})

	case DuplicateRejectedMsg:
		a.statusBar.SetMessage(msg.Message, true)
		return a, a.dispatch(notify.Event{
			ContactName: msg.Name,
			Type:        notify.EventDuplicateName,
			Title:       "Duplicate contact",
			Message:     msg.Message,
			Timestamp:   time.Now(),
		})

	case NotificationSentMsg:
		if msg.Err != nil {
			a.log.WithError(msg.Err).Warn("notification failed")
		}
		return a, nil

	case ErrorMsg:
		a.log.WithError(msg.Err).Error("operation failed")
		a.statusBar.SetMessage("Error: "+msg.Err.Error(), true)
		return a, nil
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	if a.focus == FocusFilter {
		a.filter, cmd = a.filter.Update(msg)
	}
	return a, cmd
}

// handleDialogUpdate handles input when a dialog is open.
func (a App) handleDialogUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.dialogMode {
	case DialogAddContact:
		var cmd tea.Cmd
		a.addDialog, cmd = a.addDialog.Update(msg)

		if a.addDialog.IsSubmitted() {
			return a, a.submitContact()
		}
		if a.addDialog.IsCancelled() {
			a.hideDialog()
			return a, nil
		}
		return a, cmd

	case DialogAlert:
		a.alert, _ = a.alert.Update(msg)
		if !a.alert.IsOpen() {
			a.dialogMode = a.alertReturn
			a.alertReturn = DialogNone
		}
		return a, nil
	}
	return a, nil
}

// handleFilterKeys handles keys while the filter input has focus.
func (a App) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel), key.Matches(msg, a.keys.Confirm), key.Matches(msg, a.keys.Tab):
		return a, a.setFocus(FocusList)
	case key.Matches(msg, a.keys.Clear):
		a.filter.SetValue("")
		a.onFilterChange("")
		return a, nil
	}

	before := a.filter.Value()
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	if after := a.filter.Value(); after != before {
		a.onFilterChange(after)
	}
	return a, cmd
}

// handleListKeys handles keys when the contact list is focused.
func (a App) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.statusBar.ToggleHelp()
		a.SetSize(a.width, a.height)
		return a, nil

	case key.Matches(msg, a.keys.Add):
		a.showAddDialog()
		return a, nil

	case key.Matches(msg, a.keys.Filter), key.Matches(msg, a.keys.Tab):
		return a, a.setFocus(FocusFilter)

	case key.Matches(msg, a.keys.Clear):
		a.filter.SetValue("")
		a.onFilterChange("")
		return a, nil

	case key.Matches(msg, a.keys.Delete):
		return a, a.removeSelected()
	}

	// Let contact list handle navigation keys
	var cmd tea.Cmd
	a.contactList, cmd = a.contactList.Update(msg)
	return a, cmd
}
