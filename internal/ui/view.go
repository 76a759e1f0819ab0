package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/phonebook/internal/ui/styles"
)

// View renders the entire application.
func (a App) View() string {
	if a.quitting {
		bye := styles.LogoStyle.Render("👋 Goodbye from Phonebook!")
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(bye)
	}

	if !a.ready {
		loading := styles.LogoStyle.
			Foreground(styles.Accent).
			Render(styles.IconBook + " Loading Phonebook...")
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(loading)
	}

	if a.windowTooSmall() {
		msg := fmt.Sprintf("Window too small: need at least %dx%d (now %dx%d)", minAppWidth, minAppHeight, a.width, a.height)
		notice := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render(msg)
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(notice)
	}

	if a.dialogMode != DialogNone {
		return a.renderWithDialog()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.RenderFancyHeader(styles.IconBook+" Phonebook", a.width),
		a.filter.View(),
		a.contactList.View(),
		a.statusBar.View(),
	)
}

// renderWithDialog centers the active dialog on screen.
func (a App) renderWithDialog() string {
	var dialogView string
	switch a.dialogMode {
	case DialogAddContact:
		dialogView = a.addDialog.View()
	case DialogAlert:
		dialogView = a.alert.View()
	}

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		dialogView,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#00000000")),
	)
}
