// Package contactlist provides the contact list UI component.
package contactlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/phonebook/internal/contacts"
	"github.com/lazyvibe/phonebook/internal/model"
	"github.com/lazyvibe/phonebook/internal/ui/styles"
)

// Empty-state messages, one per display mode.
const (
	EmptyMessage     = "You have no contacts yet..."
	NoResultsMessage = "No results in your contacts..."
)

// Model is the contact list component.
type Model struct {
	items   []model.Contact
	mode    contacts.DisplayMode
	total   int
	cursor  int
	focused bool
	width   int
	height  int
	offset  int // For scrolling
}

// New creates a new contact list component.
func New() Model {
	return Model{
		items: []model.Contact{},
		mode:  contacts.ModeEmpty,
	}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetFocused updates the focus state.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsFocused returns whether the component is focused.
func (m Model) IsFocused() bool {
	return m.focused
}

// SetContacts replaces the visible contacts. total is the unfiltered count.
// The cursor stays on the same contact when it is still visible; otherwise
// it keeps its index, clamped to the new list.
func (m *Model) SetContacts(visible []model.Contact, mode contacts.DisplayMode, total int) {
	var selectedID string
	if c := m.SelectedContact(); c != nil {
		selectedID = c.ID
	}

	m.items = visible
	m.mode = mode
	m.total = total

	for i, c := range m.items {
		if c.ID == selectedID {
			m.cursor = i
			break
		}
	}
	m.clampCursor()
	m.ensureVisible()
}

// Mode returns the display mode the list was last given.
func (m Model) Mode() contacts.DisplayMode {
	return m.mode
}

// SelectedContact returns the currently selected contact.
func (m Model) SelectedContact() *model.Contact {
	if m.cursor >= 0 && m.cursor < len(m.items) {
		c := m.items[m.cursor]
		return &c
	}
	return nil
}

// SelectedIndex returns the index of the selected item.
func (m Model) SelectedIndex() int {
	return m.cursor
}

// ItemCount returns the number of visible items.
func (m Model) ItemCount() int {
	return len(m.items)
}

// CursorUp moves cursor up.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		m.ensureVisible()
	}
}

// CursorDown moves cursor down.
func (m *Model) CursorDown() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
		m.ensureVisible()
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) visibleRows() int {
	rows := m.height - 4 // Account for border, title, and separator
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ensureVisible adjusts scroll offset to keep cursor visible.
func (m *Model) ensureVisible() {
	visibleRows := m.visibleRows()

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// HandleKey processes a navigation key.
func (m *Model) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		m.CursorUp()
		return true
	case "down", "j":
		m.CursorDown()
		return true
	case "home", "g":
		m.cursor = 0
		m.offset = 0
		return true
	case "end", "G":
		m.cursor = len(m.items) - 1
		m.clampCursor()
		m.ensureVisible()
		return true
	}
	return false
}

// View renders the contact list.
func (m Model) View() string {
	innerWidth := m.width - 4 // Border + padding
	innerHeight := m.height - 4
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	// Header
	icon := styles.PanelTitleIcon.Render(styles.IconContact)
	title := "Contacts"
	if m.focused {
		title = styles.PanelTitleFocused.Render(title)
	} else {
		title = styles.PanelTitle.Render(title)
	}
	count := fmt.Sprintf("(%d)", m.total)
	if len(m.items) != m.total {
		count = fmt.Sprintf("(%d/%d)", len(m.items), m.total)
	}
	header := icon + title + " " + styles.ListItemDim.Render(count)

	var rows []string
	switch m.mode {
	case contacts.ModeEmpty:
		rows = append(rows, "", styles.Placeholder.Render(EmptyMessage),
			styles.ListItemDim.Render("Press 'a' to add one"))
	case contacts.ModeNoResults:
		rows = append(rows, "", styles.Placeholder.Render(NoResultsMessage))
	default:
		visibleRows := innerHeight
		if len(m.items) > innerHeight {
			visibleRows = innerHeight - 1
			if visibleRows < 1 {
				visibleRows = 1
			}
		}

		endIdx := m.offset + visibleRows
		if endIdx > len(m.items) {
			endIdx = len(m.items)
		}
		for i := m.offset; i < endIdx; i++ {
			rows = append(rows, m.renderItem(m.items[i], i == m.cursor, innerWidth))
		}

		// Scroll indicator
		if len(m.items) > visibleRows {
			scrollInfo := fmt.Sprintf(" %d/%d ", m.cursor+1, len(m.items))
			rows = append(rows, styles.ListItemDim.Render(scrollInfo))
		}
	}

	content := lipgloss.NewStyle().
		Width(innerWidth).
		Height(innerHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	borderStyle := styles.BorderStyle
	if m.focused {
		borderStyle = styles.FocusedBorderStyle
	}

	return borderStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			strings.Repeat("─", innerWidth),
			content,
		))
}

// renderItem renders a single contact row: name on the left, number on the right.
func (m Model) renderItem(c model.Contact, selected bool, maxWidth int) string {
	prefix := "  "
	if selected {
		prefix = styles.IconCursor + " "
	}

	number := c.Number
	numberWidth := lipgloss.Width(number)
	nameWidth := maxWidth - 2 - lipgloss.Width(prefix) - numberWidth - 1
	if nameWidth < 4 {
		nameWidth = maxWidth - 2 - lipgloss.Width(prefix)
		number = ""
		numberWidth = 0
	}
	name := styles.TruncateWithEllipsis(c.Name, nameWidth)
	gap := maxWidth - 2 - lipgloss.Width(prefix) - lipgloss.Width(name) - numberWidth
	if gap < 1 {
		gap = 1
	}

	rowStyle := styles.ListItem
	switch {
	case selected && m.focused:
		rowStyle = styles.ListItemSelected
	case selected:
		rowStyle = styles.ListItemHighlight
	}

	row := prefix + name + strings.Repeat(" ", gap) + styles.ContactNumber.Render(number)
	return rowStyle.Width(maxWidth).Render(row)
}
