// Package dialog provides modal dialog components for Phonebook.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/phonebook/internal/ui/styles"
)

// InputField represents a single input field in the dialog.
type InputField struct {
	Label       string
	Placeholder string
	Value       string
	// Required fields must be non-blank before the dialog accepts Enter.
	Required  bool
	CharLimit int
}

// InputDialog is a modal dialog for text input.
type InputDialog struct {
	title      string
	inputs     []textinput.Model
	labels     []string
	required   []bool
	focusIndex int
	width      int
	height     int
	submitted  bool
	cancelled  bool
	errMsg     string
	styles     InputStyles
}

// InputStyles defines the visual appearance of the dialog.
type InputStyles struct {
	Box          lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

// DefaultInputStyles returns the dialog styles.
func DefaultInputStyles() InputStyles {
	return InputStyles{
		Box: styles.DialogBox,

		Title: styles.DialogTitle.
			Foreground(styles.Accent),

		Label: lipgloss.NewStyle().
			Foreground(styles.TextMuted),

		LabelFocused: lipgloss.NewStyle().
			Foreground(styles.Pink).
			Bold(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface0).
			Padding(0, 1).
			MarginBottom(1),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderFocus).
			Padding(0, 1).
			MarginBottom(1),

		Error: lipgloss.NewStyle().
			Foreground(styles.Danger).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			MarginTop(1),
	}
}

// NewInputDialog creates a new input dialog.
func NewInputDialog(title string, fields []InputField) InputDialog {
	inputs := make([]textinput.Model, len(fields))
	labels := make([]string, len(fields))
	required := make([]bool, len(fields))

	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.SetValue(f.Value)
		ti.CharLimit = 256
		if f.CharLimit > 0 {
			ti.CharLimit = f.CharLimit
		}
		ti.Width = 40

		if i == 0 {
			ti.Focus()
		}

		inputs[i] = ti
		labels[i] = f.Label
		required[i] = f.Required
	}

	return InputDialog{
		title:    title,
		inputs:   inputs,
		labels:   labels,
		required: required,
		styles:   DefaultInputStyles(),
	}
}

// SetSize updates the dialog dimensions.
func (d *InputDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update handles input dialog messages.
func (d InputDialog) Update(msg tea.Msg) (InputDialog, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			d.focusIndex = (d.focusIndex + 1) % len(d.inputs)
			return d, d.updateFocus()

		case "shift+tab", "up":
			d.focusIndex--
			if d.focusIndex < 0 {
				d.focusIndex = len(d.inputs) - 1
			}
			return d, d.updateFocus()

		case "enter":
			if i := d.firstMissing(); i >= 0 {
				d.errMsg = d.labels[i] + " is required"
				d.focusIndex = i
				return d, d.updateFocus()
			}
			d.errMsg = ""
			d.submitted = true
			return d, nil

		case "esc":
			d.cancelled = true
			return d, nil
		}
	}

	// Update focused input
	var cmd tea.Cmd
	d.inputs[d.focusIndex], cmd = d.inputs[d.focusIndex].Update(msg)
	return d, cmd
}

// firstMissing returns the index of the first blank required field, or -1.
func (d InputDialog) firstMissing() int {
	for i, input := range d.inputs {
		if d.required[i] && strings.TrimSpace(input.Value()) == "" {
			return i
		}
	}
	return -1
}

// updateFocus sets focus to the correct input.
func (d *InputDialog) updateFocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(d.inputs))
	for i := range d.inputs {
		if i == d.focusIndex {
			cmds[i] = d.inputs[i].Focus()
		} else {
			d.inputs[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

// View renders the dialog.
func (d InputDialog) View() string {
	var b strings.Builder

	b.WriteString(d.styles.Title.Render(styles.IconAdd + " " + d.title))
	b.WriteString("\n")

	for i, input := range d.inputs {
		labelStyle := d.styles.Label
		inputStyle := d.styles.Input
		if i == d.focusIndex {
			labelStyle = d.styles.LabelFocused
			inputStyle = d.styles.InputFocused
		}

		label := d.labels[i]
		if d.required[i] {
			label += " *"
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(inputStyle.Render(input.View()))
		b.WriteString("\n")
	}

	if d.errMsg != "" {
		b.WriteString(d.styles.Error.Render(d.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(d.styles.Help.Render("Tab: Next field • Enter: Confirm • Esc: Cancel"))

	return d.styles.Box.Render(b.String())
}

// IsSubmitted returns true if the user submitted the dialog.
func (d InputDialog) IsSubmitted() bool {
	return d.submitted
}

// IsCancelled returns true if the user cancelled the dialog.
func (d InputDialog) IsCancelled() bool {
	return d.cancelled
}

// Error returns the current validation message.
func (d InputDialog) Error() string {
	return d.errMsg
}

// Values returns all input values.
func (d InputDialog) Values() []string {
	values := make([]string, len(d.inputs))
	for i, input := range d.inputs {
		values[i] = input.Value()
	}
	return values
}

// Value returns the value of the input at the given index.
func (d InputDialog) Value(index int) string {
	if index < 0 || index >= len(d.inputs) {
		return ""
	}
	return d.inputs[index].Value()
}

// Resume clears the submitted state but keeps the typed values, so the
// dialog can be shown again after a rejected submission.
func (d *InputDialog) Resume() {
	d.submitted = false
	d.cancelled = false
}

// Reset resets the dialog state.
func (d *InputDialog) Reset() {
	d.submitted = false
	d.cancelled = false
	d.focusIndex = 0
	d.errMsg = ""
	for i := range d.inputs {
		d.inputs[i].SetValue("")
		if i == 0 {
			d.inputs[i].Focus()
		} else {
			d.inputs[i].Blur()
		}
	}
}
