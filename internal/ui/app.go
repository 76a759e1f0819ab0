package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/lazyvibe/phonebook/internal/app"
	"github.com/lazyvibe/phonebook/internal/contacts"
	"github.com/lazyvibe/phonebook/internal/logging"
	"github.com/lazyvibe/phonebook/internal/notify"
	contactlist "github.com/lazyvibe/phonebook/internal/ui/components/contact_list"
	"github.com/lazyvibe/phonebook/internal/ui/components/dialog"
	"github.com/lazyvibe/phonebook/internal/ui/components/filter"
	"github.com/lazyvibe/phonebook/internal/ui/components/statusbar"
	"github.com/lazyvibe/phonebook/internal/ui/keys"
)

// FocusArea represents which UI pane has focus.
type FocusArea int

const (
	// FocusList is the contact list pane.
	FocusList FocusArea = iota
	// FocusFilter is the filter input.
	FocusFilter
)

// DialogMode represents the current dialog being shown.
type DialogMode int

const (
	DialogNone DialogMode = iota
	DialogAddContact
	DialogAlert
)

const (
	minAppWidth  = 40
	minAppHeight = 12
	headerHeight = 1
	filterHeight = 3
)

// App is the main application model.
type App struct {
	// Components
	contactList contactlist.Model
	filter      filter.Model
	statusBar   statusbar.Model
	addDialog   dialog.InputDialog
	alert       dialog.Alert

	// State
	focus       FocusArea
	dialogMode  DialogMode
	alertReturn DialogMode
	width       int
	height      int
	ready       bool
	quitting    bool

	// Dependencies
	contacts *contacts.Store
	alerts   *AlertQueue
	config   *app.Config
	keys     keys.KeyMap
	ctx      context.Context
	notifier *notify.Dispatcher
	log      logrus.FieldLogger
}

// Option configures an App.
type Option func(*App)

// WithDispatcher sets the notification dispatcher.
func WithDispatcher(d *notify.Dispatcher) Option {
	return func(a *App) { a.notifier = d }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *App) { a.log = l }
}

// New creates a new application instance around an initialized store.
// alerts must be the Notifier the store was built with.
func New(cs *contacts.Store, alerts *AlertQueue, cfg *app.Config, opts ...Option) App {
	if cfg == nil {
		cfg = app.DefaultConfig()
	}
	if alerts == nil {
		alerts = NewAlertQueue()
	}
	status := statusbar.New()
	status.SetBackend(cfg.Storage.Backend)

	a := App{
		contactList: contactlist.New(),
		filter:      filter.New(),
		statusBar:   status,
		addDialog: dialog.NewInputDialog("Add Contact", []dialog.InputField{
			{Label: "Name", Placeholder: "Rosie Simpson", Required: true},
			{Label: "Number", Placeholder: "459-12-56", Required: true, CharLimit: 64},
		}),
		alert:      dialog.NewAlert(),
		focus:      FocusList,
		dialogMode: DialogNone,
		contacts:   cs,
		alerts:     alerts,
		config:     cfg,
		keys:       keys.DefaultKeyMap(),
		ctx:        context.Background(),
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(&a)
	}
	a.filter.SetValue(cs.Filter())
	a.contactList.SetFocused(true)
	a.refresh()
	return a
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	return nil
}

// refresh pushes the store's current projection into the components.
func (a *App) refresh() {
	visible := a.contacts.VisibleContacts()
	total := a.contacts.Len()
	a.contactList.SetContacts(visible, a.contacts.DisplayMode(), total)
	a.statusBar.SetCounts(len(visible), total)
}

// SetSize updates the window dimensions.
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.statusBar.SetWidth(width)
	a.addDialog.SetSize(width, height)
	if a.windowTooSmall() {
		return
	}

	listHeight := height - headerHeight - filterHeight - a.statusBar.Height()
	if listHeight < 4 {
		listHeight = 4
	}
	a.filter.SetWidth(width)
	a.contactList.SetSize(width, listHeight)
}

func (a App) windowTooSmall() bool {
	return a.width < minAppWidth || a.height < minAppHeight
}

func (a *App) setFocus(focus FocusArea) tea.Cmd {
	a.focus = focus
	a.contactList.SetFocused(focus == FocusList)
	if focus == FocusFilter {
		return a.filter.Focus()
	}
	a.filter.Blur()
	return nil
}

func (a *App) showAddDialog() {
	a.dialogMode = DialogAddContact
	a.addDialog.Reset()
}

func (a *App) showAlert(title, message string, returnTo DialogMode) {
	a.alert.Show(title, message)
	a.alertReturn = returnTo
	a.dialogMode = DialogAlert
}

func (a *App) hideDialog() {
	a.dialogMode = DialogNone
}

// onFilterChange forwards the raw filter text to the store.
func (a *App) onFilterChange(text string) {
	a.contacts.SetFilter(text)
	a.refresh()
}

// submitContact hands the add form to the store's duplicate-checked add.
func (a *App) submitContact() tea.Cmd {
	values := a.addDialog.Values()
	name := strings.TrimSpace(values[0])
	number := strings.TrimSpace(values[1])

	added, err := a.contacts.SubmitContact(a.ctx, name, number)
	a.refresh()
	if err != nil {
		a.hideDialog()
		return Emit(ErrorMsg{Err: err})
	}
	if !added {
		msg, ok := a.alerts.Pop()
		if !ok {
			msg = contacts.DuplicateMessage(name)
		}
		a.addDialog.Resume()
		a.showAlert("Duplicate contact", msg, DialogAddContact)
		return Emit(DuplicateRejectedMsg{Name: name, Message: msg})
	}

	a.hideDialog()
	created := a.contacts.Contacts()[0]
	return Emit(ContactAddedMsg{Contact: created})
}

// removeSelected removes the contact under the cursor.
func (a *App) removeSelected() tea.Cmd {
	c := a.contactList.SelectedContact()
	if c == nil {
		return nil
	}
	removed := *c
	err := a.contacts.RemoveContact(a.ctx, removed.ID)
	a.refresh()
	if err != nil {
		return Emit(ErrorMsg{Err: err})
	}
	return Emit(ContactRemovedMsg{Contact: removed})
}

// dispatch sends ev through the notifier in the background when any
// channel is enabled.
func (a App) dispatch(ev notify.Event) tea.Cmd {
	if a.notifier == nil || a.config == nil {
		return nil
	}
	cfg := a.config.Notification
	if !cfg.Desktop && cfg.WebhookURL == "" {
		return nil
	}
	ctx := a.ctx
	notifier := a.notifier
	return func() tea.Msg {
		return NotificationSentMsg{Err: notifier.Dispatch(ctx, cfg, ev)}
	}
}
