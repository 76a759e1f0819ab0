package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazyvibe/phonebook/internal/app"
	"github.com/lazyvibe/phonebook/internal/contacts"
	"github.com/lazyvibe/phonebook/internal/store"
)

func newTestApp(t *testing.T) (App, *contacts.Store) {
	t.Helper()
	alerts := NewAlertQueue()
	cs := contacts.New(store.NewMemoryStore(), contacts.WithNotifier(alerts))
	if err := cs.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	a := New(cs, alerts, app.DefaultConfig())
	a.SetSize(100, 30)
	return a, cs
}

// send runs msg through Update and feeds the app's own follow-up messages
// back in, the way the tea runtime would. Slow component commands such as
// cursor blink ticks are dropped.
func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, cmd := a.Update(msg)
	a = m.(App)
	for cmd != nil {
		next := runCmd(cmd)
		switch next.(type) {
		case ContactAddedMsg, ContactRemovedMsg, DuplicateRejectedMsg, ErrorMsg:
			m, cmd = a.Update(next)
			a = m.(App)
		default:
			cmd = nil
		}
	}
	return a
}

func runCmd(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, a App, s string) App {
	for _, r := range s {
		a = send(t, a, keyRunes(string(r)))
	}
	return a
}

func TestAddContactFlow(t *testing.T) {
	a, cs := newTestApp(t)

	a = send(t, a, keyRunes("a"))
	if a.dialogMode != DialogAddContact {
		t.Fatalf("dialogMode = %v, want DialogAddContact", a.dialogMode)
	}
	a = typeText(t, a, "Jane Doe")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "555-01-02")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.dialogMode != DialogNone {
		t.Fatalf("dialogMode = %v after submit", a.dialogMode)
	}
	if got := cs.Contacts()[0]; got.Name != "Jane Doe" || got.Number != "555-01-02" {
		t.Errorf("first contact = %+v", got)
	}
	if msg, isErr := a.statusBar.Message(); isErr || !strings.Contains(msg, "Jane Doe") {
		t.Errorf("status = %q, %v", msg, isErr)
	}
	if a.contactList.ItemCount() != 5 {
		t.Errorf("list shows %d items, want 5", a.contactList.ItemCount())
	}
}

func TestDuplicateShowsBlockingAlert(t *testing.T) {
	a, cs := newTestApp(t)

	a = send(t, a, keyRunes("a"))
	a = typeText(t, a, "Rosie Simpson")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "000-00-00")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.dialogMode != DialogAlert {
		t.Fatalf("dialogMode = %v, want DialogAlert", a.dialogMode)
	}
	if a.alert.Message() != "Rosie Simpson is already in contacts" {
		t.Errorf("alert message = %q", a.alert.Message())
	}
	if cs.Len() != 4 {
		t.Errorf("Len() = %d, want 4", cs.Len())
	}
	if a.alerts.Len() != 0 {
		t.Errorf("alert queue not drained: %d", a.alerts.Len())
	}

	// Keys other than dismiss are swallowed.
	a = send(t, a, keyRunes("q"))
	if a.quitting || a.dialogMode != DialogAlert {
		t.Fatalf("alert did not block input: quitting=%v mode=%v", a.quitting, a.dialogMode)
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.dialogMode != DialogAddContact {
		t.Fatalf("dialogMode = %v after dismiss, want DialogAddContact", a.dialogMode)
	}
	if a.addDialog.Value(0) != "Rosie Simpson" {
		t.Errorf("form lost its values: %q", a.addDialog.Values())
	}
}

func TestFilterAndRemove(t *testing.T) {
	a, cs := newTestApp(t)

	a = send(t, a, keyRunes("/"))
	if a.focus != FocusFilter {
		t.Fatalf("focus = %v, want FocusFilter", a.focus)
	}
	a = typeText(t, a, "AN")
	if cs.Filter() != "AN" {
		t.Errorf("store filter = %q", cs.Filter())
	}
	if a.contactList.ItemCount() != 1 || a.contactList.SelectedContact().Name != "Annie Copeland" {
		t.Fatalf("visible = %d, selected = %+v", a.contactList.ItemCount(), a.contactList.SelectedContact())
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.focus != FocusList {
		t.Fatalf("focus = %v after esc", a.focus)
	}
	a = send(t, a, keyRunes("d"))
	if cs.Len() != 3 {
		t.Fatalf("Len() = %d after delete, want 3", cs.Len())
	}
	for _, c := range cs.Contacts() {
		if c.ID == "id-4" {
			t.Fatal("id-4 still present")
		}
	}
	if a.contactList.Mode() != contacts.ModeNoResults {
		t.Errorf("Mode() = %v, want ModeNoResults", a.contactList.Mode())
	}
	if !strings.Contains(a.View(), "No results in your contacts...") {
		t.Errorf("view missing no-results message")
	}
}

func TestEmptyState(t *testing.T) {
	a, cs := newTestApp(t)
	for cs.Len() > 0 {
		a = send(t, a, keyRunes("d"))
	}
	if a.contactList.Mode() != contacts.ModeEmpty {
		t.Fatalf("Mode() = %v, want ModeEmpty", a.contactList.Mode())
	}
	if !strings.Contains(a.View(), "You have no contacts yet...") {
		t.Error("view missing empty-state message")
	}
	// Deleting with nothing selected is harmless.
	a = send(t, a, keyRunes("d"))
	if cs.Len() != 0 {
		t.Errorf("Len() = %d", cs.Len())
	}
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t)
	m, cmd := a.Update(keyRunes("q"))
	if !m.(App).quitting || cmd == nil {
		t.Fatal("q did not quit")
	}
}

func TestWindowTooSmall(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(t, a, tea.WindowSizeMsg{Width: 20, Height: 5})
	if !strings.Contains(a.View(), "too small") {
		t.Error("small window notice not shown")
	}
}

func TestDeleteKeepsCursorPosition(t *testing.T) {
	a, cs := newTestApp(t)

	a = send(t, a, keyRunes("j"))
	a = send(t, a, keyRunes("j"))
	if got := a.contactList.SelectedContact().Name; got != "Eden Clements" {
		t.Fatalf("selected = %q, want Eden Clements", got)
	}

	a = send(t, a, keyRunes("d"))
	if cs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cs.Len())
	}
	if got := a.contactList.SelectedContact().Name; got != "Annie Copeland" {
		t.Errorf("selected after delete = %q, want Annie Copeland", got)
	}

	a = send(t, a, keyRunes("d"))
	names := []string{}
	for _, c := range cs.Contacts() {
		names = append(names, c.Name)
	}
	if strings.Join(names, ",") != "Rosie Simpson,Hermione Kline" {
		t.Errorf("remaining = %v", names)
	}
}

func TestSubmitTrimsNameBeforeDuplicateCheck(t *testing.T) {
	a, cs := newTestApp(t)

	a = send(t, a, keyRunes("a"))
	a = typeText(t, a, "Rosie Simpson ")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, " 111-22-33 ")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.dialogMode != DialogAlert {
		t.Fatalf("dialogMode = %v, want DialogAlert", a.dialogMode)
	}
	if cs.Len() != 4 {
		t.Errorf("Len() = %d, want 4", cs.Len())
	}

	// A distinct name is stored trimmed.
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a = send(t, a, keyRunes("a"))
	a = typeText(t, a, "  Rosa Parks ")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, " 111-22-33 ")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if got := cs.Contacts()[0]; got.Name != "Rosa Parks" || got.Number != "111-22-33" {
		t.Errorf("first contact = %+v", got)
	}
}
