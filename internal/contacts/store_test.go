package contacts

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/lazyvibe/phonebook/internal/model"
	"github.com/lazyvibe/phonebook/internal/store"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Warn(message string) {
	n.messages = append(n.messages, message)
}

type failingKV struct {
	*store.MemoryStore
	setErr error
	getErr error
}

func (f failingKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f failingKV) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func sequentialIDs() model.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
}

func newSeeded(t *testing.T, opts ...Option) (*Store, *store.MemoryStore) {
	t.Helper()
	kv := store.NewMemoryStore()
	s := New(kv, opts...)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return s, kv
}

func names(cs []model.Contact) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func ids(cs []model.Contact) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestInitializeWithoutSnapshotUsesSeed(t *testing.T) {
	s, kv := newSeeded(t)

	if !reflect.DeepEqual(s.Contacts(), model.SeedContacts()) {
		t.Fatalf("Contacts() = %v, want seed", s.Contacts())
	}
	if s.Filter() != "" {
		t.Errorf("Filter() = %q, want empty", s.Filter())
	}
	if kv.Writes() != 0 {
		t.Errorf("Initialize wrote %d times, want 0", kv.Writes())
	}
}

func TestInitializeAdoptsSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	stored := []model.Contact{{ID: "x", Name: "Zed", Number: "1"}}
	snap, _ := EncodeSnapshot(stored)
	_ = kv.Set(ctx, StorageKey, snap)

	s := New(kv)
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if !reflect.DeepEqual(s.Contacts(), stored) {
		t.Errorf("Contacts() = %v, want %v", s.Contacts(), stored)
	}
}

func TestInitializeEmptySnapshotIsNotSeeded(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	_ = kv.Set(ctx, StorageKey, "[]")

	s := New(kv)
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if s.DisplayMode() != ModeEmpty {
		t.Errorf("DisplayMode() = %v, want ModeEmpty", s.DisplayMode())
	}
}

func TestInitializeMalformedSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	_ = kv.Set(ctx, StorageKey, `{"id":"not-a-list"`)

	s := New(kv)
	err := s.Initialize(ctx)
	if !errors.Is(err, ErrMalformedSnapshot) {
		t.Fatalf("Initialize() error = %v, want ErrMalformedSnapshot", err)
	}
}

func TestInitializeStorageError(t *testing.T) {
	boom := errors.New("disk gone")
	s := New(failingKV{MemoryStore: store.NewMemoryStore(), getErr: boom})
	if err := s.Initialize(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Initialize() error = %v, want %v", err, boom)
	}
}

func TestAddContactPrepends(t *testing.T) {
	s, kv := newSeeded(t, WithIDGenerator(sequentialIDs()))
	before := s.Contacts()

	c, err := s.AddContact(context.Background(), "New Person", "111")
	if err != nil {
		t.Fatalf("AddContact() error = %v", err)
	}
	got := s.Contacts()
	if got[0] != c || c.ID != "gen-1" {
		t.Fatalf("first contact = %+v, want %+v", got[0], c)
	}
	if !reflect.DeepEqual(got[1:], before) {
		t.Errorf("existing contacts reordered: %v", names(got[1:]))
	}
	if kv.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", kv.Writes())
	}
}

func TestAddContactUniqueIDs(t *testing.T) {
	s, _ := newSeeded(t)
	ctx := context.Background()
	for i := 0; i < 200; i++ {
		if _, err := s.AddContact(ctx, fmt.Sprintf("p%d", i), ""); err != nil {
			t.Fatal(err)
		}
	}
	seen := make(map[string]bool)
	for _, id := range ids(s.Contacts()) {
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestSubmitContactRejectsDuplicate(t *testing.T) {
	n := &recordingNotifier{}
	s, kv := newSeeded(t, WithNotifier(n))
	before := s.Contacts()

	added, err := s.SubmitContact(context.Background(), "Rosie Simpson", "000-00-00")
	if err != nil {
		t.Fatalf("SubmitContact() error = %v", err)
	}
	if added {
		t.Fatal("SubmitContact() added a duplicate")
	}
	if !reflect.DeepEqual(s.Contacts(), before) {
		t.Errorf("contacts changed: %v", names(s.Contacts()))
	}
	if len(n.messages) != 1 || n.messages[0] != "Rosie Simpson is already in contacts" {
		t.Errorf("notifier messages = %q", n.messages)
	}
	if kv.Writes() != 0 {
		t.Errorf("rejected submit wrote %d times", kv.Writes())
	}
}

func TestSubmitContactDuplicateIsCaseSensitive(t *testing.T) {
	n := &recordingNotifier{}
	s, _ := newSeeded(t, WithNotifier(n))

	added, err := s.SubmitContact(context.Background(), "rosie simpson", "1")
	if err != nil || !added {
		t.Fatalf("SubmitContact() = %v, %v; want added", added, err)
	}
	if len(n.messages) != 0 {
		t.Errorf("unexpected warning %q", n.messages)
	}
	if s.Contacts()[0].Name != "rosie simpson" {
		t.Errorf("first = %q", s.Contacts()[0].Name)
	}
}

func TestSubmitContactPersistError(t *testing.T) {
	boom := errors.New("quota exceeded")
	s := New(failingKV{MemoryStore: store.NewMemoryStore(), setErr: boom})
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatal(err)
	}
	added, err := s.SubmitContact(context.Background(), "A", "1")
	if !errors.Is(err, boom) {
		t.Fatalf("SubmitContact() error = %v, want %v", err, boom)
	}
	if !added {
		t.Error("added = false; the in-memory list was still updated")
	}
}

func TestRemoveContact(t *testing.T) {
	s, kv := newSeeded(t)

	if err := s.RemoveContact(context.Background(), "id-2"); err != nil {
		t.Fatalf("RemoveContact() error = %v", err)
	}
	want := []string{"id-1", "id-3", "id-4"}
	if got := ids(s.Contacts()); !reflect.DeepEqual(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
	if kv.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", kv.Writes())
	}
}

func TestRemoveContactIdempotent(t *testing.T) {
	s, kv := newSeeded(t)
	ctx := context.Background()

	_ = s.RemoveContact(ctx, "id-3")
	once := s.Contacts()
	_ = s.RemoveContact(ctx, "id-3")

	if !reflect.DeepEqual(s.Contacts(), once) {
		t.Errorf("second remove changed state: %v", ids(s.Contacts()))
	}
	if kv.Writes() != 2 {
		t.Errorf("no-op remove should still persist: Writes() = %d", kv.Writes())
	}
}

func TestSetFilterVerbatimAndNotPersisted(t *testing.T) {
	s, kv := newSeeded(t)
	s.SetFilter("  An ")
	if s.Filter() != "  An " {
		t.Errorf("Filter() = %q", s.Filter())
	}
	if kv.Writes() != 0 {
		t.Errorf("SetFilter wrote %d times", kv.Writes())
	}
}

func TestVisibleContacts(t *testing.T) {
	s, _ := newSeeded(t)

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"Rosie Simpson", "Hermione Kline", "Eden Clements", "Annie Copeland"}},
		{"an", []string{"Annie Copeland"}},
		{"AN", []string{"Annie Copeland"}},
		{"e", []string{"Rosie Simpson", "Hermione Kline", "Eden Clements", "Annie Copeland"}},
		{"kl", []string{"Hermione Kline"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		s.SetFilter(tt.filter)
		if got := names(s.VisibleContacts()); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("VisibleContacts() with %q = %v, want %v", tt.filter, got, tt.want)
		}
	}
}

func TestVisibleContactsMatchesDefinition(t *testing.T) {
	s, _ := newSeeded(t)
	ctx := context.Background()
	for _, n := range []string{"ANNA", "bob", "Ángel", "x an y"} {
		if _, err := s.AddContact(ctx, n, ""); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{"", "an", "AN", "o", "ángel", " "} {
		s.SetFilter(f)
		visible := make(map[string]bool)
		for _, c := range s.VisibleContacts() {
			visible[c.ID] = true
		}
		for _, c := range s.Contacts() {
			want := c.MatchesFilter(toLower(f))
			if visible[c.ID] != want {
				t.Errorf("filter %q, contact %q: visible = %v, want %v", f, c.Name, visible[c.ID], want)
			}
		}
	}
}

func TestDisplayMode(t *testing.T) {
	s, _ := newSeeded(t)
	if s.DisplayMode() != ModeList {
		t.Errorf("DisplayMode() = %v, want ModeList", s.DisplayMode())
	}
	s.SetFilter("nobody")
	if s.DisplayMode() != ModeNoResults {
		t.Errorf("DisplayMode() = %v, want ModeNoResults", s.DisplayMode())
	}
	for _, c := range s.Contacts() {
		_ = s.RemoveContact(context.Background(), c.ID)
	}
	if s.DisplayMode() != ModeEmpty {
		t.Errorf("DisplayMode() = %v, want ModeEmpty", s.DisplayMode())
	}
}

func TestPersistedSnapshotReloads(t *testing.T) {
	ctx := context.Background()
	s, kv := newSeeded(t)
	if _, err := s.AddContact(ctx, "Newest", "9"); err != nil {
		t.Fatal(err)
	}
	_ = s.RemoveContact(ctx, "id-1")

	reloaded := New(kv)
	if err := reloaded.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if !reflect.DeepEqual(reloaded.Contacts(), s.Contacts()) {
		t.Errorf("reloaded = %v, want %v", reloaded.Contacts(), s.Contacts())
	}
}

func TestContactsReturnsCopy(t *testing.T) {
	s, _ := newSeeded(t)
	got := s.Contacts()
	got[0].Name = "mutated"
	if s.Contacts()[0].Name != "Rosie Simpson" {
		t.Error("Contacts() exposes internal slice")
	}
}
