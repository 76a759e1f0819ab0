// Package contacts holds the phonebook state: the contact list, the active
// filter, and the operations the UI calls to change them.
//
// A Store has exactly one writer, the UI event loop. Operations are
// synchronous and the duplicate check in SubmitContact relies on that.
package contacts

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lazyvibe/phonebook/internal/logging"
	"github.com/lazyvibe/phonebook/internal/model"
	"github.com/lazyvibe/phonebook/internal/store"
)

// StorageKey is the key the contact snapshot is stored under.
const StorageKey = "contacts"

// Notifier delivers a warning the user has to acknowledge.
type Notifier interface {
	Warn(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Warn calls f(message).
func (f NotifierFunc) Warn(message string) { f(message) }

// DisplayMode tells the renderer which of its three layouts to show.
type DisplayMode int

const (
	// ModeEmpty means there are no contacts at all.
	ModeEmpty DisplayMode = iota
	// ModeNoResults means contacts exist but none match the filter.
	ModeNoResults
	// ModeList means at least one contact is visible.
	ModeList
)

// Store owns the contact list and filter.
type Store struct {
	kv       store.Store
	newID    model.IDGenerator
	notifier Notifier
	log      logrus.FieldLogger

	contacts []model.Contact
	filter   string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the contact ID generator.
func WithIDGenerator(gen model.IDGenerator) Option {
	return func(s *Store) { s.newID = gen }
}

// WithNotifier sets where duplicate-name warnings go.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a Store backed by kv. Call Initialize before use.
func New(kv store.Store, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		newID:    model.NewID,
		notifier: NotifierFunc(func(string) {}),
		log:      logging.Discard(),
		contacts: []model.Contact{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the stored snapshot, or the seed contacts if none exists.
// It does not write to storage.
func (s *Store) Initialize(ctx context.Context) error {
	snapshot, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("read %s: %w", StorageKey, err)
	}

	if !ok {
		s.contacts = model.SeedContacts()
		s.log.WithField("count", len(s.contacts)).Info("no stored contacts, using seed list")
	} else {
		contacts, err := DecodeSnapshot(snapshot)
		if err != nil {
			return err
		}
		s.contacts = contacts
		s.log.WithField("count", len(s.contacts)).Info("contacts loaded")
	}

	s.filter = ""
	return nil
}

// AddContact prepends a new contact and persists the list.
// It does not check for duplicate names; see SubmitContact.
func (s *Store) AddContact(ctx context.Context, name, number string) (model.Contact, error) {
	c := model.NewContact(s.newID(), name, number)

	next := make([]model.Contact, 0, len(s.contacts)+1)
	next = append(next, c)
	next = append(next, s.contacts...)
	s.contacts = next

	s.log.WithFields(logrus.Fields{"contact_id": c.ID, "name": c.Name}).Info("contact added")
	return c, s.persist(ctx)
}

// SubmitContact adds a contact unless one with exactly the same name exists.
// A duplicate is reported through the Notifier and added is false; it is
// not an error.
func (s *Store) SubmitContact(ctx context.Context, name, number string) (added bool, err error) {
	if s.hasName(name) {
		s.log.WithField("name", name).Warn("duplicate contact rejected")
		s.notifier.Warn(DuplicateMessage(name))
		return false, nil
	}
	if _, err := s.AddContact(ctx, name, number); err != nil {
		return true, err
	}
	return true, nil
}

// DuplicateMessage is the warning shown when name is already taken.
func DuplicateMessage(name string) string {
	return name + " is already in contacts"
}

func (s *Store) hasName(name string) bool {
	for _, c := range s.contacts {
		if c.Name == name {
			return true
		}
	}
	return false
}

// RemoveContact drops the contact with the given id and persists the list.
// Unknown ids leave the list unchanged but still persist.
func (s *Store) RemoveContact(ctx context.Context, id string) error {
	next := make([]model.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if c.ID != id {
			next = append(next, c)
		}
	}
	if len(next) == len(s.contacts) {
		s.log.WithField("contact_id", id).Debug("remove: no such contact")
	} else {
		s.log.WithField("contact_id", id).Info("contact removed")
	}
	s.contacts = next
	return s.persist(ctx)
}

// SetFilter replaces the filter text as typed. It is never persisted.
func (s *Store) SetFilter(text string) {
	s.filter = text
}

// Filter returns the current filter text.
func (s *Store) Filter() string {
	return s.filter
}

// Contacts returns a copy of all contacts, newest first.
func (s *Store) Contacts() []model.Contact {
	out := make([]model.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Len returns the total number of contacts, ignoring the filter.
func (s *Store) Len() int {
	return len(s.contacts)
}

// VisibleContacts returns the contacts whose name contains the filter,
// compared case-insensitively, in list order.
func (s *Store) VisibleContacts() []model.Contact {
	normalized := strings.ToLower(s.filter)
	out := make([]model.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if c.MatchesFilter(normalized) {
			out = append(out, c)
		}
	}
	return out
}

// DisplayMode picks the renderer layout for the current state.
func (s *Store) DisplayMode() DisplayMode {
	if len(s.contacts) == 0 {
		return ModeEmpty
	}
	if len(s.VisibleContacts()) == 0 {
		return ModeNoResults
	}
	return ModeList
}

// persist overwrites the stored snapshot with the full list.
func (s *Store) persist(ctx context.Context) error {
	snapshot, err := EncodeSnapshot(s.contacts)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, StorageKey, snapshot); err != nil {
		s.log.WithError(err).Error("persist contacts")
		return fmt.Errorf("write %s: %w", StorageKey, err)
	}
	return nil
}
