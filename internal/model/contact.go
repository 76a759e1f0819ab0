// Package model defines core data structures for Phonebook.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// Contact is a single phonebook entry.
type Contact struct {
	// ID is the unique identifier for this contact. Immutable once assigned.
	ID string `json:"id"`
	// Name is the display name and the key used for duplicate detection.
	Name string `json:"name"`
	// Number is the free-form phone number.
	Number string `json:"number"`
}

// IDGenerator produces a fresh, collision-resistant contact ID.
type IDGenerator func() string

// NewID returns a random UUID string.
func NewID() string {
	return uuid.New().String()
}

// NewContact creates a contact with the given ID.
func NewContact(id, name, number string) Contact {
	return Contact{
		ID:     id,
		Name:   name,
		Number: number,
	}
}

// MatchesFilter reports whether the lowercased name contains normalizedFilter.
// The caller is expected to lowercase the filter once per query.
func (c Contact) MatchesFilter(normalizedFilter string) bool {
	return strings.Contains(strings.ToLower(c.Name), normalizedFilter)
}

// SeedContacts returns the built-in contacts used when nothing is stored yet.
func SeedContacts() []Contact {
	return []Contact{
		{ID: "id-1", Name: "Rosie Simpson", Number: "459-12-56"},
		{ID: "id-2", Name: "Hermione Kline", Number: "443-89-12"},
		{ID: "id-3", Name: "Eden Clements", Number: "645-17-79"},
		{ID: "id-4", Name: "Annie Copeland", Number: "227-91-26"},
	}
}
