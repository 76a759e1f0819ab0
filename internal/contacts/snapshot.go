package contacts

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lazyvibe/phonebook/internal/model"
)

// ErrMalformedSnapshot is returned when the stored value cannot be parsed
// into a list of contacts.
var ErrMalformedSnapshot = errors.New("malformed contacts snapshot")

// EncodeSnapshot serializes contacts in display order.
func EncodeSnapshot(contacts []model.Contact) (string, error) {
	if contacts == nil {
		contacts = []model.Contact{}
	}
	data, err := json.Marshal(contacts)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeSnapshot parses a snapshot written by EncodeSnapshot.
// A JSON null yields an empty list.
func DecodeSnapshot(snapshot string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := json.Unmarshal([]byte(snapshot), &contacts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	return contacts, nil
}
