// Package contact defines the contact record, its status enumeration, search
// filtering and the in-memory store that owns the contact collection.
package contact

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the lifecycle state of a contact.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Statuses lists the selectable statuses in display order.
var Statuses = []Status{StatusActive, StatusInactive}

// DefaultLastContact is stored when a contact is added without a last-contact label.
const DefaultLastContact = "Today"

// ErrInvalidStatus indicates a status outside the active/inactive enumeration.
var ErrInvalidStatus = errors.New("contact: invalid status")

// ParseStatus converts s into a Status. Matching is case-insensitive.
// The empty string is accepted and yields the empty Status, which
// renders as unknown.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case string(StatusActive):
		return StatusActive, nil
	case string(StatusInactive):
		return StatusInactive, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Label returns the displayed status text, "unknown" when unset.
func (s Status) Label() string {
	if s == "" {
		return "unknown"
	}
	return string(s)
}

// Contact is a person with account and contact-detail fields.
type Contact struct {
	ID          string
	Name        string
	Title       string
	Account     string
	Email       string
	Phone       string
	LastContact string
	Status      Status
	Owner       string
}

// WithDefaults returns c with LastContact and Status filled in when blank.
func (c Contact) WithDefaults() Contact {
	if c.LastContact == "" {
		c.LastContact = DefaultLastContact
	}
	if c.Status == "" {
		c.Status = StatusActive
	}
	return c
}

// Filter returns the contacts whose name, email or account contains search,
// compared case-insensitively. Order is preserved. An empty search returns
// every contact.
func Filter(contacts []Contact, search string) []Contact {
	needle := strings.ToLower(search)
	out := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if needle == "" || c.matches(needle) {
			out = append(out, c)
		}
	}
	return out
}

func (c Contact) matches(needle string) bool {
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle) ||
		strings.Contains(strings.ToLower(c.Account), needle)
}
