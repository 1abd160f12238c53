package contact

import (
	"slices"

	"github.com/google/uuid"
)

// MemoryStore holds contacts in insertion order.
// It is not safe for concurrent use; confine it to a single goroutine
// (e.g., the Bubble Tea update loop).
type MemoryStore struct {
	contacts []Contact
	newID    func() string
}

// StoreOption configures a MemoryStore.
type StoreOption func(*MemoryStore)

// WithIDFunc replaces the UUID generator used to assign contact IDs.
func WithIDFunc(fn func() string) StoreOption {
	return func(s *MemoryStore) {
		s.newID = fn
	}
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Contacts returns a copy of the collection in insertion order.
func (s *MemoryStore) Contacts() []Contact {
	return slices.Clone(s.contacts)
}

// Add appends c under a freshly assigned ID and returns the stored record.
// Any ID already set on c is replaced.
func (s *MemoryStore) Add(c Contact) Contact {
	c.ID = s.newID()
	s.contacts = append(s.contacts, c)
	return c
}

// Get returns the contact with the given ID.
func (s *MemoryStore) Get(id string) (Contact, bool) {
	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// Len returns the number of stored contacts.
func (s *MemoryStore) Len() int {
	return len(s.contacts)
}
