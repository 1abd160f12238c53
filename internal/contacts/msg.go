// Package contacts implements the contact list screen: a searchable table of
// contacts with a row action menu and a modal form for adding contacts.
package contacts

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactdesk/internal/contact"
)

// Mode represents which part of the screen receives key input.
type Mode int

const (
	ModeBrowse Mode = iota // Moving through the table.
	ModeSearch             // Typing into the search box.
	ModeAdd                // Add Contact dialog is open.
	ModeMenu               // Row action menu is open.
)

// Preset is a named contact filter offered in the header selector.
type Preset int

const (
	PresetAll Preset = iota
	PresetMine
	PresetNewLastWeek
)

var presetLabels = [...]string{"All Contacts", "My Contacts", "New Last Week"}

// String returns the selector label for p.
func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetLabels) {
		return presetLabels[PresetAll]
	}
	return presetLabels[p]
}

// next returns the preset after p, wrapping to the first.
func (p Preset) next() Preset {
	return Preset((int(p) + 1) % len(presetLabels))
}

// Lead is an externally selected lead whose contact name seeds new drafts.
type Lead struct {
	Contact string
	Name    string
}

// SeedName returns the lead's contact name, falling back to its name.
func (l Lead) SeedName() string {
	if l.Contact != "" {
		return l.Contact
	}
	return l.Name
}

// --- Consumer-side interfaces ---

// ContactStore reads and appends contacts.
type ContactStore interface {
	Contacts() []contact.Contact
	Add(c contact.Contact) contact.Contact
}

// Router navigates to the view addressed by path.
type Router interface {
	Navigate(path string) tea.Cmd
}
