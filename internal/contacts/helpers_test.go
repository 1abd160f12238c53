package contacts

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactdesk/internal/contact"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// sequentialIDs returns an ID generator yielding c-1, c-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("c-%d", n)
	}
}

// newTestStore returns a store holding the given contacts with IDs c-1, c-2, ...
func newTestStore(seed ...contact.Contact) *contact.MemoryStore {
	s := contact.NewMemoryStore(contact.WithIDFunc(sequentialIDs()))
	contact.Populate(s, seed)
	return s
}

// twoContacts returns the Alice/Bob pair used across tests.
func twoContacts() []contact.Contact {
	return []contact.Contact{
		{Name: "Alice Smith", Email: "alice@acme.com", Account: "Acme", Phone: "555-0100", Status: contact.StatusActive},
		{Name: "Bob Jones", Email: "bob@globex.com", Account: "Globex", Phone: "555-0199", Status: contact.StatusInactive},
	}
}

// newSizedModel returns a Model that has received a window size.
func newSizedModel(opts ...Option) Model {
	m := NewModel(opts...)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return updated.(Model)
}

// send applies msgs in order and returns the resulting model.
// Commands are discarded.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// runes builds a key message for a typed string.
func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends s one rune at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
)

// fillForm types values into the text fields in order, tabbing between them,
// and leaves focus on the status selector.
func fillForm(t *testing.T, m Model, values ...string) Model {
	t.Helper()
	for _, v := range values {
		m = typeText(t, m, v)
		m = send(t, m, keyTab)
	}
	return m
}
