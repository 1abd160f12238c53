package contacts

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RowAction identifies an entry of the row action menu.
type RowAction int

const (
	ActionViewDetails RowAction = iota
	ActionEditContact
	ActionDelete
)

var rowActionLabels = [...]string{"View Details", "Edit Contact", "Delete"}

// String returns the menu label for a.
func (a RowAction) String() string {
	if a < 0 || int(a) >= len(rowActionLabels) {
		return "unknown"
	}
	return rowActionLabels[a]
}

// menuOutcome reports what a key press did to the menu.
type menuOutcome int

const (
	menuOpen menuOutcome = iota
	menuChosen
	menuClosed
)

// actionMenu is the dropdown opened on a table row.
type actionMenu struct {
	contactID   string
	contactName string
	cursor      int
	keys        menuKeys
}

func newActionMenu(id, name string) actionMenu {
	return actionMenu{contactID: id, contactName: name, keys: MenuKeyMap()}
}

// Update moves the menu cursor or reports a choice.
func (am actionMenu) Update(msg tea.KeyMsg) (actionMenu, menuOutcome) {
	n := len(rowActionLabels)
	switch {
	case key.Matches(msg, am.keys.Up):
		am.cursor = (am.cursor + n - 1) % n
	case key.Matches(msg, am.keys.Down):
		am.cursor = (am.cursor + 1) % n
	case key.Matches(msg, am.keys.Choose):
		return am, menuChosen
	case key.Matches(msg, am.keys.Close):
		return am, menuClosed
	}
	return am, menuOpen
}

// Selected returns the action under the cursor.
func (am actionMenu) Selected() RowAction {
	return RowAction(am.cursor)
}

// View renders the menu entries. Delete is drawn in the danger color.
func (am actionMenu) View() string {
	var b strings.Builder
	b.WriteString(mutedText.Render(am.contactName))
	for i, label := range rowActionLabels {
		b.WriteByte('\n')
		if i == am.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		if RowAction(i) == ActionDelete {
			label = errorText.Render(label)
		}
		b.WriteString(label)
	}
	return MenuBorder().Render(b.String())
}
