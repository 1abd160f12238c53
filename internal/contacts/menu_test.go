package contacts

import "testing"

func TestActionMenu_Entries(t *testing.T) {
	view := newActionMenu("c-1", "Alice").View()
	for _, want := range []string{"Alice", "View Details", "Edit Contact", "Delete"} {
		if !containsPlainText(view, want) {
			t.Errorf("menu View() missing %q", want)
		}
	}
}

func TestActionMenu_NavigationWraps(t *testing.T) {
	am := newActionMenu("c-1", "Alice")

	am, _ = am.Update(keyUp)
	if am.Selected() != ActionDelete {
		t.Errorf("up from first: %v, want Delete", am.Selected())
	}
	am, _ = am.Update(keyDown)
	if am.Selected() != ActionViewDetails {
		t.Errorf("down from last: %v, want View Details", am.Selected())
	}
}

func TestActionMenu_ChooseAndClose(t *testing.T) {
	am := newActionMenu("c-1", "Alice")
	am, _ = am.Update(keyDown)

	_, outcome := am.Update(keyEnter)
	if outcome != menuChosen {
		t.Errorf("enter outcome = %d, want menuChosen", outcome)
	}
	if am.Selected() != ActionEditContact {
		t.Errorf("Selected() = %v, want Edit Contact", am.Selected())
	}

	_, outcome = am.Update(keyEsc)
	if outcome != menuClosed {
		t.Errorf("esc outcome = %d, want menuClosed", outcome)
	}
}

func TestRowAction_String(t *testing.T) {
	if got := RowAction(42).String(); got != "unknown" {
		t.Errorf("RowAction(42) = %q, want unknown", got)
	}
}
