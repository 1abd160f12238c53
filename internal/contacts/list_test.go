package contacts

import (
	"testing"

	"github.com/smileynet/contactdesk/internal/contact"
)

func TestRowCells_DisplayIndexAndDefaults(t *testing.T) {
	// Given: a contact without last-contact or status
	c := contact.Contact{ID: "c-9", Name: "Nia", Email: "nia@x.io", Phone: "1", Account: "X"}

	// When: its cells are built at display position 2
	cells := rowCells(c, 2, false, false)

	// Then: the index is 1-based, not the ID, and blanks use placeholders
	if cells[colIndex] != "3" {
		t.Errorf("index cell = %q, want %q", cells[colIndex], "3")
	}
	if cells[colLastContact] != "N/A" {
		t.Errorf("last contact cell = %q, want N/A", cells[colLastContact])
	}
	if got := stripANSI(cells[colStatus]); got != "unknown" {
		t.Errorf("status cell = %q, want unknown", got)
	}
	if len(cells) != len(columnHeaders) {
		t.Errorf("len(cells) = %d, want %d", len(cells), len(columnHeaders))
	}
}

func TestRowCells_CheckboxAndCursor(t *testing.T) {
	tests := []struct {
		name             string
		cursor, selected bool
		want             string
	}{
		{"plain", false, false, "  [ ]"},
		{"selected", false, true, "  [x]"},
		{"cursor", true, false, CursorMarker + "[ ]"},
		{"cursor and selected", true, true, CursorMarker + "[x]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := rowCells(contact.Contact{}, 0, tt.cursor, tt.selected)
			if cells[colCheck] != tt.want {
				t.Errorf("check cell = %q, want %q", cells[colCheck], tt.want)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name                          string
		total, cursor, offset, height int
		wantStart, wantEnd            int
	}{
		{"unsized shows all", 10, 5, 0, 0, 0, 10},
		{"fits", 3, 2, 0, 5, 0, 3},
		{"cursor below window scrolls", 10, 7, 0, 3, 5, 8},
		{"cursor above window scrolls", 10, 1, 4, 3, 1, 4},
		{"offset clamps to end", 10, 9, 9, 3, 7, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := window(tt.total, tt.cursor, tt.offset, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("window() = [%d,%d), want [%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
