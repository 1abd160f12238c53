package contacts

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/smileynet/contactdesk/internal/contact"
)

// CursorMarker is the prefix shown on the row under the cursor.
const CursorMarker = "▸ "

// tableChrome is the number of lines the table spends on borders and its header.
const tableChrome = 4

// columnHeaders are the table headings in display order.
var columnHeaders = []string{"", "#", "Name", "Email", "Phone", "Account", "Last Contact", "Status"}

const (
	colCheck = iota
	colIndex
	colName
	colEmail
	colPhone
	colAccount
	colLastContact
	colStatus
)

// rowCells returns the table cells for c shown at display position idx.
func rowCells(c contact.Contact, idx int, cursor, selected bool) []string {
	check := "[ ]"
	if selected {
		check = "[x]"
	}
	if cursor {
		check = CursorMarker + check
	} else {
		check = "  " + check
	}
	last := c.LastContact
	if last == "" {
		last = "N/A"
	}
	return []string{
		check,
		strconv.Itoa(idx + 1),
		c.Name,
		c.Email,
		c.Phone,
		c.Account,
		last,
		StatusBadge(c.Status),
	}
}

// window returns the [start, end) slice of rows that fits in height lines
// while keeping cursor visible. height <= 0 shows every row.
func window(total, cursor, offset, height int) (start, end int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	if offset+height > total {
		offset = total - height
	}
	return offset, offset + height
}

// viewTable renders rows [start, end) of visible with the cursor row emphasized.
func (m Model) viewTable(visible []contact.Contact, start, end int) string {
	cursorLine := m.cursor - start
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedText).
		Headers(columnHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCell
			case row == cursorLine && col == colName:
				return cellStyle.Inherit(linkText).Inherit(cursorRow)
			case row == cursorLine:
				return cellStyle.Inherit(cursorRow)
			case col == colIndex:
				return cellStyle.Inherit(mutedText)
			case col == colName:
				return cellStyle.Inherit(accentText)
			case col == colAccount:
				return cellStyle.Bold(true)
			default:
				return cellStyle
			}
		})

	for i := start; i < end; i++ {
		c := visible[i]
		t.Row(rowCells(c, i, i == m.cursor, m.selected[c.ID])...)
	}
	return t.Render()
}

// viewEmpty renders the placeholder shown when no rows are visible.
func (m Model) viewEmpty() string {
	if q := m.search.Value(); q != "" {
		return mutedText.Render(fmt.Sprintf("No contacts match %q", q))
	}
	return mutedText.Render("No contacts — press n to add one")
}
