package contacts

import (
	"fmt"
	"strings"

	"github.com/smileynet/contactdesk/internal/contact"
)

// RenderDetail renders the read-only detail card for c.
func RenderDetail(c contact.Contact) string {
	last := c.LastContact
	if last == "" {
		last = "N/A"
	}

	var b strings.Builder
	b.WriteString(titleText.Render(c.Name))
	if c.Title != "" {
		b.WriteString("  " + mutedText.Render(c.Title))
	}
	b.WriteString("\n\n")
	for _, f := range []struct{ label, value string }{
		{"Account", c.Account},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Last Contact", last},
		{"Owner", c.Owner},
	} {
		fmt.Fprintf(&b, "  %-13s %s\n", f.label, f.value)
	}
	fmt.Fprintf(&b, "  %-13s %s", "Status", StatusBadge(c.Status))
	return DialogBorder().Render(b.String())
}
