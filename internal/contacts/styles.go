package contacts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contactdesk/internal/contact"
)

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	dangerColor = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}

	mutedText  = lipgloss.NewStyle().Foreground(mutedColor)
	errorText  = lipgloss.NewStyle().Foreground(dangerColor)
	titleText  = lipgloss.NewStyle().Bold(true)
	accentText = lipgloss.NewStyle().Foreground(accentColor)
	linkText   = lipgloss.NewStyle().Foreground(accentColor).Underline(true)
	cursorRow  = lipgloss.NewStyle().Bold(true)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	headerCell = lipgloss.NewStyle().Padding(0, 1).Bold(true)
)

// badgeVariant selects the emphasis of a status badge.
type badgeVariant int

const (
	badgeDefault   badgeVariant = iota // Emphasized, used for active contacts.
	badgeSecondary                     // De-emphasized, used for everything else.
)

// statusVariant maps a contact status to its badge emphasis.
func statusVariant(s contact.Status) badgeVariant {
	if s == contact.StatusActive {
		return badgeDefault
	}
	return badgeSecondary
}

var badgeStyles = [...]lipgloss.Style{
	badgeDefault: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "0"}).
		Background(accentColor),
	badgeSecondary: lipgloss.NewStyle().
		Foreground(mutedColor),
}

// StatusBadge returns the styled status label ("unknown" when unset).
func StatusBadge(s contact.Status) string {
	return badgeStyles[statusVariant(s)].Render(s.Label())
}

// DialogBorder returns the style framing the Add Contact dialog.
func DialogBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 2)
}

// MenuBorder returns the style framing the row action menu.
func MenuBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}).
		Padding(0, 1)
}
