// Package app hosts the contact list screen and the read-only detail screen
// reached through router navigation.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/smileynet/contactdesk/internal/contact"
	"github.com/smileynet/contactdesk/internal/contacts"
	"github.com/smileynet/contactdesk/internal/router"
)

// Lookup finds a contact by ID.
type Lookup interface {
	Get(id string) (contact.Contact, bool)
}

// screen identifies which screen is showing.
type screen int

const (
	screenList screen = iota
	screenDetail
)

type detailKeys struct {
	Back key.Binding
	Quit key.Binding
}

func (k detailKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Back, k.Quit} }
func (k detailKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func newDetailKeys() detailKeys {
	return detailKeys{
		Back: key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model routes between the list screen and a contact's detail screen.
type Model struct {
	list   contacts.Model
	lookup Lookup
	logger *zap.Logger

	screen   screen
	detail   contact.Contact
	notFound string

	width  int
	height int
	help   help.Model
	keys   detailKeys
}

// New wraps list. lookup resolves the IDs carried by navigation paths.
func New(list contacts.Model, lookup Lookup, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		list:   list,
		lookup: lookup,
		logger: logger,
		help:   help.New(),
		keys:   newDetailKeys(),
	}
}

// Init returns the list's initial command.
func (m Model) Init() tea.Cmd {
	return m.list.Init()
}

// List returns the wrapped list screen.
func (m Model) List() contacts.Model { return m.list }

// ShowingDetail reports whether the detail screen is active.
func (m Model) ShowingDetail() bool { return m.screen == screenDetail }

// Detail returns the contact on the detail screen.
func (m Model) Detail() contact.Contact { return m.detail }

// Update handles navigation, detail keys, and forwards the rest to the list.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.forward(msg)

	case router.NavigateMsg:
		return m.navigate(msg.Path), nil

	case tea.KeyMsg:
		if m.screen == screenDetail {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Back):
				m.screen = screenList
				m.notFound = ""
			}
			return m, nil
		}
	}
	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.list.Update(msg)
	m.list = updated.(contacts.Model)
	return m, cmd
}

// navigate switches to the detail screen for path. Unroutable paths are
// logged and ignored.
func (m Model) navigate(path string) Model {
	route, err := router.Resolve(path)
	if err != nil {
		m.logger.Warn("navigation ignored", zap.String("path", path), zap.Error(err))
		return m
	}
	c, ok := m.lookup.Get(route.ContactID)
	m.screen = screenDetail
	if !ok {
		m.detail = contact.Contact{}
		m.notFound = route.ContactID
		m.logger.Warn("contact not found", zap.String("id", route.ContactID))
		return m
	}
	m.detail = c
	m.notFound = ""
	m.logger.Debug("contact opened", zap.String("id", c.ID))
	return m
}

// View renders the active screen.
func (m Model) View() string {
	if m.screen == screenList {
		return m.list.View()
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var body string
	if m.notFound != "" {
		body = fmt.Sprintf("Contact %q not found", m.notFound)
	} else {
		body = contacts.RenderDetail(m.detail)
	}
	helpView := m.help.View(m.keys)
	placed := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body)
	return lipgloss.JoinVertical(lipgloss.Left, placed, helpView)
}
