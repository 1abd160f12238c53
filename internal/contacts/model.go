package contacts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/smileynet/contactdesk/internal/contact"
	"github.com/smileynet/contactdesk/internal/router"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// headerHeight is the number of lines used by the title and search rows.
const headerHeight = 2

// defaultOwner is written into drafts when no owner is configured.
const defaultOwner = "Current User"

// Model is the Bubble Tea model for the contact list screen.
type Model struct {
	store          ContactStore
	router         Router
	onContactClick func(contact.Contact) tea.Cmd
	lead           Lead
	owner          string
	logger         *zap.Logger

	mode     Mode
	preset   Preset
	search   textinput.Model
	form     addForm
	menu     actionMenu
	cursor   int
	offset   int
	selected map[string]bool

	width  int
	height int
	help   help.Model
	keys   browseKeys
	skeys  searchKeys
}

// Option configures a Model.
type Option func(*Model)

// WithStore sets the contact store read and appended by the screen.
func WithStore(s ContactStore) Option {
	return func(m *Model) { m.store = s }
}

// WithRouter sets the router used when a contact is opened without a click handler.
func WithRouter(r Router) Option {
	return func(m *Model) { m.router = r }
}

// WithContactClick sets a handler invoked with the contact opened from the
// table. When set, it replaces navigation.
func WithContactClick(fn func(contact.Contact) tea.Cmd) Option {
	return func(m *Model) { m.onContactClick = fn }
}

// WithSelectedLead sets the lead that seeds the name of new drafts.
func WithSelectedLead(l Lead) Option {
	return func(m *Model) { m.lead = l }
}

// WithOwner sets the owner placeholder written into new drafts.
func WithOwner(owner string) Option {
	return func(m *Model) {
		if owner != "" {
			m.owner = owner
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel creates a contact list Model in browse mode.
func NewModel(opts ...Option) Model {
	search := textinput.New()
	search.Placeholder = "Search contacts..."
	search.Prompt = "/ "
	search.Width = 30

	m := Model{
		store:    contact.NewMemoryStore(),
		router:   router.Emitter{},
		owner:    defaultOwner,
		logger:   zap.NewNop(),
		mode:     ModeBrowse,
		preset:   PresetAll,
		search:   search,
		selected: make(map[string]bool),
		help:     help.New(),
		keys:     BrowseKeyMap(),
		skeys:    SearchKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.form = newAddForm(m.owner)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current input mode.
func (m Model) Mode() Mode { return m.mode }

// AddOpen reports whether the Add Contact dialog is showing.
func (m Model) AddOpen() bool { return m.mode == ModeAdd }

// Search returns the current search text.
func (m Model) Search() string { return m.search.Value() }

// Preset returns the selected filter preset.
func (m Model) Preset() Preset { return m.preset }

// Visible returns the contacts currently listed, in store order.
//
// TODO: narrow by preset once "My Contacts" is defined against Owner and
// LastContact carries a date that "New Last Week" can compare.
func (m Model) Visible() []contact.Contact {
	return contact.Filter(m.store.Contacts(), m.search.Value())
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeSearch:
			return m.handleSearchKey(msg)
		case ModeAdd:
			return m.updateForm(msg)
		case ModeMenu:
			return m.handleMenuKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}
	}

	// Cursor blink and other input-internal messages.
	switch m.mode {
	case ModeSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	case ModeAdd:
		return m.updateForm(msg)
	}
	return m, nil
}

// handleBrowseKey processes keys while moving through the table.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.Visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if len(visible) > 0 {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(visible) - 1
			}
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if len(visible) > 0 {
			m.cursor++
			if m.cursor >= len(visible) {
				m.cursor = 0
			}
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if c, ok := m.current(visible); ok {
			return m, m.openContact(c)
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if c, ok := m.current(visible); ok {
			if m.selected[c.ID] {
				delete(m.selected, c.ID)
			} else {
				m.selected[c.ID] = true
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.preset = m.preset.next()
		m.logger.Debug("filter preset selected", zap.String("preset", m.preset.String()))
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m.openAdd()

	case key.Matches(msg, m.keys.Actions):
		if c, ok := m.current(visible); ok {
			m.menu = newActionMenu(c.ID, c.Name)
			m.mode = ModeMenu
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey routes keys to the search box until it is dismissed.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.skeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.skeys.Done):
		m.search.Blur()
		m.mode = ModeBrowse
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.cursor = 0
		m.offset = 0
	}
	return m, cmd
}

// handleMenuKey drives the row action menu. Menu entries are placeholders:
// choosing one only closes the menu.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var outcome menuOutcome
	m.menu, outcome = m.menu.Update(msg)
	switch outcome {
	case menuChosen:
		m.logger.Debug("row action not implemented",
			zap.String("action", m.menu.Selected().String()),
			zap.String("id", m.menu.contactID))
		m.mode = ModeBrowse
	case menuClosed:
		m.mode = ModeBrowse
	}
	return m, nil
}

// openAdd shows the Add Contact dialog with a freshly reset draft.
func (m Model) openAdd() (tea.Model, tea.Cmd) {
	m.form.reset(m.lead.SeedName(), m.owner)
	m.mode = ModeAdd
	return m, textinput.Blink
}

// updateForm forwards msg to the dialog and acts on a submit or cancel.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		outcome formOutcome
		cmd     tea.Cmd
	)
	m.form, outcome, cmd = m.form.Update(msg)
	switch outcome {
	case formSubmitted:
		m.addContact(m.form.draft())
		m.mode = ModeBrowse
		return m, nil
	case formCancelled:
		m.mode = ModeBrowse
		return m, nil
	}
	return m, cmd
}

// addContact fills the LastContact and Status defaults and appends the
// contact to the store.
func (m Model) addContact(draft contact.Contact) {
	stored := m.store.Add(draft.WithDefaults())
	m.logger.Info("contact added",
		zap.String("id", stored.ID),
		zap.String("name", stored.Name),
		zap.String("account", stored.Account))
}

// openContact invokes the click handler, or navigates to the contact's
// detail route when none is set.
func (m Model) openContact(c contact.Contact) tea.Cmd {
	if m.onContactClick != nil {
		return m.onContactClick(c)
	}
	return m.router.Navigate(router.ContactPath(c.ID))
}

// current returns the contact under the cursor.
func (m Model) current(visible []contact.Contact) (contact.Contact, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return contact.Contact{}, false
	}
	return visible[m.cursor], true
}

// clampCursor keeps the cursor on a visible row and scrolls it into view.
func (m *Model) clampCursor() {
	n := len(m.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.offset, _ = window(n, m.cursor, m.offset, m.tableRows())
}

// tableRows returns how many data rows fit on screen, 0 when unsized.
func (m Model) tableRows() int {
	if m.height == 0 {
		return 0
	}
	h := m.height - headerHeight - tableChrome - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the header, table and help bar, or the centered dialog
// while adding a contact.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	helpView := m.help.View(HelpBindings(m.mode))

	if m.mode == ModeAdd {
		dialog := DialogBorder().Render(m.form.View())
		body := lipgloss.Place(m.width, m.height-helpBarHeight, lipgloss.Center, lipgloss.Center, dialog)
		return lipgloss.JoinVertical(lipgloss.Left, body, helpView)
	}

	visible := m.Visible()
	var body string
	if len(visible) == 0 {
		body = m.viewEmpty()
	} else {
		start, end := window(len(visible), m.cursor, m.offset, m.tableRows())
		body = m.viewTable(visible, start, end)
	}
	if m.mode == ModeMenu {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.menu.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), body, helpView)
}

// viewHeader renders the title row (title, preset, selection count) and the
// toolbar row (search box and buttons).
func (m Model) viewHeader() string {
	var title strings.Builder
	title.WriteString(titleText.Render("Contacts"))
	title.WriteString("  ")
	title.WriteString(accentText.Render("‹" + m.preset.String() + "›"))
	if n := len(m.selected); n > 0 {
		fmt.Fprintf(&title, "  %s", mutedText.Render(fmt.Sprintf("%d selected", n)))
	}

	toolbar := m.search.View() + "   " +
		mutedText.Render("Import   Actions") + "   " +
		accentText.Render("[n] New Contact")

	return title.String() + "\n" + toolbar
}
