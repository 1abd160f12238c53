package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/smileynet/contactdesk"
	"github.com/smileynet/contactdesk/internal/app"
	"github.com/smileynet/contactdesk/internal/config"
	"github.com/smileynet/contactdesk/internal/contact"
	"github.com/smileynet/contactdesk/internal/contacts"
	"github.com/smileynet/contactdesk/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// localDir holds project-level config, the log file and an optional
// contacts.yaml that shadows the embedded demo list.
const localDir = ".contactdesk"

// CLI is the top-level command structure for contactdesk.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Browse  BrowseCmd        `cmd:"" help:"Open the interactive contact list."`
	List    ListCmd          `cmd:"" help:"Print contacts as a plain table."`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contactdesk/config.yaml"),
		filepath.Join(localDir, "config.yaml"),
	)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// newStore returns a store holding the contacts of seedPath, or the demo
// list when seedPath is empty.
func newStore(seedPath string) (*contact.MemoryStore, error) {
	var (
		seed []contact.Contact
		err  error
	)
	if seedPath != "" {
		seed, err = contact.LoadSeed(os.DirFS(filepath.Dir(seedPath)), filepath.Base(seedPath))
	} else {
		seed, err = contact.LoadSeed(contactdesk.OverlayFS(localDir, contactdesk.Seed), contactdesk.SeedFile)
	}
	if err != nil {
		return nil, err
	}
	store := contact.NewMemoryStore()
	contact.Populate(store, seed)
	return store, nil
}

// --- Browse command ---

// BrowseCmd opens the contact list TUI.
type BrowseCmd struct {
	Seed        string `help:"YAML seed file to load instead of the demo list."`
	Lead        string `help:"Name of the selected lead."`
	LeadContact string `help:"Contact name of the selected lead. Seeds the name of new contacts."`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the contact list TUI.
func (b *BrowseCmd) Run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	if b.Seed != "" {
		cfg.Store.Seed = b.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := newStore(cfg.Store.Seed)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	logger.Info("contacts loaded", zap.Int("count", store.Len()), zap.String("seed", cfg.Store.Seed))

	list := contacts.NewModel(
		contacts.WithStore(store),
		contacts.WithSelectedLead(contacts.Lead{Name: b.Lead, Contact: b.LeadContact}),
		contacts.WithOwner(cfg.UI.Owner),
		contacts.WithLogger(logger),
	)

	prog := tea.NewProgram(app.New(list, store, logger), tea.WithAltScreen())
	return b.run(true, prog)
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// --- List command ---

// ListCmd prints the contact list for pipes and scripts.
type ListCmd struct {
	Seed    string `help:"YAML seed file to load instead of the demo list."`
	Search  string `help:"Only list contacts whose name, email or account contains this text."`
	NoColor bool   `help:"Disable colored status output." default:"false"`
}

// Run loads the contacts and writes the table to stdout.
func (l *ListCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if l.Seed != "" {
		cfg.Store.Seed = l.Seed
	}

	store, err := newStore(cfg.Store.Seed)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if l.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return l.run(os.Stdout, store.Contacts())
}

// run writes the contacts matching l.Search to w.
func (l *ListCmd) run(w io.Writer, all []contact.Contact) error {
	visible := contact.Filter(all, l.Search)
	if len(visible) == 0 {
		if l.Search != "" {
			_, err := fmt.Fprintf(w, "No contacts match %q\n", l.Search)
			return err
		}
		_, err := fmt.Fprintln(w, "No contacts")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "#\tNAME\tEMAIL\tPHONE\tACCOUNT\tLAST CONTACT\tSTATUS")
	for i, c := range visible {
		last := c.LastContact
		if last == "" {
			last = "N/A"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, c.Name, c.Email, c.Phone, c.Account, last, statusColor(c.Status))
	}
	return tw.Flush()
}

// statusColor renders the status label, green for active contacts.
func statusColor(s contact.Status) string {
	switch s {
	case contact.StatusActive:
		return color.New(color.FgGreen).Sprint(s.Label())
	case contact.StatusInactive:
		return color.New(color.FgYellow).Sprint(s.Label())
	default:
		return color.New(color.Faint).Sprint(s.Label())
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contactdesk"),
		kong.Description("Browse and add CRM contacts from the terminal."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
