package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/config"
	"github.com/javiermolinar/rango/internal/db"
	"github.com/javiermolinar/rango/internal/pick"
	"github.com/javiermolinar/rango/internal/selection"
	"github.com/javiermolinar/rango/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   pick.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and
// config. A nil repository is opened lazily by the commands that need
// one.
func NewApp(repo pick.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "rango",
		Short: "A terminal date-range picker",
		Long: `Rango is a terminal date-range picker.

Running it without a subcommand opens an interactive calendar where
two taps select an inclusive date range. Confirmed ranges are kept in
a local history for later lookup.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runInteractive()
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to rango-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.pickCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.clearCmd())

	return a
}

// runInteractive opens the TUI picker and prints the confirmed range.
// History persistence is best effort: a failing database never blocks
// the picker itself.
func (a *App) runInteractive() error {
	if err := a.ensureRepo(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
	}

	p, err := pickerFromConfig(a.config)
	if err != nil {
		return err
	}

	dates, err := tui.RunWithDebug(a.repo, a.config, p, a.debug)
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	switch len(dates) {
	case 0:
		fmt.Println("No dates selected.")
	case 1:
		fmt.Println(dates[0])
	default:
		fmt.Printf("%s .. %s\n", dates[0], dates[len(dates)-1])
	}
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("rango %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the history database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	repo, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return nil
}

// Close releases the history database, if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// pickerFromConfig builds the selection core from the configured
// bounds and blocked days.
func pickerFromConfig(cfg *config.Config, opts ...selection.PickerOption) (*selection.Picker, error) {
	first, last := cfg.Dates()
	bounds, err := selection.NewBounds(first, last)
	if err != nil {
		return nil, fmt.Errorf("picker bounds: %w", err)
	}

	if f := dayFilter(cfg); f != nil {
		opts = append(opts, selection.WithFilter(f))
	}
	return selection.NewPicker(bounds, opts...)
}

// dayFilter returns the configured blocked-day filter, or nil when
// nothing is blocked.
func dayFilter(cfg *config.Config) selection.DayFilter {
	weekdays := cfg.BlockedWeekdaySet()
	dates := cfg.BlockedDateSet()
	if len(weekdays) == 0 && len(dates) == 0 {
		return nil
	}

	return func(d calendar.Date) bool {
		if dates[d] {
			return false
		}
		return !weekdays[d.Time(time.UTC).Weekday()]
	}
}
