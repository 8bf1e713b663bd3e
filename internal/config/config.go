// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/rango/internal/calendar"
)

// Config holds the application configuration.
type Config struct {
	Picker  PickerConfig  `toml:"picker"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// PickerConfig holds the selectable universe and locale settings.
type PickerConfig struct {
	WeekStart       string   `toml:"week_start"`       // e.g., "monday"
	FirstDate       string   `toml:"first_date"`       // earliest selectable day, YYYY-MM-DD
	LastDate        string   `toml:"last_date"`        // latest selectable day, YYYY-MM-DD
	BlockedWeekdays []string `toml:"blocked_weekdays"` // e.g., ["saturday", "sunday"]
	BlockedDates    []string `toml:"blocked_dates"`    // individual non-selectable days
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration: the current and next
// year selectable, weeks starting on Monday.
func Default() *Config {
	year := time.Now().Year()
	return &Config{
		Picker: PickerConfig{
			WeekStart: "monday",
			FirstDate: fmt.Sprintf("%04d-01-01", year),
			LastDate:  fmt.Sprintf("%04d-12-31", year+1),
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rango.db"
	}
	return filepath.Join(home, ".local", "share", "rango", "rango.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rango", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RANGO_WEEK_START"); v != "" {
		cfg.Picker.WeekStart = v
	}
	if v := os.Getenv("RANGO_FIRST_DATE"); v != "" {
		cfg.Picker.FirstDate = v
	}
	if v := os.Getenv("RANGO_LAST_DATE"); v != "" {
		cfg.Picker.LastDate = v
	}
	if v := os.Getenv("RANGO_BLOCKED_WEEKDAYS"); v != "" {
		cfg.Picker.BlockedWeekdays = strings.Split(v, ",")
	}
	if v := os.Getenv("RANGO_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("RANGO_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
// Bound or date errors here are configuration mistakes and reject
// loading outright rather than surfacing later as a broken picker.
func (c *Config) Validate() error {
	if _, err := calendar.ParseWeekStart(c.Picker.WeekStart); err != nil {
		return fmt.Errorf("week_start %q: %w", c.Picker.WeekStart, err)
	}

	first, err := calendar.Parse(c.Picker.FirstDate)
	if err != nil {
		return fmt.Errorf("first_date %q: %w", c.Picker.FirstDate, err)
	}
	last, err := calendar.Parse(c.Picker.LastDate)
	if err != nil {
		return fmt.Errorf("last_date %q: %w", c.Picker.LastDate, err)
	}
	if first.After(last) {
		return errors.New("first_date must be on or before last_date")
	}

	if len(c.Picker.BlockedWeekdays) >= 7 {
		return errors.New("blocked_weekdays cannot block every day of the week")
	}
	for _, day := range c.Picker.BlockedWeekdays {
		if _, err := calendar.ParseWeekday(day); err != nil {
			return fmt.Errorf("blocked weekday %q: %w", day, err)
		}
	}
	for _, date := range c.Picker.BlockedDates {
		if _, err := calendar.Parse(date); err != nil {
			return fmt.Errorf("blocked date %q: %w", date, err)
		}
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// WeekStart returns the parsed week-start convention.
// Call after Validate.
func (c *Config) WeekStart() calendar.WeekStart {
	ws, _ := calendar.ParseWeekStart(c.Picker.WeekStart)
	return ws
}

// Dates returns the parsed first and last selectable dates.
// Call after Validate.
func (c *Config) Dates() (first, last calendar.Date) {
	first, _ = calendar.Parse(c.Picker.FirstDate)
	last, _ = calendar.Parse(c.Picker.LastDate)
	return first, last
}

// BlockedWeekdaySet returns the blocked weekdays as a lookup set.
func (c *Config) BlockedWeekdaySet() map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(c.Picker.BlockedWeekdays))
	for _, day := range c.Picker.BlockedWeekdays {
		if wd, err := calendar.ParseWeekday(day); err == nil {
			set[wd] = true
		}
	}
	return set
}

// BlockedDateSet returns the blocked dates as a lookup set.
func (c *Config) BlockedDateSet() map[calendar.Date]bool {
	set := make(map[calendar.Date]bool, len(c.Picker.BlockedDates))
	for _, date := range c.Picker.BlockedDates {
		if d, err := calendar.Parse(date); err == nil {
			set[d] = true
		}
	}
	return set
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
