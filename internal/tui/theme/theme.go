// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // In-range day cells
	BgSelection string `toml:"bg_selection"` // Cursor cell
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Disabled days, fillers
	Accent      string `toml:"accent"`       // Title, range endpoints, borders
	Today       string `toml:"today"`        // Today's day number
	Warning     string `toml:"warning"`      // Error/status emphasis

	// Optional overrides
	TextOnAccent string `toml:"text_on_accent"`
	Chevron      string `toml:"chevron"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName()
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// DefaultName picks a default theme from the terminal background:
// latte on light terminals, frappe otherwise.
func DefaultName() string {
	if !termenv.HasDarkBackground() {
		return "latte"
	}
	return "frappe"
}

func (t *Theme) applyDefaults() {
	if t.TextOnAccent == "" {
		t.TextOnAccent = t.Bg
	}
	if t.Chevron == "" {
		t.Chevron = t.Accent
	}
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
