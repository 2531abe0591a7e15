package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("tui: unknown theme")

// Theme defines the colors used to draw the board and status line.
type Theme struct {
	Name    string
	Alive   lipgloss.Color
	Dead    lipgloss.Color
	Text    lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Alive:   lipgloss.Color("#ffffff"),
		Dead:    lipgloss.Color("#444444"),
		Text:    lipgloss.Color("#dddddd"),
		Accent:  lipgloss.Color("#00cccc"),
		Muted:   lipgloss.Color("#666688"),
		Running: lipgloss.Color("#00ff88"),
		Paused:  lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Alive:   lipgloss.Color("#00ff00"), // Green phosphor
		Dead:    lipgloss.Color("#005500"),
		Text:    lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Muted:   lipgloss.Color("#005500"),
		Running: lipgloss.Color("#88ff88"),
		Paused:  lipgloss.Color("#ffff00"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Alive:   lipgloss.Color("#ff00ff"),
		Dead:    lipgloss.Color("#1a001a"),
		Text:    lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#00ffff"),
		Muted:   lipgloss.Color("#666666"),
		Running: lipgloss.Color("#00ff00"),
		Paused:  lipgloss.Color("#ff8800"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Alive:   lipgloss.Color("#ffd700"),
		Dead:    lipgloss.Color("#0077be"),
		Text:    lipgloss.Color("#e0f0ff"),
		Accent:  lipgloss.Color("#00a8cc"),
		Muted:   lipgloss.Color("#4488aa"),
		Running: lipgloss.Color("#00ff88"),
		Paused:  lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Alive:   lipgloss.Color("#feca57"),
		Dead:    lipgloss.Color("#8b6b8c"),
		Text:    lipgloss.Color("#fff5f5"),
		Accent:  lipgloss.Color("#ff6b6b"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Running: lipgloss.Color("#5fd068"),
		Paused:  lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeCyberpunk,
		ThemeOcean,
		ThemeSunset,
	}
)

// LookupTheme returns the named theme or ErrUnknownTheme.
func LookupTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(ThemeNames(), ", "))
}

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	if t, err := LookupTheme(name); err == nil {
		return t
	}
	return ThemeClassic
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
