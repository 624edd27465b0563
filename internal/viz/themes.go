package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour scheme of the live view.
type Theme struct {
	Name   string
	Bodies lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Warn   lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Bodies: lipgloss.Color("#00ffff"),
		Accent: lipgloss.Color("#ff00ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Warn:   lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Bodies: lipgloss.Color("#00ff00"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Warn:   lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Bodies: lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Warn:   lipgloss.Color("#ffaa00"),
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

var namedColors = map[string]lipgloss.Color{
	"red":     lipgloss.Color("#ff4444"),
	"green":   lipgloss.Color("#44ff44"),
	"blue":    lipgloss.Color("#4488ff"),
	"yellow":  lipgloss.Color("#ffdd00"),
	"white":   lipgloss.Color("#ffffff"),
	"orange":  lipgloss.Color("#ff8800"),
	"purple":  lipgloss.Color("#aa44ff"),
	"cyan":    lipgloss.Color("#00ffff"),
	"magenta": lipgloss.Color("#ff00ff"),
}

// GroupColor maps a group colour name to a terminal colour. Hex codes
// and ANSI numbers pass through; anything else falls back to the theme.
func GroupColor(name string) lipgloss.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[name]; ok {
		return c
	}
	if name == "" {
		return CurrentTheme.Bodies
	}
	return lipgloss.Color(name)
}
