package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the side panel.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}

var Themes = []Theme{
	{Name: "cyberpunk", Primary: "#ff00ff", Accent: "#00ffff", Text: "#ffffff", Muted: "#666666", Success: "#00ff00", Warning: "#ff8800"},
	{Name: "retro", Primary: "#00ff00", Accent: "#88ff88", Text: "#00ff00", Muted: "#005500", Success: "#88ff88", Warning: "#ffff00"},
	{Name: "minimal", Primary: "#ffffff", Accent: "#0088ff", Text: "#ffffff", Muted: "#888888", Success: "#00ff00", Warning: "#ffaa00"},
	{Name: "ocean", Primary: "#0077be", Accent: "#ffd700", Text: "#e0f0ff", Muted: "#4488aa", Success: "#00ff88", Warning: "#ffcc00"},
	{Name: "sunset", Primary: "#ff6b6b", Accent: "#feca57", Text: "#fff5f5", Muted: "#8b6b8c", Success: "#5fd068", Warning: "#ffc048"},
}

// ThemeIndex returns the position of the named theme, or 0.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
