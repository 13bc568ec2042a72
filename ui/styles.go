// Package ui provides the interactive single-screen interface for joke-cli.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds one color scheme for the joke card.
type Theme struct {
	Name   string
	Border lipgloss.Color
	Text   lipgloss.Color
	Accent lipgloss.Color
	Faint  lipgloss.Color
	Error  lipgloss.Color
}

// themes is the fixed palette list the user cycles through.
var themes = []Theme{
	{
		Name:   "midnight",
		Border: lipgloss.Color("#5f5fd7"),
		Text:   lipgloss.Color("#f2f2f2"),
		Accent: lipgloss.Color("#8BC34A"),
		Faint:  lipgloss.Color("#6c6c6c"),
		Error:  lipgloss.Color("#e53935"),
	},
	{
		Name:   "paper",
		Border: lipgloss.Color("#8a8a8a"),
		Text:   lipgloss.Color("#303030"),
		Accent: lipgloss.Color("#2196F3"),
		Faint:  lipgloss.Color("#9e9e9e"),
		Error:  lipgloss.Color("#c62828"),
	},
	{
		Name:   "forest",
		Border: lipgloss.Color("#2e7d32"),
		Text:   lipgloss.Color("#e8f5e9"),
		Accent: lipgloss.Color("#ffb300"),
		Faint:  lipgloss.Color("#689f38"),
		Error:  lipgloss.Color("#ef5350"),
	},
	{
		Name:   "sunset",
		Border: lipgloss.Color("#ff8a65"),
		Text:   lipgloss.Color("#fff3e0"),
		Accent: lipgloss.Color("#ffd54f"),
		Faint:  lipgloss.Color("#bf8b67"),
		Error:  lipgloss.Color("#ff1744"),
	},
}

// ThemeCount returns the number of available themes.
func ThemeCount() int {
	return len(themes)
}

// themeAt returns the theme for an index, wrapping in both directions so
// cycling never runs off either end.
func themeAt(i int) Theme {
	n := len(themes)
	return themes[((i%n)+n)%n]
}

// cardStyle renders the joke card for a theme.
func cardStyle(th Theme, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Foreground(th.Text).
		Padding(1, 3).
		Width(width)
}

// titleStyle renders the header line.
func titleStyle(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
}

// faintStyle renders secondary text (hints, theme name, joke id).
func faintStyle(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(th.Faint)
}

// errorStyle renders the failure placeholder text.
func errorStyle(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(th.Error)
}

// statusStyle renders the transient acknowledgment line.
func statusStyle(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(th.Accent)
}
