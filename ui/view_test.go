package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_States(t *testing.T) {
	m := newTestModel(t, nil)

	// Initial load: spinner placeholder.
	_ = m.fetch()
	assert.Contains(t, m.View(), "fetching a joke")

	// Joke card.
	newModel, _ := m.Update(fetchResultMsg{gen: 1, joke: testJoke("abc123", "Why did the chicken cross the road?")})
	m = newModel.(Model)
	view := m.View()
	assert.Contains(t, view, "Why did the chicken cross the road?")
	assert.Contains(t, view, "abc123")

	// Failure placeholder with retry hint replaces the card.
	_ = m.fetch()
	newModel, _ = m.Update(fetchResultMsg{gen: 2, err: errors.New("connection refused")})
	m = newModel.(Model)
	view = m.View()
	assert.Contains(t, view, "connection refused")
	assert.Contains(t, view, "press r to retry")
	assert.NotContains(t, view, "Why did the chicken")

	// Quitting clears the screen.
	newModel, _ = m.Update(keyPress('q'))
	assert.Empty(t, newModel.(Model).View())
}

func TestView_TransientStatus(t *testing.T) {
	mockClipboard(t, nil)

	m := newTestModel(t, nil)
	_ = m.fetch()
	newModel, _ := m.Update(fetchResultMsg{gen: 1, joke: testJoke("abc123", "A joke.")})
	m = newModel.(Model)

	newModel, _ = m.Update(keyPress('c'))
	m = newModel.(Model)
	require.Contains(t, m.View(), "copied to clipboard")

	newModel, _ = m.Update(statusExpiredMsg{gen: m.statusGen})
	m = newModel.(Model)
	assert.NotContains(t, m.View(), "copied to clipboard")
}

func TestThemeAt_Wraparound(t *testing.T) {
	n := ThemeCount()
	require.Greater(t, n, 1)

	assert.Equal(t, themes[0].Name, themeAt(0).Name)
	assert.Equal(t, themes[0].Name, themeAt(n).Name)
	assert.Equal(t, themes[n-1].Name, themeAt(-1).Name)
	assert.Equal(t, themes[1].Name, themeAt(n+1).Name)
}

func TestView_NarrowWindow(t *testing.T) {
	m := newTestModel(t, nil)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	m = newModel.(Model)

	// Must not panic at tiny widths.
	assert.NotEmpty(t, m.View())
}
