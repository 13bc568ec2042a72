package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const maxCardWidth = 64

// View renders the single screen: title, card (joke, placeholder, or
// error), status line, and help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	th := themeAt(m.themeIdx)
	snap := m.st.Snapshot()

	cardWidth := m.width - 4
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}
	if cardWidth < 20 {
		cardWidth = 20
	}

	title := titleStyle(th).Render("joke-cli")
	themeName := faintStyle(th).Render(fmt.Sprintf("theme: %s", th.Name))
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", themeName)

	var body string
	switch {
	case snap.Err != nil:
		// The placeholder replaces the card on any failure; the message is
		// the classified, user-facing one from the fetch boundary.
		body = errorStyle(th).Render(snap.Err.Error()) + "\n\n" +
			faintStyle(th).Render("press r to retry")
	case snap.Joke != nil:
		body = snap.Joke.Text + "\n\n" +
			faintStyle(th).Render("#"+snap.Joke.ID)
	case snap.Loading:
		body = m.spinner.View() + " fetching a joke..."
	default:
		body = faintStyle(th).Render("press n for a joke")
	}

	card := cardStyle(th, cardWidth).Render(body)

	status := " "
	switch {
	case m.status != "":
		status = statusStyle(th).Render(m.status)
	case snap.Loading && (snap.Joke != nil || snap.Err != nil):
		// A refresh with something already on screen keeps the card and
		// signals progress in the status line instead.
		status = m.spinner.View() + faintStyle(th).Render(" fetching...")
	}

	footer := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		card,
		"",
		status,
		"",
		footer,
	) + "\n"
}
