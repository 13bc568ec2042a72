package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/triplewood/joke-cli/model"
	"github.com/triplewood/joke-cli/store"
)

// Update routes messages through the model. All state mutation happens here,
// on the program's single update loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchResultMsg:
		// A completion from a superseded fetch is dropped whole; the screen
		// only ever reflects the most recently triggered fetch.
		m.st.Apply(msg.gen, msg.joke, msg.err)
		return m, nil

	case statusExpiredMsg:
		if msg.gen == m.statusGen {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.st.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Retry):
		return m, m.fetch()

	case key.Matches(msg, m.keys.Copy):
		snap := m.st.Snapshot()
		if snap.Joke == nil {
			return m, nil
		}
		if err := clipboardWriteAll(snap.Joke.Text); err != nil {
			return m, m.setStatus("copy failed: " + err.Error())
		}
		return m, m.setStatus("copied to clipboard")

	case key.Matches(msg, m.keys.Share):
		snap := m.st.Snapshot()
		if snap.Joke == nil {
			return m, nil
		}
		if err := clipboardWriteAll(snap.Joke.ShareText(m.fetcher.Endpoint())); err != nil {
			return m, m.setStatus("share failed: " + err.Error())
		}
		return m, m.setStatus("share text copied")

	case key.Matches(msg, m.keys.Save):
		snap := m.st.Snapshot()
		if snap.Joke == nil {
			return m, nil
		}
		if m.saver == nil {
			return m, m.setStatus("saving is not available")
		}
		err := m.saver.Save(model.NewSavedJoke(snap.Joke, time.Now()))
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return m, m.setStatus("already saved")
		case err != nil:
			return m, m.setStatus("save failed: " + err.Error())
		}
		return m, m.setStatus("saved")

	case key.Matches(msg, m.keys.NextTheme):
		m.themeIdx++
		return m, nil

	case key.Matches(msg, m.keys.PrevTheme):
		m.themeIdx--
		return m, nil
	}

	return m, nil
}
