package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/triplewood/joke-cli/joke"
	"github.com/triplewood/joke-cli/model"
	"github.com/triplewood/joke-cli/state"
)

// statusTTL is how long the transient "copied"/"saved" acknowledgment stays
// on screen before reverting.
const statusTTL = 1500 * time.Millisecond

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// Saver persists a joke the user chose to keep. *store.Store satisfies it.
type Saver interface {
	Save(*model.SavedJoke) error
}

// fetchResultMsg carries one fetch's outcome back into the update loop.
// The generation lets a superseded fetch be recognized and dropped.
type fetchResultMsg struct {
	gen  uint64
	joke *model.Joke
	err  error
}

// statusExpiredMsg reverts the transient status line. Its generation guards
// against an old timer clearing a newer acknowledgment.
type statusExpiredMsg struct {
	gen int
}

// Model is the Bubble Tea model for the joke screen.
type Model struct {
	fetcher *joke.Fetcher
	st      *state.Store
	saver   Saver // nil disables the save action

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	themeIdx  int
	width     int
	status    string
	statusGen int
	quitting  bool
}

// New creates the joke screen. saver may be nil, in which case the save key
// reports that persistence is unavailable.
func New(fetcher *joke.Fetcher, saver Saver) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(themes[0].Accent)

	return Model{
		fetcher: fetcher,
		st:      state.NewStore(),
		saver:   saver,
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeyMap(),
		width:   80,
	}
}

// Init starts the spinner and the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch begins a new fetch generation and returns the command that runs it.
// The work happens off the update loop; only the resulting message touches
// model state, so rendering never observes a half-applied completion.
func (m Model) fetch() tea.Cmd {
	gen, ctx := m.st.Begin(context.Background())
	fetcher := m.fetcher
	return func() tea.Msg {
		j, err := fetcher.Fetch(ctx)
		return fetchResultMsg{gen: gen, joke: j, err: err}
	}
}

// setStatus shows a transient acknowledgment and schedules its revert.
func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusGen++
	gen := m.statusGen
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{gen: gen}
	})
}

// Snapshot exposes the current fetch state, mainly for tests.
func (m Model) Snapshot() state.Snapshot {
	return m.st.Snapshot()
}
