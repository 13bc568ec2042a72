// Package state owns the single-screen UI state for joke-cli.
//
// The current joke, the current error, and the loading flag form one atomic
// triple: after any completed fetch all three are mutually consistent, and a
// renderer never observes a partial update. Each fetch is tagged with a
// generation; completions from superseded fetches are discarded so a slow
// response can never overwrite a newer one.
package state

import (
	"context"
	"sync"

	"github.com/triplewood/joke-cli/model"
)

// Snapshot is a consistent copy of the state triple for rendering.
type Snapshot struct {
	Joke       *model.Joke
	Err        error
	Loading    bool
	Generation uint64
}

// Store serializes all updates to the joke/error/loading triple.
type Store struct {
	mu      sync.Mutex
	joke    *model.Joke
	err     error
	loading bool
	gen     uint64
	cancel  context.CancelFunc
}

// NewStore creates an empty Store: no joke, no error, not loading.
func NewStore() *Store {
	return &Store{}
}

// Begin starts a new fetch: the generation is bumped, any in-flight fetch's
// context is cancelled, and the loading flag is set. The previous joke or
// error stays visible until the new fetch completes. The returned context
// must be passed to the fetch so a superseded request is also cancelled on
// the wire, not just discarded on arrival.
func (s *Store) Begin(parent context.Context) (uint64, context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.gen++
	s.loading = true
	return s.gen, ctx
}

// Apply records the outcome of the fetch tagged gen. It reports whether the
// result was applied; a stale generation leaves the state untouched. On
// success the error is cleared, on failure the joke is cleared: the triple
// changes in one step or not at all.
func (s *Store) Apply(gen uint64, joke *model.Joke, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}

	s.loading = false
	if err != nil {
		s.joke = nil
		s.err = err
		return true
	}
	s.joke = joke
	s.err = nil
	return true
}

// Snapshot returns a consistent view of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Joke:       s.joke,
		Err:        s.err,
		Loading:    s.loading,
		Generation: s.gen,
	}
}

// Shutdown cancels any in-flight fetch. Safe to call more than once.
func (s *Store) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
