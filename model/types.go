// Package model defines the core data structures for joke-cli.
package model

import (
	"errors"
	"fmt"
	"time"
)

// Joke is a single joke as returned by the remote service.
type Joke struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	StatusCode int    `json:"status_code"`
}

// Validate checks if the joke has required fields.
func (j *Joke) Validate() error {
	if j.ID == "" {
		return errors.New("joke ID is required")
	}
	if j.Text == "" {
		return errors.New("joke text is required")
	}
	return nil
}

// ShareText returns the joke formatted for sharing, with an attribution
// line when source is non-empty.
func (j *Joke) ShareText(source string) string {
	if source == "" {
		return j.Text
	}
	return fmt.Sprintf("%s\n\n(via %s)", j.Text, source)
}

// SavedJoke is a joke the user chose to keep, as stored locally.
type SavedJoke struct {
	RowID      int64     `json:"rowid,omitempty"`
	JokeID     string    `json:"id"`
	Text       string    `json:"text"`
	StatusCode int       `json:"status_code"`
	SavedAt    time.Time `json:"saved_at"`
}

// NewSavedJoke wraps a fetched joke for persistence.
func NewSavedJoke(j *Joke, at time.Time) *SavedJoke {
	return &SavedJoke{
		JokeID:     j.ID,
		Text:       j.Text,
		StatusCode: j.StatusCode,
		SavedAt:    at,
	}
}

// Validate checks if the saved joke has required fields.
func (s *SavedJoke) Validate() error {
	if s.JokeID == "" {
		return errors.New("joke ID is required")
	}
	if s.Text == "" {
		return errors.New("joke text is required")
	}
	return nil
}
