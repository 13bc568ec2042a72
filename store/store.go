// Package store provides SQLite persistence for saved jokes in joke-cli.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/triplewood/joke-cli/model"
	_ "modernc.org/sqlite"
)

// ErrDuplicate is returned when saving a joke whose server id is already stored.
var ErrDuplicate = errors.New("joke already saved")

// ErrNotFound is returned when a saved joke does not exist.
var ErrNotFound = errors.New("saved joke not found")

// Store manages the SQLite database of saved jokes.
type Store struct {
	db *sql.DB
}

// QueryOptions specifies how to query saved jokes.
type QueryOptions struct {
	Limit     int
	Offset    int
	SinceTime *int64 // Unix timestamp
}

// New creates a new Store with the given database path.
// Use ":memory:" for an in-memory database (useful for testing).
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createSchema creates the database tables and indexes.
func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saved_jokes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		joke_id TEXT UNIQUE NOT NULL,
		text TEXT NOT NULL,
		status_code INTEGER NOT NULL DEFAULT 0,
		saved_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_saved_jokes_saved_at ON saved_jokes(saved_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save inserts a saved joke. The RowID field is set on success. Saving the
// same server id twice returns ErrDuplicate.
func (s *Store) Save(j *model.SavedJoke) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if j.SavedAt.IsZero() {
		j.SavedAt = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO saved_jokes (joke_id, text, status_code, saved_at) VALUES (?, ?, ?, ?)",
		j.JokeID, j.Text, j.StatusCode, j.SavedAt.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert saved joke: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	j.RowID = id
	return nil
}

// Get retrieves a saved joke by its local rowid.
func (s *Store) Get(rowID int64) (*model.SavedJoke, error) {
	j := &model.SavedJoke{}
	var savedUnix int64

	err := s.db.QueryRow(
		"SELECT id, joke_id, text, status_code, saved_at FROM saved_jokes WHERE id = ?",
		rowID,
	).Scan(&j.RowID, &j.JokeID, &j.Text, &j.StatusCode, &savedUnix)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get saved joke: %w", err)
	}

	j.SavedAt = time.Unix(savedUnix, 0)
	return j, nil
}

// All retrieves saved jokes with optional filtering and pagination, newest first.
func (s *Store) All(opts QueryOptions) ([]*model.SavedJoke, error) {
	query := "SELECT id, joke_id, text, status_code, saved_at FROM saved_jokes WHERE 1=1"
	args := []interface{}{}

	if opts.SinceTime != nil {
		query += " AND saved_at >= ?"
		args = append(args, *opts.SinceTime)
	}

	query += " ORDER BY saved_at DESC, id DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved jokes: %w", err)
	}
	defer rows.Close()

	var jokes []*model.SavedJoke
	for rows.Next() {
		j := &model.SavedJoke{}
		var savedUnix int64
		if err := rows.Scan(&j.RowID, &j.JokeID, &j.Text, &j.StatusCode, &savedUnix); err != nil {
			return nil, fmt.Errorf("failed to scan saved joke: %w", err)
		}
		j.SavedAt = time.Unix(savedUnix, 0)
		jokes = append(jokes, j)
	}

	return jokes, rows.Err()
}

// Delete removes a saved joke by its local rowid.
func (s *Store) Delete(rowID int64) error {
	result, err := s.db.Exec("DELETE FROM saved_jokes WHERE id = ?", rowID)
	if err != nil {
		return fmt.Errorf("failed to delete saved joke: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Has reports whether a joke with the given server id is already saved.
func (s *Store) Has(jokeID string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM saved_jokes WHERE joke_id = ?", jokeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check saved joke: %w", err)
	}
	return count > 0, nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure on
// the joke_id column. modernc.org/sqlite does not export a stable error
// type for this, so the message is matched.
func isUniqueViolation(err error) bool {
	return err != nil &&
		strings.Contains(err.Error(), "UNIQUE") &&
		strings.Contains(err.Error(), "joke_id")
}
