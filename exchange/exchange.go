// Package exchange provides file import and export of saved jokes for joke-cli.
package exchange

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/triplewood/joke-cli/model"
)

// FormatVersion identifies the export file layout.
const FormatVersion = "1"

// Document is the root structure of an export file.
type Document struct {
	Version    string             `json:"version"`
	ExportedAt time.Time          `json:"exported_at"`
	Jokes      []*model.SavedJoke `json:"jokes"`
}

// Parse reads an export file and extracts the saved jokes. Records without
// an id or text are skipped rather than failing the whole import.
func Parse(r io.Reader) ([]*model.SavedJoke, error) {
	var doc Document
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse export file: %w", err)
	}

	if doc.Version != "" && doc.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported export format version: %s", doc.Version)
	}

	var jokes []*model.SavedJoke
	for _, j := range doc.Jokes {
		if j == nil || j.Validate() != nil {
			continue
		}
		// Local rowids belong to the exporting database.
		j.RowID = 0
		jokes = append(jokes, j)
	}

	return jokes, nil
}

// Generate writes an export file from a list of saved jokes.
func Generate(w io.Writer, jokes []*model.SavedJoke) error {
	doc := Document{
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC(),
		Jokes:      jokes,
	}
	if doc.Jokes == nil {
		doc.Jokes = []*model.SavedJoke{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode export file: %w", err)
	}

	return nil
}
