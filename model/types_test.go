package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJoke_Validation(t *testing.T) {
	tests := []struct {
		name    string
		joke    Joke
		wantErr bool
	}{
		{
			name: "valid joke",
			joke: Joke{
				ID:         "abc123",
				Text:       "Why did the chicken cross the road?",
				StatusCode: 200,
			},
			wantErr: false,
		},
		{
			name: "missing ID",
			joke: Joke{
				Text:       "Why did the chicken cross the road?",
				StatusCode: 200,
			},
			wantErr: true,
		},
		{
			name: "empty text",
			joke: Joke{
				ID:         "abc123",
				Text:       "",
				StatusCode: 200,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.joke.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJoke_ShareText(t *testing.T) {
	j := Joke{ID: "abc123", Text: "A joke.", StatusCode: 200}

	assert.Equal(t, "A joke.", j.ShareText(""))
	assert.Equal(t, "A joke.\n\n(via https://example.com/)", j.ShareText("https://example.com/"))
}

func TestNewSavedJoke(t *testing.T) {
	now := time.Now()
	j := &Joke{ID: "abc123", Text: "A joke.", StatusCode: 200}

	saved := NewSavedJoke(j, now)
	assert.Equal(t, "abc123", saved.JokeID)
	assert.Equal(t, "A joke.", saved.Text)
	assert.Equal(t, 200, saved.StatusCode)
	assert.Equal(t, now, saved.SavedAt)
	assert.Zero(t, saved.RowID, "RowID is assigned by the store, not here")
	assert.NoError(t, saved.Validate())
}
