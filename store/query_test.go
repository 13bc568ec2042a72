package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{
			name:     "7 days",
			input:    "7d",
			expected: 7 * 24 * time.Hour,
		},
		{
			name:     "1 day",
			input:    "1d",
			expected: 24 * time.Hour,
		},
		{
			name:     "2 weeks",
			input:    "2w",
			expected: 14 * 24 * time.Hour,
		},
		{
			name:     "3 months (approximated as 90 days)",
			input:    "3m",
			expected: 90 * 24 * time.Hour,
		},
		{
			name:     "1 year (approximated as 365 days)",
			input:    "1y",
			expected: 365 * 24 * time.Hour,
		},
		{
			name:    "invalid format - no number",
			input:   "d",
			wantErr: true,
		},
		{
			name:    "invalid format - no unit",
			input:   "7",
			wantErr: true,
		},
		{
			name:    "invalid unit",
			input:   "7h",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSinceToUnixTime(t *testing.T) {
	got, err := SinceToUnixTime("1d")
	require.NoError(t, err)

	want := time.Now().Add(-24 * time.Hour).Unix()
	assert.InDelta(t, want, got, 5, "should be roughly one day ago")

	_, err = SinceToUnixTime("bogus")
	assert.Error(t, err)
}

func TestBuildQueryOptions(t *testing.T) {
	opts, err := BuildQueryOptions(10, 5, "")
	require.NoError(t, err)
	assert.Equal(t, 10, opts.Limit)
	assert.Equal(t, 5, opts.Offset)
	assert.Nil(t, opts.SinceTime)

	opts, err = BuildQueryOptions(0, 0, "7d")
	require.NoError(t, err)
	require.NotNil(t, opts.SinceTime)

	_, err = BuildQueryOptions(0, 0, "nope")
	assert.Error(t, err)
}
