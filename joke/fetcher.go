// Package joke provides fetching and decoding of jokes for joke-cli.
package joke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/triplewood/joke-cli/model"
	"go.uber.org/zap"
)

// DefaultEndpoint is the joke service queried when no endpoint is configured.
const DefaultEndpoint = "https://icanhazdadjoke.com/"

// DefaultTimeout bounds a single fetch when the caller does not supply a client.
const DefaultTimeout = 10 * time.Second

// Fetcher handles fetching and decoding jokes from a JSON endpoint.
type Fetcher struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithTimeout sets the per-request timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithLogger attaches a logger for debug output. The default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// NewFetcher creates a new Fetcher for the given endpoint. An empty endpoint
// selects DefaultEndpoint.
func NewFetcher(endpoint string, opts ...Option) *Fetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	f := &Fetcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Endpoint returns the configured endpoint string.
func (f *Fetcher) Endpoint() string {
	return f.endpoint
}

// wireJoke mirrors the service's response schema. Pointer fields distinguish
// absent keys from zero values so a partial payload is rejected.
type wireJoke struct {
	ID     *string `json:"id"`
	Joke   *string `json:"joke"`
	Status *int    `json:"status"`
}

// Fetch retrieves one joke. Every returned error is a *FetchError; callers
// can classify it with KindOf. No retries are performed and nothing is
// cached; the caller decides whether to try again.
func (f *Fetcher) Fetch(ctx context.Context) (*model.Joke, error) {
	u, err := validateEndpoint(f.endpoint)
	if err != nil {
		return nil, &FetchError{Kind: KindInvalidEndpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &FetchError{Kind: KindUnexpected, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &FetchError{Kind: KindEmptyResponse}
	}

	joke, err := decode(body)
	if err != nil {
		return nil, &FetchError{Kind: KindDecode, Err: err}
	}

	f.logger.Debug("fetched joke",
		zap.String("id", joke.ID),
		zap.Int("http_status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return joke, nil
}

// validateEndpoint checks that raw is a well-formed absolute http(s) URL.
func validateEndpoint(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("endpoint %q is not an absolute URL", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q has unsupported scheme %q", raw, u.Scheme)
	}
	return u, nil
}

// errMissingField reports which schema fields the payload lacked.
func errMissingField(w wireJoke) error {
	var missing []string
	if w.ID == nil {
		missing = append(missing, "id")
	}
	if w.Joke == nil {
		missing = append(missing, "joke")
	}
	if w.Status == nil {
		missing = append(missing, "status")
	}
	return fmt.Errorf("response is missing required fields: %s", strings.Join(missing, ", "))
}

// decode parses a response body into a Joke. All three schema fields must be
// present with the right types; otherwise the whole payload is rejected.
func decode(body []byte) (*model.Joke, error) {
	var w wireJoke
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, err
	}
	if w.ID == nil || w.Joke == nil || w.Status == nil {
		return nil, errMissingField(w)
	}

	joke := &model.Joke{
		ID:         *w.ID,
		Text:       *w.Joke,
		StatusCode: *w.Status,
	}
	if err := joke.Validate(); err != nil {
		return nil, err
	}
	return joke, nil
}
