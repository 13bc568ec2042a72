package joke

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripperFunc adapts a function to http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// noNetworkClient fails the test if any request reaches the transport.
func noNetworkClient(t *testing.T) *http.Client {
	t.Helper()
	return &http.Client{
		Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			t.Errorf("unexpected network call to %s", r.URL)
			return nil, errors.New("no network in this test")
		}),
	}
}

func TestFetch_InvalidEndpoint(t *testing.T) {
	endpoints := []string{
		"   ",
		"not a url",
		"/relative/path",
		"example.com/no-scheme",
		"ftp://example.com/",
		"https://",
		"://missing-scheme",
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			f := NewFetcher(endpoint, WithHTTPClient(noNetworkClient(t)))

			_, err := f.Fetch(context.Background())
			require.Error(t, err)
			assert.Equal(t, KindInvalidEndpoint, KindOf(err), "endpoint %q", endpoint)
		})
	}
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.URL.RawQuery, "no query parameters expected")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"abc123","joke":"Why did the chicken cross the road?","status":200}`))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, WithHTTPClient(srv.Client()))
	joke, err := f.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "abc123", joke.ID)
	assert.Equal(t, "Why did the chicken cross the road?", joke.Text)
	assert.Equal(t, 200, joke.StatusCode)
}

func TestFetch_DecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not JSON", body: "<html>oops</html>"},
		{name: "truncated JSON", body: `{"id":"abc123","joke":"half`},
		{name: "missing id", body: `{"joke":"a joke","status":200}`},
		{name: "missing joke", body: `{"id":"abc123","status":200}`},
		{name: "missing status", body: `{"id":"abc123","joke":"a joke"}`},
		{name: "id wrong type", body: `{"id":7,"joke":"a joke","status":200}`},
		{name: "joke wrong type", body: `{"id":"abc123","joke":["a"],"status":200}`},
		{name: "status wrong type", body: `{"id":"abc123","joke":"a joke","status":"200"}`},
		{name: "empty joke text", body: `{"id":"abc123","joke":"","status":200}`},
		{name: "null fields", body: `{"id":null,"joke":null,"status":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			f := NewFetcher(srv.URL, WithHTTPClient(srv.Client()))
			joke, err := f.Fetch(context.Background())
			require.Error(t, err)
			assert.Nil(t, joke, "no partially populated joke on decode failure")
			assert.Equal(t, KindDecode, KindOf(err))
		})
	}
}

func TestFetch_EmptyResponse(t *testing.T) {
	bodies := map[string]string{
		"no body":         "",
		"whitespace body": " \n\t ",
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			f := NewFetcher(srv.URL, WithHTTPClient(srv.Client()))
			_, err := f.Fetch(context.Background())
			require.Error(t, err)
			assert.Equal(t, KindEmptyResponse, KindOf(err))
		})
	}
}

func TestFetch_TransportError(t *testing.T) {
	// Closing the server before fetching guarantees a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewFetcher(url)
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.NotNil(t, fe.Err, "transport failure carries the underlying cause")
	assert.NotEmpty(t, fe.Error())
}

func TestFetch_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(srv.URL, WithHTTPClient(srv.Client()))
	_, err := f.Fetch(ctx)
	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFetcher_Defaults(t *testing.T) {
	f := NewFetcher("")
	assert.Equal(t, DefaultEndpoint, f.Endpoint())
	assert.Equal(t, DefaultTimeout, f.client.Timeout)
}
