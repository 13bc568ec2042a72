package joke

import (
	"errors"
	"fmt"
)

// Kind classifies a fetch failure.
type Kind int

const (
	// KindUnexpected is the catch-all for failures that escape classification.
	KindUnexpected Kind = iota
	// KindInvalidEndpoint means the configured endpoint is not a well-formed
	// absolute http(s) URL. No network call was made.
	KindInvalidEndpoint
	// KindTransport covers connection-layer failures: DNS, refused
	// connections, TLS errors, cancelled requests.
	KindTransport
	// KindEmptyResponse means the server answered with no usable body.
	KindEmptyResponse
	// KindDecode means the body was present but was not valid JSON matching
	// the joke schema.
	KindDecode
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidEndpoint:
		return "invalid_endpoint"
	case KindTransport:
		return "transport"
	case KindEmptyResponse:
		return "empty_response"
	case KindDecode:
		return "decode"
	default:
		return "unexpected"
	}
}

// FetchError is the error type returned by Fetcher.Fetch. Every failure is
// classified with a Kind and carries a user-presentable message.
type FetchError struct {
	Kind Kind
	Err  error // underlying cause, may be nil
}

// Error returns the user-facing message for the failure.
func (e *FetchError) Error() string {
	switch e.Kind {
	case KindInvalidEndpoint:
		return "the joke endpoint is not a valid URL"
	case KindTransport:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "could not reach the joke service"
	case KindEmptyResponse:
		return "the joke service sent an empty response"
	case KindDecode:
		return "the joke service sent a response that could not be read"
	default:
		if e.Err != nil {
			return fmt.Sprintf("something went wrong: %v", e.Err)
		}
		return "something went wrong"
	}
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err, or KindUnexpected if err is not
// a *FetchError.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnexpected
}
