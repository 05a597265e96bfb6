package errors

import "errors"

// Kind is the closed set of failure classes the client surfaces.
// Callers branch on kind, never on message content.
type Kind int

const (
	// Transport - the network call itself could not complete.
	Transport Kind = iota
	// Timeout - the streaming timeout fired and aborted the call.
	Timeout
	// HTTPStatus - the call completed with a non-success status.
	HTTPStatus
	// RateLimit - the streaming endpoint returned 429.
	RateLimit
	// StreamUnavailable - success status but no readable body to stream.
	StreamUnavailable
)

func (k Kind) String() string {
	switch k {
	case Transport:
		return "transport"
	case Timeout:
		return "timeout"
	case HTTPStatus:
		return "http_status"
	case RateLimit:
		return "rate_limit"
	case StreamUnavailable:
		return "stream_unavailable"
	}
	return "unknown"
}

// Error is the single error type returned across the client boundary.
// Message is always displayable as-is; StatusCode is set for HTTPStatus
// and RateLimit kinds.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind carried by err, if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
