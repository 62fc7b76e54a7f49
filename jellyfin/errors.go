package jellyfin

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/s0up4200/abjc/metrics"
)

// Common errors
var (
	// ErrUnauthorized indicates the server rejected the credentials or token (401)
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates the user lacks permission for the resource (403)
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound indicates the resource does not exist (404)
	ErrNotFound = errors.New("resource not found")
	// ErrServer indicates a 5xx response
	ErrServer = errors.New("server error")
	// ErrUnknownStatus indicates any other non-2xx response
	ErrUnknownStatus = errors.New("unexpected status")

	ErrEmptyID          = errors.New("item id is required")
	ErrEmptySearchTerm  = errors.New("search term is required")
	ErrEmptyCredentials = errors.New("username is required")
	ErrNegativePosition = errors.New("position ticks must not be negative")
	ErrInvalidMediaType = errors.New("invalid media type")
	ErrInvalidImageType = errors.New("invalid image type")
	ErrInvalidPort      = errors.New("port must be between 1 and 65535")
)

// ErrorKind classifies a non-2xx response.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindServer
)

// String returns the string representation of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server_error"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUnauthorized:
		return ErrUnauthorized
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindServer:
		return ErrServer
	default:
		return ErrUnknownStatus
	}
}

// ServerError is returned when the server answers with a non-2xx status.
// The response body is never decoded.
type ServerError struct {
	Kind       ErrorKind
	StatusCode int
	Method     string
	Path       string
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("jellyfin API error: %s %s: status %d (%s)", e.Method, e.Path, e.StatusCode, e.Kind)
}

// Is matches the sentinel error of the same kind.
func (e *ServerError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Outcome returns the metrics outcome label.
func (e *ServerError) Outcome() string {
	return e.Kind.String()
}

// IsNotFound checks if the error indicates a not found response
func (e *ServerError) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *ServerError) IsUnauthorized() bool {
	return e.Kind == KindUnauthorized || e.Kind == KindForbidden
}

// ClassifyStatus maps an HTTP status code to an ErrorKind. ok is true for 2xx.
func ClassifyStatus(status int) (kind ErrorKind, ok bool) {
	switch {
	case status >= 200 && status < 300:
		return KindUnknown, true
	case status == http.StatusUnauthorized:
		return KindUnauthorized, false
	case status == http.StatusForbidden:
		return KindForbidden, false
	case status == http.StatusNotFound:
		return KindNotFound, false
	case status >= 500 && status < 600:
		return KindServer, false
	default:
		return KindUnknown, false
	}
}

// Classify returns nil for a 2xx status and a *ServerError otherwise.
func Classify(method, path string, status int) error {
	kind, ok := ClassifyStatus(status)
	if ok {
		return nil
	}
	return &ServerError{Kind: kind, StatusCode: status, Method: method, Path: path}
}

// TransportError reports a failed exchange that produced no HTTP response,
// including timeouts and unreadable bodies.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("jellyfin transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Outcome() string { return metrics.OutcomeTransport }

// DecodeError reports a 2xx body that could not be parsed into the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jellyfin decode error: %s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Outcome() string { return metrics.OutcomeDecode }
