package artwork

import (
	"errors"
	"fmt"

	"github.com/s0up4200/abjc/metrics"
)

var (
	// ErrConnectivity indicates the catalog service could not be reached or
	// answered with a non-2xx status
	ErrConnectivity = errors.New("artwork service unreachable")
	// ErrNoMatch indicates the search returned no usable candidate
	ErrNoMatch = errors.New("no artwork match")
	// ErrEmptyTitle indicates an empty search title
	ErrEmptyTitle = errors.New("title is required")
)

// ConnectivityError wraps ErrConnectivity with the underlying cause.
type ConnectivityError struct {
	StatusCode int
	Err        error
}

func (e *ConnectivityError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: status %d", ErrConnectivity, e.StatusCode)
	}
	return fmt.Sprintf("%v: %v", ErrConnectivity, e.Err)
}

func (e *ConnectivityError) Is(target error) bool { return target == ErrConnectivity }

func (e *ConnectivityError) Unwrap() error { return e.Err }

func (e *ConnectivityError) Outcome() string { return metrics.OutcomeTransport }

// DecodeError reports a search response of the wrong shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("artwork decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Outcome() string { return metrics.OutcomeDecode }
