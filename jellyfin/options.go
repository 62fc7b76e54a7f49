package jellyfin

import (
	"net/http"
	"time"
)

// Option configures the client
type Option func(*clientOptions)

type clientOptions struct {
	httpClient    Doer
	timeout       time.Duration
	authTimeout   time.Duration
	user          *AuthUser
	session       *Session
	clientName    string
	deviceName    string
	clientVersion string
	metrics       bool
}

func defaultOptions() clientOptions {
	return clientOptions{
		httpClient:    &http.Client{},
		timeout:       DefaultTimeout,
		authTimeout:   DefaultAuthTimeout,
		clientName:    DefaultClientName,
		deviceName:    DefaultDeviceName,
		clientVersion: DefaultClientVersion,
		metrics:       true,
	}
}

// WithHTTPClient sets the transport used for every request
func WithHTTPClient(client Doer) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout sets the per-call timeout for data requests
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithAuthTimeout sets the timeout for Authorize
func WithAuthTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.authTimeout = timeout
		}
	}
}

// WithUser restores a previously authenticated user
func WithUser(user *AuthUser) Option {
	return func(o *clientOptions) {
		o.user = user
	}
}

// WithSession shares an existing session holder; it takes precedence over WithUser
func WithSession(session *Session) Option {
	return func(o *clientOptions) {
		o.session = session
	}
}

// WithClientInfo overrides the identity reported in the authorization header
func WithClientInfo(client, device, version string) Option {
	return func(o *clientOptions) {
		if client != "" {
			o.clientName = client
		}
		if device != "" {
			o.deviceName = device
		}
		if version != "" {
			o.clientVersion = version
		}
	}
}

// WithMetrics toggles Prometheus request metrics
func WithMetrics(enabled bool) Option {
	return func(o *clientOptions) {
		o.metrics = enabled
	}
}
