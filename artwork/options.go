package artwork

import (
	"net/http"
	"time"
)

const (
	DefaultBaseURL    = "https://uts-api.itunes.apple.com"
	DefaultStorefront = "143443"
	DefaultLocale     = "en-gb"
	DefaultToken      = "78dc2e4609ba5f1::::::736f5ba8c12ed90"
	DefaultTimeout    = 30 * time.Second
)

// Option configures the resolver
type Option func(*resolverOptions)

type resolverOptions struct {
	httpClient Doer
	baseURL    string
	storefront string
	locale     string
	token      string
	timeout    time.Duration
	metrics    bool
}

func defaultOptions() resolverOptions {
	return resolverOptions{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
		storefront: DefaultStorefront,
		locale:     DefaultLocale,
		token:      DefaultToken,
		timeout:    DefaultTimeout,
		metrics:    true,
	}
}

// WithHTTPClient sets the transport
func WithHTTPClient(client Doer) Option {
	return func(o *resolverOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithBaseURL points the resolver at another catalog host
func WithBaseURL(baseURL string) Option {
	return func(o *resolverOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithStorefront sets the storefront id (sf)
func WithStorefront(storefront string) Option {
	return func(o *resolverOptions) {
		if storefront != "" {
			o.storefront = storefront
		}
	}
}

// WithLocale sets the default search locale
func WithLocale(locale string) Option {
	return func(o *resolverOptions) {
		if locale != "" {
			o.locale = locale
		}
	}
}

// WithToken sets the utsk token
func WithToken(token string) Option {
	return func(o *resolverOptions) {
		if token != "" {
			o.token = token
		}
	}
}

// WithTimeout bounds each search
func WithTimeout(timeout time.Duration) Option {
	return func(o *resolverOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMetrics toggles Prometheus request metrics
func WithMetrics(enabled bool) Option {
	return func(o *resolverOptions) {
		o.metrics = enabled
	}
}
