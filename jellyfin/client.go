package jellyfin

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultPort          = 8096
	DefaultClientName    = "abjc"
	DefaultDeviceName    = "iOS"
	DefaultClientVersion = "1.0.0"

	// DefaultTimeout bounds every data call.
	DefaultTimeout = 60 * time.Second
	// DefaultAuthTimeout bounds the authentication call.
	DefaultAuthTimeout = 5 * time.Second
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config identifies the server a client talks to.
type Config struct {
	Host     string
	Port     int
	HTTPS    bool
	DeviceID string
}

// Client represents a Jellyfin/Emby API client
type Client struct {
	scheme   string
	host     string
	port     int
	deviceID string

	clientName    string
	deviceName    string
	clientVersion string

	httpClient  Doer
	timeout     time.Duration
	authTimeout time.Duration
	session     *Session
	metrics     bool
	logger      zerolog.Logger
}

// NewClient creates a new client for the server described by cfg.
//
// A zero port selects DefaultPort. The device id is taken from a restored
// user (WithUser), then from cfg, and is otherwise a random UUID.
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	port := cfg.Port
	if port == 0 {
		port = DefaultPort
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	scheme := "http"
	if cfg.HTTPS {
		scheme = "https"
	}

	session := options.session
	if session == nil {
		session = NewSession(options.user)
	}

	deviceID := cfg.DeviceID
	if u := session.Get(); u != nil && u.DeviceID != "" {
		deviceID = u.DeviceID
	}
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	c := &Client{
		scheme:        scheme,
		host:          strings.TrimSpace(cfg.Host),
		port:          port,
		deviceID:      deviceID,
		clientName:    options.clientName,
		deviceName:    options.deviceName,
		clientVersion: options.clientVersion,
		httpClient:    options.httpClient,
		timeout:       options.timeout,
		authTimeout:   options.authTimeout,
		session:       session,
		metrics:       options.metrics,
		logger:        logger.With().Str("component", "jellyfin").Logger(),
	}

	c.logger.Debug().
		Str("base_url", c.BaseURL().String()).
		Str("device_id", c.deviceID).
		Bool("authenticated", session.Authenticated()).
		Msg("Created Jellyfin client")

	return c, nil
}

// HasAddress reports whether a usable remote host is configured.
func (c *Client) HasAddress() bool {
	return c.host != "" && c.host != "localhost"
}

// Host returns the configured host name.
func (c *Client) Host() string { return c.host }

// Port returns the configured port.
func (c *Client) Port() int { return c.port }

// DeviceID returns the device id sent with every request.
func (c *Client) DeviceID() string { return c.deviceID }

// BaseURL returns scheme://host:port.
func (c *Client) BaseURL() *url.URL {
	return &url.URL{
		Scheme: c.scheme,
		Host:   net.JoinHostPort(c.host, strconv.Itoa(c.port)),
	}
}

// CurrentUser returns the authenticated user, or nil.
func (c *Client) CurrentUser() *AuthUser {
	return c.session.Get()
}

// Session returns the session backing this client.
func (c *Client) Session() *Session {
	return c.session
}

// Logout forgets the current user. No request is sent.
func (c *Client) Logout() {
	c.session.Clear()
	c.logger.Debug().Msg("Cleared session")
}

// authorizationHeader renders the X-Emby-Authorization value.
func (c *Client) authorizationHeader() string {
	return fmt.Sprintf("Emby Client=%s, Device=%s, DeviceId=%s, Version=%s",
		c.clientName, c.deviceName, c.deviceID, c.clientVersion)
}
