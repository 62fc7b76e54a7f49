package jellyfin

import (
	"context"
	"net/http"
)

type authenticateRequest struct {
	Username string `json:"Username"`
	Pw       string `json:"Pw"`
}

// Authorize authenticates with a username and password. On success the
// client's session is replaced with the returned identity before Authorize
// returns; on any failure the previous session is left untouched.
func (c *Client) Authorize(ctx context.Context, username, password string) (*AuthResponse, error) {
	if username == "" {
		return nil, ErrEmptyCredentials
	}

	resp, err := call[AuthResponse](ctx, c, request{
		op:        "Authorize",
		method:    http.MethodPost,
		path:      "/Users/AuthenticateByName",
		body:      authenticateRequest{Username: username, Pw: password},
		anonymous: true,
		timeout:   c.authTimeout,
	})
	if err != nil {
		return nil, err
	}

	c.session.Set(AuthUser{
		ID:       resp.User.ID,
		Name:     resp.User.Name,
		ServerID: resp.ServerID,
		DeviceID: c.deviceID,
		Token:    resp.AccessToken,
	})

	c.logger.Info().
		Str("user", resp.User.Name).
		Str("server_id", resp.ServerID).
		Msg("Authenticated with Jellyfin")

	return &resp, nil
}

// GetSystemInfo retrieves public and private information about the server
func (c *Client) GetSystemInfo(ctx context.Context) (*SystemInfo, error) {
	info, err := call[SystemInfo](ctx, c, request{
		op:     "GetSystemInfo",
		method: http.MethodGet,
		path:   "/System/Info",
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Ping checks that the server is reachable
func (c *Client) Ping(ctx context.Context) error {
	return c.exec(ctx, request{
		op:     "Ping",
		method: http.MethodGet,
		path:   "/System/Ping",
	})
}
