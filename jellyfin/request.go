package jellyfin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"github.com/s0up4200/abjc/metrics"
)

// request describes one API call.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	// header is merged over the default headers
	header http.Header
	// anonymous requests carry no X-Emby-Token header
	anonymous bool
	timeout   time.Duration
}

// buildURL joins path and query onto the base URL. url.Values.Encode sorts
// keys, so the same inputs always produce the same URL. Keys with an empty
// value are kept as "key=".
func (c *Client) buildURL(path string, query url.Values) *url.URL {
	u := c.BaseURL()
	u.Path = path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u
}

// headers returns the headers sent with every request.
func (c *Client) headers(anonymous bool) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("X-Emby-Authorization", c.authorizationHeader())
	if !anonymous {
		h.Set("X-Emby-Token", c.session.Token())
	}
	return h
}

// newRequest builds the *http.Request for r.
func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	body := io.Reader(http.NoBody)
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s body: %w", r.op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.buildURL(r.path, r.query).String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = c.headers(r.anonymous)
	for key, values := range r.header {
		req.Header[http.CanonicalHeaderKey(key)] = values
	}
	return req, nil
}

// send performs r and returns the raw body of a 2xx response.
// Errors are *TransportError or *ServerError; a non-2xx body is discarded.
func (c *Client) send(ctx context.Context, r request) ([]byte, error) {
	timeout := r.timeout
	if timeout == 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("op", r.op).
		Str("method", r.method).
		Str("url", req.URL.String()).
		Msg("Making Jellyfin API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: r.method, URL: req.URL.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := Classify(r.method, r.path, resp.StatusCode); err != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: r.method, URL: req.URL.String(), Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return data, nil
}

// call performs r, decodes a 2xx body into T and records the outcome.
func call[T any](ctx context.Context, c *Client, r request) (T, error) {
	var out T
	start := time.Now()

	data, err := c.send(ctx, r)
	if err == nil {
		if derr := json.Unmarshal(data, &out); derr != nil {
			err = &DecodeError{Op: r.op, Err: derr}
		}
	}

	c.finish(r.op, start, err)
	return out, err
}

// exec performs r and ignores any response body.
func (c *Client) exec(ctx context.Context, r request) error {
	start := time.Now()
	_, err := c.send(ctx, r)
	c.finish(r.op, start, err)
	return err
}

func (c *Client) finish(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	if c.metrics {
		metrics.ObserveRequest(metrics.ClientJellyfin, op, metrics.OutcomeOf(err), elapsed)
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("op", op).Dur("elapsed", elapsed).Msg("Jellyfin API request failed")
		return
	}
	c.logger.Debug().Str("op", op).Dur("elapsed", elapsed).Msg("Jellyfin API request completed")
}

// decodeItemList accepts either a bare JSON array or an ItemResponse envelope.
func decodeItemList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var envelope ItemResponse[T]
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}
