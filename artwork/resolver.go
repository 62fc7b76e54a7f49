package artwork

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/s0up4200/abjc/metrics"
)

const searchPath = "/uts/v2/search/incremental"

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Resolver finds supplemental artwork for a title in an external catalog.
type Resolver struct {
	baseURL    *url.URL
	storefront string
	locale     string
	token      string
	timeout    time.Duration
	httpClient Doer
	metrics    bool
	logger     zerolog.Logger
}

// NewResolver creates a resolver
func NewResolver(logger zerolog.Logger, opts ...Option) (*Resolver, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	base, err := url.Parse(strings.TrimSuffix(options.baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid artwork base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid artwork base url %q: missing scheme or host", options.baseURL)
	}

	return &Resolver{
		baseURL:    base,
		storefront: options.storefront,
		locale:     options.locale,
		token:      options.token,
		timeout:    options.timeout,
		httpClient: options.httpClient,
		metrics:    options.metrics,
		logger:     logger.With().Str("component", "artwork").Logger(),
	}, nil
}

// SearchURL builds the search request URL for title. An empty locale selects
// the resolver's default.
func (r *Resolver) SearchURL(title, locale string) *url.URL {
	if locale == "" {
		locale = r.locale
	}

	params := url.Values{}
	params.Set("sf", r.storefront)
	params.Set("locale", locale)
	params.Set("caller", "wta")
	params.Set("utsk", r.token)
	params.Set("v", "34")
	params.Set("pfm", "desktop")
	params.Set("q", title)

	u := *r.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + searchPath
	u.RawQuery = params.Encode()
	return &u
}

// Search queries the catalog and returns every candidate across all shelves,
// in response order.
func (r *Resolver) Search(ctx context.Context, title, locale string) ([]Candidate, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	start := time.Now()
	candidates, err := r.search(ctx, title, locale)

	elapsed := time.Since(start)
	if r.metrics {
		metrics.ObserveRequest(metrics.ClientArtwork, "Search", metrics.OutcomeOf(err), elapsed)
	}
	if err != nil {
		r.logger.Warn().Err(err).Str("title", title).Msg("Artwork search failed")
		return nil, err
	}

	r.logger.Debug().
		Str("title", title).
		Int("candidates", len(candidates)).
		Dur("elapsed", elapsed).
		Msg("Artwork search completed")
	return candidates, nil
}

func (r *Resolver) search(ctx context.Context, title, locale string) ([]Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.SearchURL(title, locale).String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &ConnectivityError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}

	var parsed SearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return Flatten(parsed), nil
}

// Flatten concatenates the items of every shelf in order.
func Flatten(resp SearchResponse) []Candidate {
	var out []Candidate
	for _, shelf := range resp.Data.Canvas.Shelves {
		out = append(out, shelf.Items...)
	}
	return out
}

// Select returns the first candidate. No ranking is applied.
func Select(candidates []Candidate) (Candidate, error) {
	if len(candidates) == 0 {
		return Candidate{}, ErrNoMatch
	}
	return candidates[0], nil
}

// Fetch resolves artwork for title: search, take the first candidate and map
// its images.
func (r *Resolver) Fetch(ctx context.Context, title, locale string) (*Object, error) {
	candidates, err := r.Search(ctx, title, locale)
	if err != nil {
		return nil, err
	}

	chosen, err := Select(candidates)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", title, err)
	}

	obj, err := chosen.ToObject()
	if err != nil {
		return nil, fmt.Errorf("%q (%s): %w", title, chosen.ID, err)
	}

	r.logger.Debug().
		Str("title", title).
		Str("match", chosen.Title).
		Str("type", string(chosen.Type)).
		Bool("logo", obj.Logo != nil).
		Msg("Resolved artwork")
	return obj, nil
}
