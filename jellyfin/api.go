package jellyfin

import (
	"context"
	"net/url"
)

// API defines the interface for Jellyfin operations
type API interface {
	// Authorize authenticates and replaces the session on success
	Authorize(ctx context.Context, username, password string) (*AuthResponse, error)
	GetSystemInfo(ctx context.Context) (*SystemInfo, error)
	Ping(ctx context.Context) error

	GetItems(ctx context.Context, mediaType MediaType) ([]Item, error)
	GetLatest(ctx context.Context, mediaType MediaType) ([]Item, error)
	GetResumable(ctx context.Context, mediaType MediaType) ([]Item, error)
	GetFavorites(ctx context.Context, mediaType MediaType) ([]Item, error)
	GetNextUp(ctx context.Context, mediaType MediaType) ([]Item, error)
	GetSimilar(ctx context.Context, itemID string) ([]Item, error)

	GetMovie(ctx context.Context, itemID string) (*Movie, error)
	GetSeries(ctx context.Context, itemID string) (*Series, error)
	GetSeasons(ctx context.Context, seriesID string) ([]Season, error)
	GetEpisodes(ctx context.Context, seriesID string) ([]Episode, error)
	GetImages(ctx context.Context, itemID string) ([]Image, error)

	SearchItems(ctx context.Context, term string) ([]Item, error)
	SearchPeople(ctx context.Context, term string) ([]Person, error)

	StartPlayback(ctx context.Context, itemID string, positionTicks int64) error
	ReportPlayback(ctx context.Context, itemID string, positionTicks int64) error
	StopPlayback(ctx context.Context, itemID string, positionTicks int64) StopResult
}

// URLBuilder produces URLs without contacting the server
type URLBuilder interface {
	StreamURL(itemID, sourceID string) (*url.URL, error)
	PlayerItem(itemID, sourceID string) (*PlayerItem, error)
	ImageURL(itemID string, imageType ImageType, maxWidth, quality int) (*url.URL, error)
}

var (
	_ API        = (*Client)(nil)
	_ URLBuilder = (*Client)(nil)
)
