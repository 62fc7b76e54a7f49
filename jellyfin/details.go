package jellyfin

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) userItemPath(itemID string) string {
	return "/Users/" + c.session.UserID() + "/Items/" + itemID
}

// GetMovie retrieves a single movie
func (c *Client) GetMovie(ctx context.Context, itemID string) (*Movie, error) {
	if itemID == "" {
		return nil, ErrEmptyID
	}

	movie, err := call[Movie](ctx, c, request{
		op:     "GetMovie",
		method: http.MethodGet,
		path:   c.userItemPath(itemID),
	})
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetSeries retrieves a single series with people and media sources
func (c *Client) GetSeries(ctx context.Context, itemID string) (*Series, error) {
	if itemID == "" {
		return nil, ErrEmptyID
	}

	params := url.Values{}
	params.Set("Fields", "Genres,Overview,People,MediaSources")

	series, err := call[Series](ctx, c, request{
		op:     "GetSeries",
		method: http.MethodGet,
		path:   c.userItemPath(itemID),
		query:  params,
	})
	if err != nil {
		return nil, err
	}
	return &series, nil
}

// GetSeasons retrieves the seasons of a series in ascending order
func (c *Client) GetSeasons(ctx context.Context, seriesID string) ([]Season, error) {
	if seriesID == "" {
		return nil, ErrEmptyID
	}

	params := url.Values{}
	params.Set("userId", c.session.UserID())
	params.Set("IncludeItemTypes", string(MediaTypeSeason))
	params.Set("SortOrder", "Ascending")
	params.Set("Fields", "Genres,Overview,People,CommunityRating")

	resp, err := call[ItemResponse[Season]](ctx, c, request{
		op:     "GetSeasons",
		method: http.MethodGet,
		path:   "/Shows/" + seriesID + "/Seasons",
		query:  params,
	})
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// GetEpisodes retrieves every episode of a series, ordered by premiere date
// on the server side. The order of the response is preserved.
func (c *Client) GetEpisodes(ctx context.Context, seriesID string) ([]Episode, error) {
	if seriesID == "" {
		return nil, ErrEmptyID
	}

	params := url.Values{}
	params.Set("userId", c.session.UserID())
	params.Set("IncludeItemTypes", string(MediaTypeEpisode))
	params.Set("SortBy", "PremiereDate")
	params.Set("SortOrder", "Ascending")
	params.Set("Fields", "Genres,Overview,People,CommunityRating,MediaSources")

	resp, err := call[ItemResponse[Episode]](ctx, c, request{
		op:     "GetEpisodes",
		method: http.MethodGet,
		path:   "/Shows/" + seriesID + "/Episodes",
		query:  params,
	})
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// GetImages lists the stored images of an item
func (c *Client) GetImages(ctx context.Context, itemID string) ([]Image, error) {
	if itemID == "" {
		return nil, ErrEmptyID
	}

	return call[[]Image](ctx, c, request{
		op:     "GetImages",
		method: http.MethodGet,
		path:   "/Items/" + itemID + "/Images",
	})
}
