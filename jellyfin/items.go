package jellyfin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	latestLimit = 12
	searchLimit = 24
)

// userItemsPath renders a path under the current user's library. An
// unauthenticated client produces an empty user segment and lets the server
// reject the request.
func (c *Client) userItemsPath(suffix string) string {
	return "/emby/Users/" + c.session.UserID() + "/Items" + suffix
}

func checkMediaType(m MediaType) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMediaType, string(m))
	}
	return nil
}

// GetItems retrieves the user's library, optionally narrowed to one media type
func (c *Client) GetItems(ctx context.Context, mediaType MediaType) ([]Item, error) {
	if err := checkMediaType(mediaType); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("Recursive", "true")
	params.Set("IncludeItemTypes", mediaType.IncludeItemTypes())
	params.Set("Fields", "Genres,Overview")

	resp, err := call[ItemResponse[Item]](ctx, c, request{
		op:     "GetItems",
		method: http.MethodGet,
		path:   c.userItemsPath(""),
		query:  params,
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("count", len(resp.Items)).
		Int("total", resp.TotalRecordCount).
		Msg("Retrieved items from Jellyfin")

	return resp.Items, nil
}

// GetLatest retrieves the most recently added items
func (c *Client) GetLatest(ctx context.Context, mediaType MediaType) ([]Item, error) {
	if err := checkMediaType(mediaType); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("Recursive", "true")
	params.Set("IncludeItemTypes", mediaType.IncludeItemTypes())
	params.Set("Fields", "Genres")
	params.Set("Limit", strconv.Itoa(latestLimit))

	return call[[]Item](ctx, c, request{
		op:     "GetLatest",
		method: http.MethodGet,
		path:   c.userItemsPath("/Latest"),
		query:  params,
	})
}

// GetResumable retrieves partially watched items, most recently played first
func (c *Client) GetResumable(ctx context.Context, mediaType MediaType) ([]Item, error) {
	if err := checkMediaType(mediaType); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("Recursive", "true")
	params.Set("IncludeItemTypes", mediaType.IncludeItemTypes())
	params.Set("SortBy", "DatePlayed")
	params.Set("SortOrder", "Descending")
	params.Set("Fields", "Genres")

	resp, err := call[ItemResponse[Item]](ctx, c, request{
		op:     "GetResumable",
		method: http.MethodGet,
		path:   c.userItemsPath("/Resume"),
		query:  params,
	})
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// GetFavorites retrieves the user's favorite items
func (c *Client) GetFavorites(ctx context.Context, mediaType MediaType) ([]Item, error) {
	if err := checkMediaType(mediaType); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("Recursive", "true")
	params.Set("IncludeItemTypes", mediaType.IncludeItemTypes())
	params.Set("Filters", "IsFavorite")
	params.Set("Fields", "Genres")

	return call[[]Item](ctx, c, request{
		op:     "GetFavorites",
		method: http.MethodGet,
		path:   c.userItemsPath("/Latest"),
		query:  params,
	})
}

// GetNextUp retrieves the next unwatched episode of each series in progress.
// Servers answer with either a bare array or an ItemResponse envelope; both
// are accepted.
func (c *Client) GetNextUp(ctx context.Context, mediaType MediaType) ([]Item, error) {
	if err := checkMediaType(mediaType); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("userId", c.session.UserID())
	if mediaType != MediaTypeAny {
		params.Set("IncludeItemTypes", string(mediaType))
	}

	r := request{
		op:     "GetNextUp",
		method: http.MethodGet,
		path:   "/Shows/NextUp",
		query:  params,
	}

	start := time.Now()
	data, err := c.send(ctx, r)
	var items []Item
	if err == nil {
		if items, err = decodeItemList[Item](data); err != nil {
			err = &DecodeError{Op: r.op, Err: err}
		}
	}
	c.finish(r.op, start, err)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetSimilar retrieves items similar to the given one
func (c *Client) GetSimilar(ctx context.Context, itemID string) ([]Item, error) {
	if itemID == "" {
		return nil, ErrEmptyID
	}

	params := url.Values{}
	params.Set("Recursive", "true")
	params.Set("IncludeItemTypes", defaultIncludeTypes)
	params.Set("Fields", "Genres")
	params.Set("userId", c.session.UserID())

	resp, err := call[ItemResponse[Item]](ctx, c, request{
		op:     "GetSimilar",
		method: http.MethodGet,
		path:   "/Items/" + itemID + "/Similar",
		query:  params,
	})
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}
