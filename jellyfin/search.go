package jellyfin

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SearchItems searches movies and series by name
func (c *Client) SearchItems(ctx context.Context, term string) ([]Item, error) {
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	params := url.Values{}
	params.Set("searchTerm", term)
	params.Set("IncludeItemTypes", defaultIncludeTypes)
	params.Set("Recursive", "true")
	params.Set("Fields", "Genres")
	params.Set("Limit", strconv.Itoa(searchLimit))

	resp, err := call[ItemResponse[Item]](ctx, c, request{
		op:     "SearchItems",
		method: http.MethodGet,
		path:   "/Users/" + c.session.UserID() + "/Items",
		query:  params,
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("term", term).
		Int("count", len(resp.Items)).
		Msg("Searched items")

	return resp.Items, nil
}

// SearchPeople searches cast and crew by name
func (c *Client) SearchPeople(ctx context.Context, term string) ([]Person, error) {
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	params := url.Values{}
	params.Set("searchTerm", term)
	params.Set("IncludeTypes", "Person")
	params.Set("Recursive", "true")
	params.Set("Limit", strconv.Itoa(searchLimit))

	resp, err := call[ItemResponse[Person]](ctx, c, request{
		op:     "SearchPeople",
		method: http.MethodGet,
		path:   "/Persons",
		query:  params,
	})
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}
