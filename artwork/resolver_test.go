package artwork

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/abjc/jellyfin"
)

const searchResponseJSON = `{
	"data": {
		"q": "arrival",
		"canvas": {
			"id": "c1", "type": "Search", "title": "Results",
			"shelves": [
				{"id": "sh1", "title": "Movies", "items": [
					{"id": "umc.1", "type": "Movie", "title": "Arrival", "releaseDate": 1478822400000, "duration": 6960,
					 "images": {
						"coverArt": {"width": 3840, "height": 2160, "url": "https://is1.example.com/image/thumb/a/cover/{w}x{h}.{f}"},
						"coverArt16X9": {"width": 3840, "height": 2160, "url": "https://is1.example.com/image/thumb/a/wide/{w}x{h}.{f}", "joeColor": "b:1c1c1c", "isP3": false},
						"fullColorContentLogo": {"width": 1000, "height": 300, "url": "https://is1.example.com/image/thumb/a/logo/{w}x{h}.{f}"}
					 }}
				]},
				{"id": "sh2", "title": "TV", "items": [
					{"id": "umc.2", "type": "Show", "title": "Arrival Stories",
					 "images": {"coverArt16X9": {"width": 1920, "height": 1080, "url": "https://is1.example.com/image/thumb/b/wide/{w}x{h}.{f}"}}}
				]}
			]
		}
	},
	"utsk": "token"
}`

func newTestResolver(t *testing.T, handler http.HandlerFunc) *Resolver {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	r, err := NewResolver(zerolog.Nop(), WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return r
}

func TestSearchURL(t *testing.T) {
	r, err := NewResolver(zerolog.Nop())
	require.NoError(t, err)

	u := r.SearchURL("Blade Runner", "")
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "uts-api.itunes.apple.com", u.Host)
	assert.Equal(t, "/uts/v2/search/incremental", u.Path)
	assert.Equal(t, url.Values{
		"sf":     {"143443"},
		"locale": {"en-gb"},
		"caller": {"wta"},
		"utsk":   {"78dc2e4609ba5f1::::::736f5ba8c12ed90"},
		"v":      {"34"},
		"pfm":    {"desktop"},
		"q":      {"Blade Runner"},
	}, u.Query())

	assert.Equal(t, "de-de", r.SearchURL("x", "de-de").Query().Get("locale"))
}

func TestFetchSelectsFirstCandidate(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/uts/v2/search/incremental", req.URL.Path)
		assert.Equal(t, "Arrival", req.URL.Query().Get("q"))
		_, _ = w.Write([]byte(searchResponseJSON))
	})

	obj, err := r.Fetch(context.Background(), "Arrival", "")
	require.NoError(t, err)

	assert.Equal(t, "https://is1.example.com/image/thumb/a/wide", obj.Cover.String())
	assert.Equal(t, "https://is1.example.com/image/thumb/a/wide/1600x900.jpeg", obj.Cover.URL(1600, 900).String())
	require.NotNil(t, obj.Logo)
	assert.Equal(t, "https://is1.example.com/image/thumb/a/logo/400x120.jpeg", obj.Logo.URL(400, 120).String())
	assert.Equal(t, jellyfin.MediaTypeMovie, obj.Type)
}

func TestSearchFlattensShelves(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(searchResponseJSON))
	})

	candidates, err := r.Search(context.Background(), "Arrival", "")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "umc.1", candidates[0].ID)
	assert.Equal(t, "umc.2", candidates[1].ID)
	assert.Equal(t, CandidateShow, candidates[1].Type)
	require.NotNil(t, candidates[0].Duration)
	assert.Equal(t, int64(6960), *candidates[0].Duration)
}

func TestFetchNoMatch(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"q":"zzz","canvas":{"id":"c","type":"Search","title":"","shelves":[{"id":"s","title":"t","items":[]}]}},"utsk":"x"}`))
	})

	_, err := r.Fetch(context.Background(), "zzz", "")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFetchCandidateWithoutWideCover(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"q":"x","canvas":{"id":"c","type":"Search","title":"","shelves":[{"id":"s","title":"t","items":[
			{"id":"umc.9","type":"MovieBundle","title":"Bundle","images":{"coverArt":{"width":1,"height":1,"url":"https://x.example.com/a/{w}x{h}.{f}"}}}
		]}]}},"utsk":"x"}`))
	})

	_, err := r.Fetch(context.Background(), "x", "")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFetchConnectivity(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := r.Fetch(context.Background(), "Arrival", "")
		assert.ErrorIs(t, err, ErrConnectivity)

		var connErr *ConnectivityError
		require.ErrorAs(t, err, &connErr)
		assert.Equal(t, http.StatusServiceUnavailable, connErr.StatusCode)
	})

	t.Run("server down", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
		server.Close()

		r, err := NewResolver(zerolog.Nop(), WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = r.Fetch(context.Background(), "Arrival", "")
		assert.ErrorIs(t, err, ErrConnectivity)
	})
}

func TestFetchDecodeError(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"canvas": {"shelves": "nope"}}}`))
	})

	_, err := r.Fetch(context.Background(), "Arrival", "")
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestFetchEmptyTitle(t *testing.T) {
	r, err := NewResolver(zerolog.Nop())
	require.NoError(t, err)

	_, err = r.Fetch(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestSelect(t *testing.T) {
	_, err := Select(nil)
	assert.ErrorIs(t, err, ErrNoMatch)

	got, err := Select([]Candidate{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestCandidateTypeJellyfinType(t *testing.T) {
	assert.Equal(t, jellyfin.MediaTypeMovie, CandidateMovie.JellyfinType())
	assert.Equal(t, jellyfin.MediaTypeMovie, CandidateMovieBundle.JellyfinType())
	assert.Equal(t, jellyfin.MediaTypeSeries, CandidateShow.JellyfinType())
	assert.Equal(t, jellyfin.MediaTypeMovie, CandidateType("Episode").JellyfinType())
}
