package jellyfin

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMovie(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users/user-1/Items/m1", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{
			"Id": "m1", "Name": "Arrival", "Type": "Movie", "RunTimeTicks": 69600000000,
			"People": [{"Id": "p1", "Name": "Amy Adams", "Role": "Louise Banks", "Type": "Actor"}],
			"MediaSources": [{"Id": "src1", "Container": "mkv", "MediaStreams": [{"Index": 0, "Type": "Video", "Codec": "hevc"}]}]
		}`))
	}, WithUser(authedUser()))

	movie, err := client.GetMovie(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "Arrival", movie.Name)
	assert.Equal(t, 116, movie.RuntimeMinutes())
	require.Len(t, movie.People, 1)
	assert.Equal(t, "Louise Banks", movie.People[0].Role)
	require.Len(t, movie.MediaSources, 1)
	assert.Equal(t, "hevc", movie.MediaSources[0].MediaStreams[0].Codec)
}

func TestGetSeries(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users/user-1/Items/s1", r.URL.Path)
		assert.Equal(t, "Genres,Overview,People,MediaSources", r.URL.Query().Get("Fields"))
		_, _ = w.Write([]byte(`{"Id": "s1", "Name": "Severance", "Type": "Series", "Status": "Continuing"}`))
	}, WithUser(authedUser()))

	series, err := client.GetSeries(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Continuing", series.Status)
}

func TestGetSeasons(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Shows/s1/Seasons", r.URL.Path)
		assert.Equal(t, url.Values{
			"userId":           {"user-1"},
			"IncludeItemTypes": {"Season"},
			"SortOrder":        {"Ascending"},
			"Fields":           {"Genres,Overview,People,CommunityRating"},
		}, r.URL.Query())
		_, _ = w.Write([]byte(`{"Items":[{"Id":"se1","IndexNumber":1},{"Id":"se2","IndexNumber":2}],"TotalRecordCount":2}`))
	}, WithUser(authedUser()))

	seasons, err := client.GetSeasons(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, 2, seasons[1].IndexNumber)
}

func TestGetEpisodesPreservesOrder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Shows/s1/Episodes", r.URL.Path)
		assert.Equal(t, "PremiereDate", r.URL.Query().Get("SortBy"))
		assert.Equal(t, "Genres,Overview,People,CommunityRating,MediaSources", r.URL.Query().Get("Fields"))
		// deliberately not sorted by index
		_, _ = w.Write([]byte(`{"Items":[
			{"Id":"e3","IndexNumber":3,"PremiereDate":"2022-02-18T00:00:00.0000000Z"},
			{"Id":"e1","IndexNumber":1,"PremiereDate":"2022-02-25T00:00:00.0000000Z"},
			{"Id":"e2","IndexNumber":2}
		],"TotalRecordCount":9}`))
	}, WithUser(authedUser()))

	episodes, err := client.GetEpisodes(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, episodes, 3)
	assert.Equal(t, []string{"e3", "e1", "e2"}, []string{episodes[0].ID, episodes[1].ID, episodes[2].ID})
	require.NotNil(t, episodes[0].PremiereDate)
	assert.Equal(t, 2022, episodes[0].PremiereDate.Year())
}

func TestGetImages(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Items/m1/Images", r.URL.Path)
		_, _ = w.Write([]byte(`[{"ImageType":"Primary","ImageTag":"abc","Width":1000,"Height":1500},{"ImageType":"Backdrop","ImageIndex":0}]`))
	})

	images, err := client.GetImages(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, ImageTypePrimary, images[0].ImageType)
	require.NotNil(t, images[1].ImageIndex)
	assert.Equal(t, 0, *images[1].ImageIndex)
}
