package jellyfin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfflineClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(Config{Host: "media.local", DeviceID: "device-1"}, nopLogger(),
		WithHTTPClient(failingDoer{t}), WithUser(authedUser()))
	require.NoError(t, err)
	return client
}

func TestImageURL(t *testing.T) {
	client := newOfflineClient(t)

	tests := []struct {
		name      string
		imageType ImageType
		maxWidth  int
		quality   int
		want      string
	}{
		{
			name:      "defaults",
			imageType: ImageTypePrimary,
			want:      "http://media.local:8096/Items/abc/Images/Primary?Format=jpg&MaxWidth=600&Quality=70",
		},
		{
			name:      "explicit size",
			imageType: ImageTypeBackdrop,
			maxWidth:  1920,
			quality:   90,
			want:      "http://media.local:8096/Items/abc/Images/Backdrop?Format=jpg&MaxWidth=1920&Quality=90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := client.ImageURL("abc", tt.imageType, tt.maxWidth, tt.quality)
			require.NoError(t, err)
			second, err := client.ImageURL("abc", tt.imageType, tt.maxWidth, tt.quality)
			require.NoError(t, err)

			assert.Equal(t, tt.want, first.String())
			assert.Equal(t, first.String(), second.String())
		})
	}
}

func TestImageURLRejectsInvalidType(t *testing.T) {
	client := newOfflineClient(t)

	_, err := client.ImageURL("abc", ImageType("Poster"), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidImageType)

	_, err = client.ImageURL("", ImageTypePrimary, 0, 0)
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestStreamURL(t *testing.T) {
	client := newOfflineClient(t)

	u, err := client.StreamURL("item-9", "source-9")
	require.NoError(t, err)

	assert.Equal(t, "/videos/item-9/master.m3u8", u.Path)
	q := u.Query()
	assert.Equal(t, "device-1", q.Get("DeviceId"))
	assert.Equal(t, "source-9", q.Get("MediaSourceId"))
	assert.Equal(t, "tok-123", q.Get("api_key"))
	assert.Equal(t, "h264", q.Get("VideoCodec"))
	assert.Equal(t, "ac3,mp3,aac", q.Get("AudioCodec"))
	assert.Equal(t, "139680000", q.Get("VideoBitrate"))
	assert.Equal(t, "ts", q.Get("SegmentContainer"))
	assert.Equal(t, "ContainerNotSupported,VideoCodecNotSupported,AudioCodecNotSupported", q.Get("TranscodeReasons"))

	again, err := client.StreamURL("item-9", "source-9")
	require.NoError(t, err)
	assert.Equal(t, u.String(), again.String())
}

func TestPlayerItem(t *testing.T) {
	client := newOfflineClient(t)

	item, err := client.PlayerItem("item-9", "source-9")
	require.NoError(t, err)

	assert.Equal(t, "/videos/item-9/master.m3u8", item.URL.Path)
	assert.False(t, item.URL.Query().Has("api_key"))
	assert.Equal(t, "tok-123", item.Header.Get("X-Emby-Token"))
	assert.Contains(t, item.Header.Get("X-Emby-Authorization"), "DeviceId=device-1")

	_, err = client.PlayerItem("item-9", "")
	assert.ErrorIs(t, err, ErrEmptyID)
}
