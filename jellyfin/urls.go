package jellyfin

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultImageMaxWidth = 600
	DefaultImageQuality  = 70
)

// PlayerItem is an HLS stream location plus the headers a player must send
// with it.
type PlayerItem struct {
	URL    *url.URL
	Header http.Header
}

// streamParams are the transcoding parameters requested for HLS playback.
func (c *Client) streamParams(sourceID string) url.Values {
	params := url.Values{}
	params.Set("DeviceId", c.deviceID)
	params.Set("MediaSourceId", sourceID)
	params.Set("VideoCodec", "h264")
	params.Set("AudioCodec", "ac3,mp3,aac")
	params.Set("VideoBitrate", "139680000")
	params.Set("AudioBitrate", "320000")
	params.Set("TranscodingMaxAudioChannels", "2")
	params.Set("RequireAvc", "false")
	params.Set("SegmentContainer", "ts")
	params.Set("MinSegments", "2")
	params.Set("BreakOnNonKeyFrames", "True")
	params.Set("h264-profile", "high,main,baseline,constrainedbaseline")
	params.Set("h264-level", "51")
	params.Set("h264-deinterlace", "true")
	params.Set("TranscodeReasons", "ContainerNotSupported,VideoCodecNotSupported,AudioCodecNotSupported")
	return params
}

func streamPath(itemID string) string {
	return "/videos/" + itemID + "/master.m3u8"
}

// StreamURL builds a self-authenticating HLS URL for an item and media
// source. The session token travels as api_key, so the URL can be handed to
// players that cannot set headers. No request is made.
func (c *Client) StreamURL(itemID, sourceID string) (*url.URL, error) {
	if itemID == "" || sourceID == "" {
		return nil, ErrEmptyID
	}
	params := c.streamParams(sourceID)
	params.Set("api_key", c.session.Token())
	return c.buildURL(streamPath(itemID), params), nil
}

// PlayerItem builds the HLS URL for an item together with the
// authentication headers. No request is made.
func (c *Client) PlayerItem(itemID, sourceID string) (*PlayerItem, error) {
	if itemID == "" || sourceID == "" {
		return nil, ErrEmptyID
	}
	return &PlayerItem{
		URL:    c.buildURL(streamPath(itemID), c.streamParams(sourceID)),
		Header: c.headers(false),
	}, nil
}

// ImageURL builds the URL of an item image. Zero maxWidth or quality select
// DefaultImageMaxWidth and DefaultImageQuality. No request is made.
func (c *Client) ImageURL(itemID string, imageType ImageType, maxWidth, quality int) (*url.URL, error) {
	if itemID == "" {
		return nil, ErrEmptyID
	}
	if !imageType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidImageType, string(imageType))
	}
	if maxWidth <= 0 {
		maxWidth = DefaultImageMaxWidth
	}
	if quality <= 0 {
		quality = DefaultImageQuality
	}

	params := url.Values{}
	params.Set("MaxWidth", strconv.Itoa(maxWidth))
	params.Set("Format", "jpg")
	params.Set("Quality", strconv.Itoa(quality))

	return c.buildURL("/Items/"+itemID+"/Images/"+string(imageType), params), nil
}
