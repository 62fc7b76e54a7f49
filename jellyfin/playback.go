package jellyfin

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// StopResult carries the independent outcomes of the two requests issued by
// StopPlayback.
type StopResult struct {
	// Session is the outcome of the stop report
	Session error
	// Encoding is the outcome of the transcode teardown
	Encoding error
}

// Err returns the first non-nil outcome, preferring the stop report.
func (r StopResult) Err() error {
	if r.Session != nil {
		return r.Session
	}
	return r.Encoding
}

func validatePlayback(itemID string, positionTicks int64) error {
	if itemID == "" {
		return ErrEmptyID
	}
	if positionTicks < 0 {
		return ErrNegativePosition
	}
	return nil
}

// StartPlayback reports that playback of an item started
func (c *Client) StartPlayback(ctx context.Context, itemID string, positionTicks int64) error {
	if err := validatePlayback(itemID, positionTicks); err != nil {
		return err
	}

	return c.exec(ctx, request{
		op:     "StartPlayback",
		method: http.MethodPost,
		path:   "/Sessions/Playing",
		body:   PlaybackInfo{ItemID: itemID, PositionTicks: positionTicks},
	})
}

// ReportPlayback reports the current playback position
func (c *Client) ReportPlayback(ctx context.Context, itemID string, positionTicks int64) error {
	if err := validatePlayback(itemID, positionTicks); err != nil {
		return err
	}

	return c.exec(ctx, request{
		op:     "ReportPlayback",
		method: http.MethodPost,
		path:   "/Sessions/Playing/Progress",
		body:   PlaybackInfo{ItemID: itemID, PositionTicks: positionTicks},
	})
}

// StopPlayback reports that playback stopped and tears down this device's
// active transcodes. Both requests are always issued, concurrently, and
// neither outcome affects the other.
func (c *Client) StopPlayback(ctx context.Context, itemID string, positionTicks int64) StopResult {
	if err := validatePlayback(itemID, positionTicks); err != nil {
		return StopResult{Session: err, Encoding: err}
	}

	var result StopResult
	var g errgroup.Group

	g.Go(func() error {
		result.Session = c.exec(ctx, request{
			op:     "StopPlayback",
			method: http.MethodPost,
			path:   "/Sessions/Playing/Stop",
			body:   PlaybackInfo{ItemID: itemID, PositionTicks: positionTicks},
		})
		return nil
	})

	g.Go(func() error {
		params := url.Values{}
		params.Set("DeviceId", c.deviceID)
		result.Encoding = c.exec(ctx, request{
			op:     "StopEncoding",
			method: http.MethodDelete,
			path:   "/Videos/ActiveEncodings",
			query:  params,
		})
		return nil
	})

	_ = g.Wait()
	return result
}
