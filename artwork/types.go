package artwork

import "github.com/s0up4200/abjc/jellyfin"

// SearchResponse is the body returned by the incremental search endpoint.
type SearchResponse struct {
	Data SearchData `json:"data"`
	UTSK string     `json:"utsk"`
}

// SearchData wraps the echoed query and the result canvas.
type SearchData struct {
	Q      string `json:"q"`
	Canvas Canvas `json:"canvas"`
}

// Canvas groups result shelves.
type Canvas struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	NextToken string  `json:"nextToken,omitempty"`
	Shelves   []Shelf `json:"shelves"`
}

// Shelf is one titled group of candidates.
type Shelf struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Items []Candidate `json:"items"`
}

// CandidateType is the catalog's kind of a candidate.
type CandidateType string

const (
	CandidateMovie       CandidateType = "Movie"
	CandidateMovieBundle CandidateType = "MovieBundle"
	CandidateShow        CandidateType = "Show"
)

// JellyfinType maps the catalog kind onto a server media type. Shows become
// series; every other kind is treated as a movie.
func (t CandidateType) JellyfinType() jellyfin.MediaType {
	if t == CandidateShow {
		return jellyfin.MediaTypeSeries
	}
	return jellyfin.MediaTypeMovie
}

// Candidate is one search hit.
type Candidate struct {
	ID          string        `json:"id"`
	Type        CandidateType `json:"type"`
	Title       string        `json:"title"`
	Images      Images        `json:"images"`
	ReleaseDate *int64        `json:"releaseDate,omitempty"`
	Duration    *int64        `json:"duration,omitempty"`
}

// Images holds the artwork variants of a candidate. Any of them may be absent.
type Images struct {
	CoverArt                               *ImageContainer `json:"coverArt,omitempty"`
	CoverArt16X9                           *ImageContainer `json:"coverArt16X9,omitempty"`
	PreviewFrame                           *ImageContainer `json:"previewFrame,omitempty"`
	ContentLogo                            *ImageContainer `json:"contentLogo,omitempty"`
	FullColorContentLogo                   *ImageContainer `json:"fullColorContentLogo,omitempty"`
	SingleColorContentLogo                 *ImageContainer `json:"singleColorContentLogo,omitempty"`
	CenteredFullScreenBackgroundImage      *ImageContainer `json:"centeredFullScreenBackgroundImage,omitempty"`
	CenteredFullScreenBackgroundSmallImage *ImageContainer `json:"centeredFullScreenBackgroundSmallImage,omitempty"`
	FullScreenBackground                   *ImageContainer `json:"fullScreenBackground,omitempty"`
	BannerUberImage                        *ImageContainer `json:"bannerUberImage,omitempty"`
}

// ImageContainer describes one templated image.
type ImageContainer struct {
	Width                int    `json:"width"`
	Height               int    `json:"height"`
	URL                  string `json:"url"`
	JoeColor             string `json:"joeColor,omitempty"`
	SupportsLayeredImage *bool  `json:"supportsLayeredImage,omitempty"`
	IsP3                 *bool  `json:"isP3,omitempty"`
}

// Object is the resolved artwork for a title.
type Object struct {
	Cover ImageURL
	// Logo is nil when the candidate carries no content logo
	Logo *ImageURL
	// Type is the server media type of the matched candidate
	Type jellyfin.MediaType
}

// ToObject converts a candidate into resolved artwork. A candidate without a
// 16:9 cover fails with ErrNoMatch.
func (c Candidate) ToObject() (*Object, error) {
	if c.Images.CoverArt16X9 == nil || c.Images.CoverArt16X9.URL == "" {
		return nil, ErrNoMatch
	}
	cover, err := NewImageURL(c.Images.CoverArt16X9.URL)
	if err != nil {
		return nil, err
	}

	obj := &Object{Cover: cover, Type: c.Type.JellyfinType()}

	logo := c.Images.FullColorContentLogo
	if logo == nil {
		logo = c.Images.ContentLogo
	}
	if logo != nil && logo.URL != "" {
		if u, err := NewImageURL(logo.URL); err == nil {
			obj.Logo = &u
		}
	}
	return obj, nil
}
