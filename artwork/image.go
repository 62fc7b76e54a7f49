package artwork

import (
	"fmt"
	"net/url"
	"strings"
)

// sizePlaceholder is the templated suffix the catalog appends to image URLs.
const sizePlaceholder = "/{w}x{h}.{f}"

// ImageURL is an image location that can be rendered at any size.
type ImageURL struct {
	base *url.URL
}

// NewImageURL parses a templated image URL, dropping the size placeholder.
func NewImageURL(template string) (ImageURL, error) {
	raw := strings.ReplaceAll(template, sizePlaceholder, "")
	u, err := url.Parse(raw)
	if err != nil {
		return ImageURL{}, fmt.Errorf("invalid image url %q: %w", template, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return ImageURL{}, fmt.Errorf("invalid image url %q: missing scheme or host", template)
	}
	return ImageURL{base: u}, nil
}

// Base returns a copy of the placeholder-free base URL.
func (i ImageURL) Base() *url.URL {
	if i.base == nil {
		return nil
	}
	u := *i.base
	return &u
}

// URL renders the image at width x height as JPEG.
func (i ImageURL) URL(width, height int) *url.URL {
	u := i.Base()
	if u == nil {
		return nil
	}
	size := fmt.Sprintf("/%dx%d.jpeg", width, height)
	// RawPath keeps escapes such as %2F from the stored base
	u.RawPath = strings.TrimSuffix(u.EscapedPath(), "/") + size
	u.Path = strings.TrimSuffix(u.Path, "/") + size
	return u
}

func (i ImageURL) String() string {
	if i.base == nil {
		return ""
	}
	return i.base.String()
}
