package jellyfin

import (
	"fmt"
	"strings"
)

// MediaType narrows list and search endpoints to a single kind of item.
// The zero value means no filter, which the server receives as "Series,Movie".
type MediaType string

const (
	MediaTypeAny     MediaType = ""
	MediaTypeMovie   MediaType = "Movie"
	MediaTypeSeries  MediaType = "Series"
	MediaTypeSeason  MediaType = "Season"
	MediaTypeEpisode MediaType = "Episode"
)

// defaultIncludeTypes is sent when no media type is requested.
const defaultIncludeTypes = "Series,Movie"

// Valid reports whether m is one of the known media types or the zero value.
func (m MediaType) Valid() bool {
	switch m {
	case MediaTypeAny, MediaTypeMovie, MediaTypeSeries, MediaTypeSeason, MediaTypeEpisode:
		return true
	}
	return false
}

// IncludeItemTypes returns the value for the IncludeItemTypes query parameter.
func (m MediaType) IncludeItemTypes() string {
	if m == MediaTypeAny {
		return defaultIncludeTypes
	}
	return string(m)
}

func (m MediaType) String() string {
	if m == MediaTypeAny {
		return "any"
	}
	return string(m)
}

// ParseMediaType parses a case-insensitive media type name. The empty string
// and "any" yield MediaTypeAny.
func ParseMediaType(s string) (MediaType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return MediaTypeAny, nil
	case "movie":
		return MediaTypeMovie, nil
	case "series":
		return MediaTypeSeries, nil
	case "season":
		return MediaTypeSeason, nil
	case "episode":
		return MediaTypeEpisode, nil
	}
	return MediaTypeAny, fmt.Errorf("%w: %q", ErrInvalidMediaType, s)
}

// ImageType identifies one of the image slots an item can carry.
type ImageType string

const (
	ImageTypePrimary    ImageType = "Primary"
	ImageTypeArt        ImageType = "Art"
	ImageTypeBackdrop   ImageType = "Backdrop"
	ImageTypeBanner     ImageType = "Banner"
	ImageTypeLogo       ImageType = "Logo"
	ImageTypeThumb      ImageType = "Thumb"
	ImageTypeDisc       ImageType = "Disc"
	ImageTypeBox        ImageType = "Box"
	ImageTypeScreenshot ImageType = "Screenshot"
	ImageTypeMenu       ImageType = "Menu"
	ImageTypeChapter    ImageType = "Chapter"
	ImageTypeBoxRear    ImageType = "BoxRear"
	ImageTypeProfile    ImageType = "Profile"
)

var imageTypes = []ImageType{
	ImageTypePrimary, ImageTypeArt, ImageTypeBackdrop, ImageTypeBanner,
	ImageTypeLogo, ImageTypeThumb, ImageTypeDisc, ImageTypeBox,
	ImageTypeScreenshot, ImageTypeMenu, ImageTypeChapter, ImageTypeBoxRear,
	ImageTypeProfile,
}

// ImageTypes returns every known image type.
func ImageTypes() []ImageType {
	out := make([]ImageType, len(imageTypes))
	copy(out, imageTypes)
	return out
}

// Valid reports whether t is a known image type.
func (t ImageType) Valid() bool {
	for _, known := range imageTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t ImageType) String() string { return string(t) }

// ParseImageType parses a case-insensitive image type name.
func ParseImageType(s string) (ImageType, error) {
	for _, known := range imageTypes {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidImageType, s)
}
