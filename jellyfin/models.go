package jellyfin

import "time"

// ItemResponse is the paginated envelope returned by list endpoints.
// len(Items) may be smaller than TotalRecordCount.
type ItemResponse[T any] struct {
	Items            []T `json:"Items"`
	TotalRecordCount int `json:"TotalRecordCount"`
	StartIndex       int `json:"StartIndex"`
}

// SystemInfo describes the server.
type SystemInfo struct {
	ID                     string `json:"Id"`
	ServerName             string `json:"ServerName"`
	Version                string `json:"Version"`
	ProductName            string `json:"ProductName"`
	OperatingSystem        string `json:"OperatingSystem"`
	LocalAddress           string `json:"LocalAddress"`
	StartupWizardCompleted bool   `json:"StartupWizardCompleted"`
	HasPendingRestart      bool   `json:"HasPendingRestart"`
	HasUpdateAvailable     bool   `json:"HasUpdateAvailable"`
}

// User is the account record embedded in an authentication response.
type User struct {
	ID                        string     `json:"Id"`
	Name                      string     `json:"Name"`
	ServerID                  string     `json:"ServerId"`
	HasPassword               bool       `json:"HasPassword"`
	HasConfiguredPassword     bool       `json:"HasConfiguredPassword"`
	EnableAutoLogin           bool       `json:"EnableAutoLogin"`
	LastLoginDate             *time.Time `json:"LastLoginDate,omitempty"`
	LastActivityDate          *time.Time `json:"LastActivityDate,omitempty"`
	PrimaryImageTag           string     `json:"PrimaryImageTag,omitempty"`
	HasConfiguredEasyPassword bool       `json:"HasConfiguredEasyPassword"`
}

// SessionInfo is the server-side session created by authentication.
type SessionInfo struct {
	ID                 string `json:"Id"`
	UserID             string `json:"UserId"`
	UserName           string `json:"UserName"`
	Client             string `json:"Client"`
	DeviceID           string `json:"DeviceId"`
	DeviceName         string `json:"DeviceName"`
	ApplicationVersion string `json:"ApplicationVersion"`
}

// AuthResponse is returned by AuthenticateByName.
type AuthResponse struct {
	User        User        `json:"User"`
	SessionInfo SessionInfo `json:"SessionInfo"`
	AccessToken string      `json:"AccessToken"`
	ServerID    string      `json:"ServerId"`
}

// UserData holds per-user state for an item.
type UserData struct {
	PlaybackPositionTicks int64      `json:"PlaybackPositionTicks"`
	PlayCount             int        `json:"PlayCount"`
	IsFavorite            bool       `json:"IsFavorite"`
	Played                bool       `json:"Played"`
	PlayedPercentage      float64    `json:"PlayedPercentage,omitempty"`
	UnplayedItemCount     int        `json:"UnplayedItemCount,omitempty"`
	LastPlayedDate        *time.Time `json:"LastPlayedDate,omitempty"`
	Key                   string     `json:"Key,omitempty"`
}

// Item is the common shape of every catalog entry.
type Item struct {
	ID                string            `json:"Id"`
	Name              string            `json:"Name"`
	OriginalTitle     string            `json:"OriginalTitle,omitempty"`
	ServerID          string            `json:"ServerId,omitempty"`
	Type              string            `json:"Type"`
	MediaType         string            `json:"MediaType,omitempty"`
	Overview          string            `json:"Overview,omitempty"`
	Genres            []string          `json:"Genres,omitempty"`
	ProductionYear    int               `json:"ProductionYear,omitempty"`
	PremiereDate      *time.Time        `json:"PremiereDate,omitempty"`
	DateCreated       *time.Time        `json:"DateCreated,omitempty"`
	CommunityRating   float64           `json:"CommunityRating,omitempty"`
	CriticRating      float64           `json:"CriticRating,omitempty"`
	OfficialRating    string            `json:"OfficialRating,omitempty"`
	RunTimeTicks      int64             `json:"RunTimeTicks,omitempty"`
	IsFolder          bool              `json:"IsFolder"`
	ParentID          string            `json:"ParentId,omitempty"`
	SeriesID          string            `json:"SeriesId,omitempty"`
	SeriesName        string            `json:"SeriesName,omitempty"`
	SeasonID          string            `json:"SeasonId,omitempty"`
	IndexNumber       int               `json:"IndexNumber,omitempty"`
	ParentIndexNumber int               `json:"ParentIndexNumber,omitempty"`
	ImageTags         map[string]string `json:"ImageTags,omitempty"`
	BackdropImageTags []string          `json:"BackdropImageTags,omitempty"`
	UserData          *UserData         `json:"UserData,omitempty"`
}

// RuntimeMinutes converts RunTimeTicks (100ns units) to whole minutes.
func (i Item) RuntimeMinutes() int {
	return int(i.RunTimeTicks / TicksPerSecond / 60)
}

// Played reports whether the current user has watched the item.
func (i Item) Played() bool {
	return i.UserData != nil && i.UserData.Played
}

// Favorite reports whether the current user marked the item as favorite.
func (i Item) Favorite() bool {
	return i.UserData != nil && i.UserData.IsFavorite
}

// Person is a cast or crew member, either embedded in an item or returned by
// the Persons endpoint.
type Person struct {
	ID              string `json:"Id"`
	Name            string `json:"Name"`
	Role            string `json:"Role,omitempty"`
	Type            string `json:"Type"`
	PrimaryImageTag string `json:"PrimaryImageTag,omitempty"`
}

// MediaStream describes one audio, video or subtitle track.
type MediaStream struct {
	Index        int    `json:"Index"`
	Type         string `json:"Type"`
	Codec        string `json:"Codec,omitempty"`
	Language     string `json:"Language,omitempty"`
	DisplayTitle string `json:"DisplayTitle,omitempty"`
	Width        int    `json:"Width,omitempty"`
	Height       int    `json:"Height,omitempty"`
	Channels     int    `json:"Channels,omitempty"`
	BitRate      int64  `json:"BitRate,omitempty"`
	IsDefault    bool   `json:"IsDefault"`
	IsExternal   bool   `json:"IsExternal"`
}

// MediaSource is a playable version of an item.
type MediaSource struct {
	ID                   string        `json:"Id"`
	Name                 string        `json:"Name,omitempty"`
	Path                 string        `json:"Path,omitempty"`
	Container            string        `json:"Container,omitempty"`
	Size                 int64         `json:"Size,omitempty"`
	Bitrate              int64         `json:"Bitrate,omitempty"`
	RunTimeTicks         int64         `json:"RunTimeTicks,omitempty"`
	SupportsDirectPlay   bool          `json:"SupportsDirectPlay"`
	SupportsDirectStream bool          `json:"SupportsDirectStream"`
	SupportsTranscoding  bool          `json:"SupportsTranscoding"`
	MediaStreams         []MediaStream `json:"MediaStreams,omitempty"`
}

// Movie is a movie item with its playable sources and people.
type Movie struct {
	Item
	People       []Person      `json:"People,omitempty"`
	MediaSources []MediaSource `json:"MediaSources,omitempty"`
	Taglines     []string      `json:"Taglines,omitempty"`
}

// Series is a show item.
type Series struct {
	Item
	People       []Person      `json:"People,omitempty"`
	MediaSources []MediaSource `json:"MediaSources,omitempty"`
	Status       string        `json:"Status,omitempty"`
	EndDate      *time.Time    `json:"EndDate,omitempty"`
}

// Season is a season of a series.
type Season struct {
	Item
	People []Person `json:"People,omitempty"`
}

// Episode is a single episode of a series.
type Episode struct {
	Item
	People       []Person      `json:"People,omitempty"`
	MediaSources []MediaSource `json:"MediaSources,omitempty"`
}

// Image describes one stored image of an item.
type Image struct {
	ImageType  ImageType `json:"ImageType"`
	ImageIndex *int      `json:"ImageIndex,omitempty"`
	ImageTag   string    `json:"ImageTag,omitempty"`
	Path       string    `json:"Path,omitempty"`
	BlurHash   string    `json:"BlurHash,omitempty"`
	Height     int       `json:"Height,omitempty"`
	Width      int       `json:"Width,omitempty"`
	Size       int64     `json:"Size,omitempty"`
}

// TicksPerSecond is the number of 100ns ticks in one second.
const TicksPerSecond int64 = 10_000_000

// PlaybackInfo is the body of start, progress and stop reports.
type PlaybackInfo struct {
	ItemID        string `json:"ItemId"`
	PositionTicks int64  `json:"PositionTicks"`
}
