// Package jellyfin provides a client for the Jellyfin/Emby REST API.
//
// The client authenticates a user, browses the catalog (movies, series,
// seasons, episodes, people, images), reports playback progress and builds
// stream and image URLs for a player.
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := jellyfin.NewClient(jellyfin.Config{
//		Host:  "media.example.com",
//		Port:  8096,
//		HTTPS: true,
//	}, logger, jellyfin.WithTimeout(30*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if _, err := client.Authorize(ctx, "alice", "secret"); err != nil {
//		log.Fatal(err)
//	}
//
//	movies, err := client.GetItems(ctx, jellyfin.MediaTypeMovie)
//
// # Request Pipeline
//
// Every call builds its request, sends it once, classifies the status and
// only then decodes the body. There are no retries and no caching. The first
// failure wins, in this order: transport, status, decode.
//
// Requests carry an X-Emby-Authorization header identifying the client and
// device, and an X-Emby-Token header with the session token ("" when
// unauthenticated). Authorize is the only request sent without a token.
//
// # Error Handling
//
//   - *TransportError: no HTTP response (connection refused, timeout)
//   - *ServerError: non-2xx status, matched by errors.Is against ErrUnauthorized,
//     ErrForbidden, ErrNotFound, ErrServer or ErrUnknownStatus
//   - *DecodeError: 2xx body of the wrong shape
//   - ErrEmptyID, ErrEmptySearchTerm, ErrEmptyCredentials, ErrNegativePosition,
//     ErrInvalidMediaType, ErrInvalidImageType: rejected before any request
//
//	var serverErr *jellyfin.ServerError
//	if errors.As(err, &serverErr) && serverErr.IsUnauthorized() {
//		// log in again
//	}
package jellyfin
