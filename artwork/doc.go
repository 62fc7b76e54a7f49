// Package artwork resolves supplemental cover and logo images for a title by
// searching an external media catalog.
//
// The catalog answers a free-text query with shelves of candidates. The
// resolver flattens the shelves in order and takes the first candidate; it
// does not rank by title similarity, year or type. Image URLs come back as
// templates ending in "/{w}x{h}.{f}"; ImageURL strips that suffix so callers
// can request any size:
//
//	resolver, _ := artwork.NewResolver(logger)
//	obj, err := resolver.Fetch(ctx, "Arrival", "")
//	if errors.Is(err, artwork.ErrNoMatch) {
//		// fall back to server artwork
//	}
//	cover := obj.Cover.URL(1600, 900)
package artwork
