package filter

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/abjc/jellyfin"
)

// ApplyOption configures Apply
type ApplyOption func(*applyOptions)

type applyOptions struct {
	workers   int
	threshold int
}

// WithWorkers sets the number of concurrent evaluations
func WithWorkers(workers int) ApplyOption {
	return func(o *applyOptions) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

// WithConcurrencyThreshold sets the list size below which items are
// evaluated sequentially
func WithConcurrencyThreshold(n int) ApplyOption {
	return func(o *applyOptions) {
		if n >= 0 {
			o.threshold = n
		}
	}
}

// Apply returns the items matching f, in their original order. Items whose
// evaluation fails are dropped and their errors joined into the returned
// error; the matches are returned either way.
func Apply(ctx context.Context, f Filter, items []jellyfin.Item, opts ...ApplyOption) ([]jellyfin.Item, error) {
	options := applyOptions{workers: runtime.GOMAXPROCS(0), threshold: 100}
	for _, opt := range opts {
		opt(&options)
	}

	if len(items) == 0 {
		return []jellyfin.Item{}, nil
	}

	matched := make([]bool, len(items))
	errs := make([]error, len(items))

	if len(items) < options.threshold {
		for i, item := range items {
			matched[i], errs[i] = f.Match(item)
		}
	} else {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(options.workers)
		for i, item := range items {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				matched[i], errs[i] = f.Match(item)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	out := make([]jellyfin.Item, 0, len(items))
	for i, item := range items {
		if matched[i] {
			out = append(out, item)
		}
	}
	return out, errors.Join(errs...)
}
