package jellyfin

import "context"

// Result is the single outcome of an asynchronous call.
type Result[T any] struct {
	Value T
	Err   error
}

// Async runs fn on its own goroutine and delivers exactly one Result on the
// returned channel, which is then closed. The channel is buffered, so the
// goroutine never blocks if the caller stops listening.
//
//	ch := jellyfin.Async(ctx, func(ctx context.Context) ([]jellyfin.Item, error) {
//		return client.GetLatest(ctx, jellyfin.MediaTypeMovie)
//	})
//	res := <-ch
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}
