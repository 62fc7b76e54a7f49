package jellyfin

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncDeliversExactlyOnce(t *testing.T) {
	ch := Async(context.Background(), func(ctx context.Context) (int, error) {
		return 7, nil
	})

	res, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, 7, res.Value)
	assert.NoError(t, res.Err)

	_, ok = <-ch
	assert.False(t, ok, "channel should be closed after one result")
}

func TestAsyncDeliversError(t *testing.T) {
	boom := errors.New("boom")
	res := <-Async(context.Background(), func(ctx context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, res.Err, boom)
}

func TestAsyncDoesNotBlockWithoutReader(t *testing.T) {
	done := make(chan struct{})
	_ = Async(context.Background(), func(ctx context.Context) (struct{}, error) {
		defer close(done)
		return struct{}{}, nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async call did not complete")
	}
}

func TestAsyncWithClient(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"Id":"m1"}]`))
	}, WithUser(authedUser()))

	res := <-Async(context.Background(), func(ctx context.Context) ([]Item, error) {
		return client.GetLatest(ctx, MediaTypeMovie)
	})
	require.NoError(t, res.Err)
	require.Len(t, res.Value, 1)
	assert.Equal(t, "m1", res.Value[0].ID)
}
