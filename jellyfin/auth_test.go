package jellyfin

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authResponseJSON = `{
	"User": {"Id": "user-42", "Name": "alice", "ServerId": "srv-1", "HasPassword": true},
	"SessionInfo": {"Id": "sess", "UserId": "user-42", "DeviceId": "device-1"},
	"AccessToken": "fresh-token",
	"ServerId": "srv-1"
}`

func TestAuthorize(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Users/AuthenticateByName", r.URL.Path)
		_, hasToken := r.Header["X-Emby-Token"]
		assert.False(t, hasToken)
		assert.Contains(t, r.Header.Get("X-Emby-Authorization"), "DeviceId=device-1")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, map[string]string{"Username": "alice", "Pw": "secret"}, payload)

		_, _ = w.Write([]byte(authResponseJSON))
	})

	resp, err := client.Authorize(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", resp.AccessToken)

	user := client.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, AuthUser{
		ID:       "user-42",
		Name:     "alice",
		ServerID: "srv-1",
		DeviceID: "device-1",
		Token:    "fresh-token",
	}, *user)
}

func TestAuthorizeKeepsSessionOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ``, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, `oops`, ErrServer},
		{"malformed body", http.StatusOK, `{"User": [}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, WithUser(authedUser()))

			_, err := client.Authorize(context.Background(), "alice", "wrong")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				var decodeErr *DecodeError
				assert.ErrorAs(t, err, &decodeErr)
			}

			assert.Equal(t, authedUser(), client.CurrentUser())
		})
	}
}

func TestAuthorizeRequiresUsername(t *testing.T) {
	client, err := NewClient(Config{Host: "h"}, nopLogger(), WithHTTPClient(failingDoer{t}))
	require.NoError(t, err)

	_, err = client.Authorize(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestAuthorizeUsesAuthTimeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}, WithAuthTimeout(50*time.Millisecond), WithTimeout(10*time.Second))

	start := time.Now()
	_, err := client.Authorize(context.Background(), "alice", "secret")
	elapsed := time.Since(start)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 2*time.Second)
	assert.Nil(t, client.CurrentUser())
}

func TestPing(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/System/Ping", r.URL.Path)
		_, _ = w.Write([]byte(`"Jellyfin Server"`))
	})

	assert.NoError(t, client.Ping(context.Background()))
}
