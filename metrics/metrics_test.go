package metrics

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outcomeErr string

func (e outcomeErr) Error() string   { return string(e) }
func (e outcomeErr) Outcome() string { return string(e) }

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, OutcomeSuccess},
		{"outcomer", outcomeErr("not_found"), "not_found"},
		{"plain error", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutcomeOf(tt.err))
		})
	}
}

func TestObserveRequest(t *testing.T) {
	counter := RequestsTotal.WithLabelValues(ClientJellyfin, "TestObserve", OutcomeSuccess)
	before := testutil.ToFloat64(counter)

	ObserveRequest(ClientJellyfin, "TestObserve", OutcomeSuccess, 15*time.Millisecond)
	ObserveRequest(ClientJellyfin, "TestObserve", OutcomeSuccess, 20*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestOutcomeOfWrapped(t *testing.T) {
	err := fmt.Errorf("fetch items: %w", outcomeErr("unauthorized"))
	assert.Equal(t, "unauthorized", OutcomeOf(err))
}

func TestWriteText(t *testing.T) {
	ObserveRequest(ClientArtwork, "TestWriteText", OutcomeTransport, 5*time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, prometheus.DefaultGatherer))

	out := buf.String()
	assert.Contains(t, out, `abjc_requests_total{client="artwork",operation="TestWriteText",outcome="transport"}`)
	assert.Contains(t, out, "abjc_request_duration_seconds_bucket")
	assert.NotContains(t, out, "go_goroutines")
}
