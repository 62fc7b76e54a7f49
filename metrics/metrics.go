// Package metrics exposes Prometheus instrumentation shared by the media
// server client and the artwork resolver.
//
// Every outbound call records exactly one observation:
//
//	start := time.Now()
//	body, err := doSomething()
//	metrics.ObserveRequest(metrics.ClientJellyfin, "GetItems", metrics.OutcomeOf(err), time.Since(start))
package metrics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "abjc"

// Client label values.
const (
	ClientJellyfin = "jellyfin"
	ClientArtwork  = "artwork"
)

// Outcome label values that are not derived from a server status.
const (
	OutcomeSuccess   = "success"
	OutcomeTransport = "transport"
	OutcomeDecode    = "decode"
)

var (
	// RequestsTotal counts outbound calls by client, operation and outcome.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of outbound API calls",
		},
		[]string{"client", "operation", "outcome"},
	)

	// RequestDuration tracks the latency of outbound calls in seconds.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound API calls in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"client", "operation"},
	)
)

// Outcomer is implemented by errors that know their own outcome label.
type Outcomer interface {
	Outcome() string
}

// OutcomeOf maps an operation error to an outcome label.
func OutcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	var o Outcomer
	if errors.As(err, &o) {
		return o.Outcome()
	}
	return "error"
}

// ObserveRequest records one completed call.
func ObserveRequest(client, operation, outcome string, elapsed time.Duration) {
	RequestsTotal.WithLabelValues(client, operation, outcome).Inc()
	RequestDuration.WithLabelValues(client, operation).Observe(elapsed.Seconds())
}

// WriteText writes the abjc series gathered from g in the Prometheus text
// exposition format. Runtime and process collectors are skipped.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), namespace+"_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
