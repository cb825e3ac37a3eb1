// Package metrics collects lightweight in-memory stats about upstream calls.
package metrics

import (
	"log/slog"
	"sync"
	"time"

	"nba-shotchart/internal/logging"
)

type endpointStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*endpointStats
}

func NewRecorder() *Recorder {
	return &Recorder{stats: make(map[string]*endpointStats)}
}

// RecordCall increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := r.stats[endpoint]
	if stats == nil {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
}

// EndpointSummary is a read-only view of one endpoint's counters.
type EndpointSummary struct {
	Endpoint        string
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// Summaries returns a snapshot of all endpoint counters.
func (r *Recorder) Summaries() []EndpointSummary {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]EndpointSummary, 0, len(r.stats))
	for endpoint, stats := range r.stats {
		out = append(out, EndpointSummary{
			Endpoint:        endpoint,
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		})
	}
	return out
}

// LogSummary emits one debug line per endpoint at the end of a run.
func (r *Recorder) LogSummary(logger *slog.Logger) {
	for _, s := range r.Summaries() {
		logging.Debug(logger, "upstream call summary",
			logging.FieldEndpoint, s.Endpoint,
			"calls", s.Calls,
			"errors", s.Errors,
			logging.FieldDurationMS, s.LastCallLatency.Milliseconds(),
		)
	}
}
