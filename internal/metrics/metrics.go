package metrics

import (
	"sync"
	"time"
)

type feedStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about feed calls and
// resolution outcomes, mirroring them to OpenTelemetry when configured.
type Recorder struct {
	mu          sync.Mutex
	feeds       map[string]*feedStats
	resolutions map[string]int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		feeds:       make(map[string]*feedStats),
		resolutions: make(map[string]int),
		otel:        otel,
	}
}

// RecordFeedAttempt increments counters for a feed call and stores the last observed latency.
func (r *Recorder) RecordFeedAttempt(feed string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(feed)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFeedAttempt(feed, duration, err)
	}
}

// RecordResolution counts the outcome of one display resolution pass.
func (r *Recorder) RecordResolution(outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.resolutions[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordResolution(outcome)
	}
}

// RecordFutureSearch tracks how many days a next-game search examined.
func (r *Recorder) RecordFutureSearch(days int, found bool) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordFutureSearch(days, found)
}

// RecordHTTPRequest tracks basic HTTP metrics for the status surface.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and degraded passes.
func (r *Recorder) RecordPollerCycle(duration time.Duration, degraded bool) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, degraded)
}

// FeedCalls returns the total attempts recorded for a feed.
func (r *Recorder) FeedCalls(feed string) int {
	return r.Snapshot(feed).Calls
}

// FeedErrors returns the total failed attempts recorded for a feed.
func (r *Recorder) FeedErrors(feed string) int {
	return r.Snapshot(feed).Errors
}

// LastCallLatency returns the last recorded latency for a feed call.
func (r *Recorder) LastCallLatency(feed string) time.Duration {
	return r.Snapshot(feed).LastCallLatency
}

// Resolutions returns how many passes ended with outcome.
func (r *Recorder) Resolutions(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolutions[outcome]
}

// Snapshot is a copy of the current stats for a feed.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(feed string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.feeds[feed]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(feed string) *feedStats {
	stats, ok := r.feeds[feed]
	if !ok {
		stats = &feedStats{}
		r.feeds[feed] = stats
	}
	return stats
}
