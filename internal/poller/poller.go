package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/logging"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
)

const (
	defaultInterval   = 30 * time.Second
	defaultMaxBackoff = 5 * time.Minute
)

// Resolver runs one display resolution pass.
type Resolver interface {
	Resolve(ctx context.Context) games.DisplayState
}

// Poller refreshes the display on an interval. After a pass that could
// only show the placeholder it waits on an exponential backoff capped at
// the configured maximum, returning to the base interval once the feed
// recovers.
type Poller struct {
	resolver Resolver
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	backoff  *backoff.ExponentialBackOff
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
	exited   chan struct{}

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastOutcome         games.StateKind
	LastAttempt         time.Time
	LastSuccess         time.Time
	NextDelay           time.Duration
}

// IsReady reports whether a pass has succeeded and the latest one did not
// fall back to the placeholder.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero() && s.LastOutcome != games.StateUnavailable
}

// New constructs a Poller with sane defaults.
func New(resolver Resolver, logger *slog.Logger, recorder *metrics.Recorder, interval, maxBackoff time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if maxBackoff < interval {
		maxBackoff = defaultMaxBackoff
		if maxBackoff < interval {
			maxBackoff = interval
		}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = interval
	b.MaxInterval = maxBackoff
	// No jitter: a single device, and delays must stay within [interval, maxBackoff].
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	return &Poller{
		resolver: resolver,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		backoff:  b,
		now:      time.Now,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	go func() {
		defer close(p.exited)
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))

		// Draw something on boot.
		delay := p.pollOnce(ctx)
		timer := time.NewTimer(delay)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.logInfo("poller stopped")
				return
			case <-timer.C:
				timer.Reset(p.pollOnce(ctx))
			}
		}
	}()
}

// Stop halts the polling loop and waits for an in-flight pass to finish
// or ctx to expire.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pollOnce runs a pass and returns how long to wait before the next one.
func (p *Poller) pollOnce(ctx context.Context) time.Duration {
	start := p.now()
	p.recordAttempt(start)

	state := p.resolver.Resolve(ctx)
	elapsed := time.Since(start)
	degraded := state.Degraded()
	p.metrics.RecordPollerCycle(elapsed, degraded)

	var delay time.Duration
	if degraded {
		delay = p.nextBackOff()
		p.recordFailure(state.Kind, delay)
		p.logWarn("display degraded, backing off",
			logging.FieldTeam, state.Team,
			"next_delay", delay.String(),
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		return delay
	}

	p.backoff.Reset()
	delay = p.interval
	p.recordSuccess(state.Kind, start, delay)
	p.logDebug("display refreshed",
		logging.FieldTeam, state.Team,
		logging.FieldOutcome, string(state.Kind),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return delay
}

// nextBackOff returns the next degraded delay clamped to [interval, maxBackoff].
func (p *Poller) nextBackOff() time.Duration {
	delay := p.backoff.NextBackOff()
	if delay == backoff.Stop || delay > p.backoff.MaxInterval {
		return p.backoff.MaxInterval
	}
	if delay < p.interval {
		return p.interval
	}
	return delay
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) logWarn(msg string, args ...any) {
	logging.Warn(p.logger, msg, args...)
}

func (p *Poller) logDebug(msg string, args ...any) {
	logging.Debug(p.logger, msg, args...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(kind games.StateKind, at time.Time, next time.Duration) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastOutcome = kind
	p.status.LastSuccess = at
	p.status.NextDelay = next
}

func (p *Poller) recordFailure(kind games.StateKind, next time.Duration) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	p.status.LastOutcome = kind
	p.status.NextDelay = next
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
