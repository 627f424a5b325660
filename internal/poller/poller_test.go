package poller

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/testutil"
)

type stubResolver struct {
	mu     sync.Mutex
	kind   games.StateKind
	calls  atomic.Int32
	notify chan struct{}
}

func (s *stubResolver) Resolve(ctx context.Context) games.DisplayState {
	_ = ctx
	s.calls.Add(1)
	if s.notify != nil {
		select {
		case s.notify <- struct{}{}:
		default:
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return games.DisplayState{Kind: s.kind, Team: "Celtics"}
}

func (s *stubResolver) set(kind games.StateKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kind = kind
}

func TestPollerResolvesOnBootAndOnInterval(t *testing.T) {
	res := &stubResolver{kind: games.StateLive, notify: make(chan struct{}, 1)}
	p := New(res, nil, nil, 10*time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-res.notify:
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("timed out waiting for pass %d", i+1)
		}
	}

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
	if res.calls.Load() < 2 {
		t.Fatalf("expected at least two passes, got %d", res.calls.Load())
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	res := &stubResolver{kind: games.StateLive, notify: make(chan struct{}, 1)}
	p := New(res, nil, nil, 5*time.Millisecond, time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)
	select {
	case <-res.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial pass")
	}

	cancel()
	_ = p.Stop(context.Background())

	callsAfterStop := res.calls.Load()
	time.Sleep(20 * time.Millisecond)
	if res.calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional passes after stop; before=%d after=%d", callsAfterStop, res.calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&stubResolver{}, nil, nil, time.Hour, 0)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	res := &stubResolver{kind: games.StateLive}
	p := New(res, nil, nil, time.Hour, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // should no-op

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
	if got := res.calls.Load(); got != 1 {
		t.Fatalf("expected one boot pass, got %d", got)
	}
}

func TestPollerDefaults(t *testing.T) {
	p := New(&stubResolver{}, nil, nil, 0, 0)
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.interval)
	}
	if p.backoff.MaxInterval != defaultMaxBackoff {
		t.Fatalf("expected default max backoff %s, got %s", defaultMaxBackoff, p.backoff.MaxInterval)
	}

	p = New(&stubResolver{}, nil, nil, 10*time.Minute, time.Minute)
	if p.backoff.MaxInterval != 10*time.Minute {
		t.Fatalf("expected max backoff raised to interval, got %s", p.backoff.MaxInterval)
	}
}

func TestPollerBacksOffWhileDegraded(t *testing.T) {
	res := &stubResolver{kind: games.StateUnavailable}
	p := New(res, nil, nil, time.Second, 8*time.Second)
	ctx := context.Background()

	var delays []time.Duration
	for i := 0; i < 5; i++ {
		delays = append(delays, p.pollOnce(ctx))
	}
	want := []time.Duration{time.Second, 1500 * time.Millisecond, 2250 * time.Millisecond, 3375 * time.Millisecond, 5062500 * time.Microsecond}
	for i := range want {
		if delays[i] != want[i] {
			t.Fatalf("delay %d: expected %s, got %s", i, want[i], delays[i])
		}
	}
	for i := 0; i < 5; i++ {
		if d := p.pollOnce(ctx); d > 8*time.Second {
			t.Fatalf("expected delay capped at 8s, got %s", d)
		}
	}

	status := p.Status()
	if status.ConsecutiveFailures != 10 || status.IsReady() {
		t.Fatalf("expected 10 failures and not ready, got %+v", status)
	}

	res.set(games.StateUpcoming)
	if d := p.pollOnce(ctx); d != time.Second {
		t.Fatalf("expected base interval after recovery, got %s", d)
	}
	res.set(games.StateUnavailable)
	if d := p.pollOnce(ctx); d != time.Second {
		t.Fatalf("expected backoff reset after recovery, got %s", d)
	}
}

func TestPollerDegradedDelaysStayWithinBounds(t *testing.T) {
	const (
		interval = 10 * time.Second
		ceiling  = 40 * time.Second
	)
	ctx := context.Background()
	for trial := 0; trial < 200; trial++ {
		p := New(&stubResolver{kind: games.StateUnavailable}, nil, nil, interval, ceiling)
		for i := 0; i < 8; i++ {
			d := p.pollOnce(ctx)
			if d < interval || d > ceiling {
				t.Fatalf("trial %d pass %d: delay %s outside [%s, %s]", trial, i, d, interval, ceiling)
			}
		}
	}
}

func TestPollerNotReadyAfterUnavailablePass(t *testing.T) {
	res := &stubResolver{kind: games.StateLive}
	p := New(res, nil, nil, time.Second, 0)

	p.pollOnce(context.Background())
	if !p.Status().IsReady() {
		t.Fatalf("expected ready after a live pass, got %+v", p.Status())
	}

	res.set(games.StateUnavailable)
	p.pollOnce(context.Background())
	status := p.Status()
	if status.IsReady() || status.ConsecutiveFailures != 1 {
		t.Fatalf("expected not ready after one unavailable pass, got %+v", status)
	}

	res.set(games.StateUpcoming)
	p.pollOnce(context.Background())
	if !p.Status().IsReady() {
		t.Fatalf("expected ready again after recovery, got %+v", p.Status())
	}
}

func TestPollerStatusTracksOutcome(t *testing.T) {
	res := &stubResolver{kind: games.StateUnavailable}
	p := New(res, nil, nil, time.Minute, 0)
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	p.now = testutil.NowAt(now)

	p.pollOnce(context.Background())
	status := p.Status()
	if status.ConsecutiveFailures != 1 || status.LastOutcome != games.StateUnavailable {
		t.Fatalf("unexpected status after degraded pass %+v", status)
	}
	if !status.LastSuccess.IsZero() {
		t.Fatalf("expected no success recorded yet")
	}

	res.set(games.StateNone)
	p.pollOnce(context.Background())
	status = p.Status()
	if status.ConsecutiveFailures != 0 || !status.LastSuccess.Equal(now) || !status.IsReady() {
		t.Fatalf("expected ready status after success, got %+v", status)
	}
	if status.NextDelay != time.Minute {
		t.Fatalf("expected next delay of one interval, got %s", status.NextDelay)
	}
}

func TestPollerLogsDegradedPasses(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	p := New(&stubResolver{kind: games.StateUnavailable}, logger, nil, time.Second, 0)

	p.pollOnce(context.Background())

	if !strings.Contains(buf.String(), "display degraded") {
		t.Fatalf("expected degraded log, got %q", buf.String())
	}
}
