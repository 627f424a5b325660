package testutil

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
)

// StubHTTPServer stands in for a listener in lifecycle tests.
// ListenAndServe returns ListenErr immediately. When Unblock is set, Shutdown
// waits for it to close or for ctx to expire.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Unblock     chan struct{}
	// Served, when set, is closed after the first ListenAndServe call.
	Served chan struct{}

	listens   atomic.Int32
	shutdowns atomic.Int32
	once      sync.Once
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.listens.Add(1)
	if s.Served != nil {
		s.once.Do(func() { close(s.Served) })
	}
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdowns.Add(1)
	if s.Unblock != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Unblock:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}

// Listens reports how many times ListenAndServe ran.
func (s *StubHTTPServer) Listens() int { return int(s.listens.Load()) }

// Shutdowns reports how many times Shutdown ran.
func (s *StubHTTPServer) Shutdowns() int { return int(s.shutdowns.Load()) }
