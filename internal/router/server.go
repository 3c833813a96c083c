package router

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"color-chooser/internal/ui"
)

// Server serves the Router on the web listener, with /metrics beside it.
type Server struct {
	addr    string
	handler http.Handler

	mu         sync.Mutex
	ln         net.Listener
	httpServer *http.Server
	ready      chan struct{}
	readyOnce  sync.Once
}

// NewServer wraps rt for addr.
func NewServer(addr string, rt *Router) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", rt)

	return &Server{
		addr:    addr,
		handler: mux,
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the first listener accepts connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound listen address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Start serves until ctx is cancelled, then drains.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.mu.Lock()
	s.ln = ln
	s.httpServer = srv
	s.mu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })

	ui.LogStatus("info", "Web front listening on "+ln.Addr().String())

	shutdownErr := make(chan error, 1)
	served := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			shutdownErr <- s.drain()
		case <-served:
		}
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		close(served)
		return err
	}
	return <-shutdownErr
}

func (s *Server) drain() error {
	ui.LogGracefulShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if err := srv.Shutdown(ctx); err != nil {
		ui.LogStatus("warn", "Drain timeout reached. Forcing shutdown.")
		return srv.Close()
	}
	return nil
}
