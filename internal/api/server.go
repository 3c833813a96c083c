package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"color-chooser/internal/colors"
	"color-chooser/internal/config"
	"color-chooser/internal/store"
	"color-chooser/internal/ui"
)

// drainTimeout bounds graceful shutdown.
const drainTimeout = 30 * time.Second

// Server owns the store and the HTTP listener of the lookup service.
type Server struct {
	Config  *config.Config
	Store   store.Store
	Handler *Handler

	seed []colors.Record

	mu         sync.Mutex
	ln         net.Listener
	httpServer *http.Server
	ready      chan struct{}
	readyOnce  sync.Once
}

// NewServer wires a Handler over st. seed is applied on every Start.
func NewServer(cfg *config.Config, st store.Store, seed []colors.Record) *Server {
	opts := []Option{
		WithPrefix(cfg.APIPrefix),
		WithTimeout(time.Duration(cfg.TimeoutSec) * time.Second),
	}
	if cfg.Env != nil {
		opts = append(opts, WithAllowedOrigin(cfg.Env.AllowedOrigin))
	}

	return &Server{
		Config:  cfg,
		Store:   st,
		Handler: NewHandler(st, opts...),
		seed:    seed,
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

// Start reseeds the store, then serves until ctx is cancelled. It blocks
// until shutdown completes.
func (s *Server) Start(ctx context.Context) error {
	// 1. Destructive reseed: whatever the store held is replaced
	if err := s.Store.Seed(ctx, s.seed); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	n, err := s.Store.Len(ctx)
	if err != nil {
		return fmt.Errorf("count colors: %w", err)
	}
	MetricRecords.Set(float64(n))
	ui.LogStatus("success", fmt.Sprintf("Store seeded with %d colors", n))

	// 2. Listen
	ln, err := net.Listen("tcp", s.Config.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Config.Listen, err)
	}

	srv := &http.Server{
		Handler:           s.Handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.mu.Lock()
	s.ln = ln
	s.httpServer = srv
	s.mu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })

	ui.LogStatus("info", "Lookup service listening on "+ln.Addr().String())

	// 3. Monitor for shutdown until Serve returns on its own
	shutdownErr := make(chan error, 1)
	served := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			shutdownErr <- s.drain()
		case <-served:
		}
	}()

	// 4. Serve (blocking)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		close(served)
		return err
	}
	return <-shutdownErr
}

// drain stops accepting and waits for in-flight requests.
func (s *Server) drain() error {
	ui.LogGracefulShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if err := srv.Shutdown(ctx); err != nil {
		ui.LogStatus("warn", "Drain timeout reached. Forcing shutdown.")
		return srv.Close()
	}
	ui.LogStatus("success", "All requests drained. Goodbye.")
	return nil
}
