package metrics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var errAlreadyStarted = errors.New("metrics server already started")

// Server exposes a registry in the exposition text format on GET /metrics.
// Requests only read registry state; they never mutate it.
type Server struct {
	addr     string
	registry *prometheus.Registry
	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewServer creates a metrics server bound to addr.
func NewServer(addr string, registry *prometheus.Registry) *Server {
	return &Server{
		addr:     addr,
		registry: registry,
	}
}

// Start listens on the configured address and serves until Stop is
// called. It blocks, so callers run it in its own goroutine.
func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()

	if s.server != nil {
		s.mu.Unlock()
		return errAlreadyStarted
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.listener = listener
	s.server = &http.Server{Handler: mux}
	server := s.server

	s.mu.Unlock()

	log.Printf("Metrics server listening on %s", listener.Addr())

	if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server failed: %w", err)
	}

	return nil
}

// Stop shuts the server down, waiting for in-flight scrapes up to the
// context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop metrics server: %w", err)
	}

	s.server = nil
	s.listener = nil

	return nil
}

// Addr returns the bound address once Start has opened its listener,
// or nil before that.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}
