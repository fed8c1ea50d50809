// pkg/api/server.go

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/bwoff11/net-stab/pkg/history"
	httpx "github.com/bwoff11/net-stab/pkg/http"
	"github.com/bwoff11/net-stab/pkg/models"
)

// APIServer serves the read-only status API: current endpoint states,
// per-endpoint probe history, a summary, and a live websocket feed. The
// monitor pushes states in through UpdateEndpointState.
type APIServer struct {
	addr      string
	history   history.Recorder
	feed      *Feed
	router    *mux.Router
	startTime time.Time

	mu        sync.RWMutex
	endpoints map[string]*models.EndpointState

	serverMu sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewAPIServer creates an APIServer bound to addr, reading history from
// the given recorder.
func NewAPIServer(addr string, recorder history.Recorder) *APIServer {
	s := &APIServer{
		addr:      addr,
		history:   recorder,
		feed:      NewFeed(),
		router:    mux.NewRouter(),
		startTime: time.Now(),
		endpoints: make(map[string]*models.EndpointState),
	}
	s.setupRoutes()

	return s
}

func (s *APIServer) setupRoutes() {
	s.router.Use(httpx.CommonMiddleware)

	s.router.HandleFunc("/api/status", s.getStatus).Methods("GET")
	s.router.HandleFunc("/api/endpoints", s.getEndpoints).Methods("GET")
	s.router.HandleFunc("/api/endpoints/{name}", s.getEndpoint).Methods("GET")
	s.router.HandleFunc("/api/endpoints/{name}/history", s.getEndpointHistory).Methods("GET")
	s.router.HandleFunc("/api/live", s.feed.handleLive)
}

// UpdateEndpointState stores the latest state for an endpoint and
// pushes it to live feed subscribers.
func (s *APIServer) UpdateEndpointState(state models.EndpointState) {
	s.mu.Lock()
	s.endpoints[state.Name] = &state
	s.mu.Unlock()

	s.feed.Broadcast(state)
}

func (s *APIServer) getStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()

	summary := models.StatusSummary{
		TotalEndpoints: len(s.endpoints),
		LastUpdate:     time.Now(),
		Uptime:         time.Since(s.startTime).String(),
	}

	for _, state := range s.endpoints {
		if state.Available {
			summary.AvailableEndpoints++
		}
	}

	s.mu.RUnlock()

	s.writeJSON(w, summary)
}

func (s *APIServer) getEndpoints(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()

	endpoints := make([]models.EndpointState, 0, len(s.endpoints))
	for _, state := range s.endpoints {
		endpoints = append(endpoints, *state)
	}

	s.mu.RUnlock()

	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].Name < endpoints[j].Name
	})

	s.writeJSON(w, endpoints)
}

func (s *APIServer) getEndpoint(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	s.mu.RLock()
	state, exists := s.endpoints[name]
	s.mu.RUnlock()

	if !exists {
		http.Error(w, "Endpoint not found", http.StatusNotFound)
		return
	}

	s.writeJSON(w, state)
}

func (s *APIServer) getEndpointHistory(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	s.mu.RLock()
	state, exists := s.endpoints[name]
	s.mu.RUnlock()

	if !exists {
		http.Error(w, "Endpoint not found", http.StatusNotFound)
		return
	}

	points := s.history.Points(models.EndpointKey{Name: state.Name, Address: state.Address})
	if points == nil {
		points = []models.HistoryPoint{}
	}

	s.writeJSON(w, points)
}

func (s *APIServer) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Start listens on the configured address and serves until Stop is
// called. It blocks, so callers run it in its own goroutine.
func (s *APIServer) Start(_ context.Context) error {
	s.serverMu.Lock()

	if s.server != nil {
		s.serverMu.Unlock()
		return errAlreadyStarted
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.serverMu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.listener = listener
	s.server = &http.Server{Handler: s.router}
	server := s.server

	s.serverMu.Unlock()

	log.Printf("API server listening on %s", listener.Addr())

	if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api server failed: %w", err)
	}

	return nil
}

// Stop disconnects feed clients and shuts the server down, waiting for
// in-flight requests up to the context deadline.
func (s *APIServer) Stop(ctx context.Context) error {
	s.serverMu.Lock()
	defer s.serverMu.Unlock()

	if s.server == nil {
		return nil
	}

	s.feed.Close()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop api server: %w", err)
	}

	s.server = nil
	s.listener = nil

	return nil
}

// Addr returns the bound address once Start has opened its listener,
// or nil before that.
func (s *APIServer) Addr() net.Addr {
	s.serverMu.Lock()
	defer s.serverMu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}
