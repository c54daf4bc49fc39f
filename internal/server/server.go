package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"Cascade/internal/model"
	"Cascade/internal/state"
)

// Server exposes the latest computed charts as JSON for a charting front-end.
type Server struct {
	srv   *http.Server
	state *state.Manager
}

// New creates a Server reading from the given state manager.
func New(addr string, st *state.Manager) *Server {
	s := &Server{state: st}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /charts", s.handleList)
	mux.HandleFunc("GET /charts/{name}", s.handleChart)

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	go func() {
		log.Printf("[INFO] http server listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[ERROR] http server: %v", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// chartListing is the /charts list item: everything but the entries.
type chartListing struct {
	Name       string        `json:"name"`
	Source     string        `json:"source"`
	EntryCount int           `json:"entry_count"`
	Summary    model.Summary `json:"summary"`
	ComputedAt time.Time     `json:"computed_at"`
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	datasets := s.state.List()
	listings := make([]chartListing, 0, len(datasets))
	for _, ds := range datasets {
		listings = append(listings, chartListing{
			Name:       ds.Name,
			Source:     ds.Source,
			EntryCount: len(ds.Entries),
			Summary:    ds.Summary,
			ComputedAt: ds.ComputedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"charts": listings})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	ds, ok := s.state.Get(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown chart: " + name})
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
