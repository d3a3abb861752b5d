// Package server exposes the discovery pipeline over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/cardinal-labs/dinescout/internal/discovery"
	"github.com/cardinal-labs/dinescout/internal/model"
	"github.com/cardinal-labs/dinescout/internal/store"
)

// Server routes discovery and run-history requests.
type Server struct {
	pipeline *discovery.Pipeline
	store    store.Store
	services map[string]bool
	mux      *chi.Mux
}

// Option configures a Server.
type Option func(*Server)

// WithServiceStatus reports a named backing service's availability on the
// health endpoint.
func WithServiceStatus(name string, available bool) Option {
	return func(s *Server) {
		s.services[name] = available
	}
}

// New builds the router. The store may be nil; run-history endpoints then
// return 404.
func New(pipeline *discovery.Pipeline, st store.Store, opts ...Option) *Server {
	s := &Server{pipeline: pipeline, store: st, services: make(map[string]bool)}
	for _, opt := range opts {
		opt(s)
	}

	m := chi.NewRouter()
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	m.Use(requestLogger)

	m.Get("/health", s.handleHealth)
	m.Post("/discover", s.handleDiscover)
	if st != nil {
		m.Get("/runs", s.handleListRuns)
		m.Get("/runs/{id}", s.handleGetRun)
		m.Get("/runs/{id}/records", s.handleListRecords)
	}
	m.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Success: false, Error: "Method not allowed"})
	})

	s.mux = m
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler { return s.mux }

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type discoverRequest struct {
	City       string `json:"city"`
	State      string `json:"state"`
	MaxResults int    `json:"max_results,omitempty"`
}

type discoverResponse struct {
	Success     bool             `json:"success"`
	City        string           `json:"city"`
	State       string           `json:"state"`
	Count       int              `json:"count"`
	Restaurants []restaurantView `json:"restaurants"`
}

// restaurantView is the compact listing shape returned by /discover.
type restaurantView struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	CuisineType    string `json:"cuisine_type"`
	Neighborhood   string `json:"neighborhood"`
	PriceRange     string `json:"price_range"`
	Rating         string `json:"rating"`
	Validated      bool   `json:"validated"`
	SourceCount    int    `json:"source_count"`
	BusinessStatus string `json:"business_status,omitempty"`
}

const maxViewDescription = 100

func formatRecord(r model.Reconciled) restaurantView {
	v := restaurantView{
		Name:         r.Name,
		Description:  r.Description,
		CuisineType:  r.CuisineType,
		Neighborhood: r.Neighborhood,
		PriceRange:   r.PriceTier,
		Rating:       "N/A",
		Validated:    r.Validated,
		SourceCount:  r.SourceCount,
	}
	if desc := []rune(v.Description); len(desc) > maxViewDescription {
		v.Description = string(desc[:maxViewDescription]) + "..."
	}
	if rating := r.DirectoryRating(); rating > 0 {
		v.Rating = strconv.FormatFloat(rating, 'f', 1, 64) + "/5.0"
	}
	if r.Enrichment != nil {
		v.BusinessStatus = r.Enrichment.BusinessStatus
	}
	return v
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if len(s.services) > 0 {
		body["services"] = s.services
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Error: "Invalid request body"})
		return
	}

	city := strings.TrimSpace(req.City)
	state := strings.TrimSpace(req.State)
	if city == "" || state == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Error: "Please provide both city and state!"})
		return
	}

	records, err := s.pipeline.Run(r.Context(), city, state)
	if err != nil {
		zap.L().Error("discover request failed",
			zap.String("city", city),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Success: false, Error: "Discovery failed"})
		return
	}

	if req.MaxResults > 0 && len(records) > req.MaxResults {
		records = records[:req.MaxResults]
	}

	views := make([]restaurantView, 0, len(records))
	for _, rec := range records {
		views = append(views, formatRecord(rec))
	}

	writeJSON(w, http.StatusOK, discoverResponse{
		Success:     true,
		City:        city,
		State:       state,
		Count:       len(views),
		Restaurants: views,
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	filter := store.RunFilter{
		Status: model.RunStatus(r.URL.Query().Get("status")),
		City:   r.URL.Query().Get("city"),
	}
	runs, err := s.store.ListRuns(r.Context(), filter)
	if err != nil {
		zap.L().Error("list runs failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Success: false, Error: "Could not list runs"})
		return
	}
	if runs == nil {
		runs = []model.Run{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Success: false, Error: "Run not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "run": run})
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListRecords(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		zap.L().Error("list records failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Success: false, Error: "Could not list records"})
		return
	}
	if records == nil {
		records = []model.Reconciled{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "count": len(records), "restaurants": records})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		zap.L().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
