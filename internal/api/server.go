// Package api provides the HTTP server for the progression engine.
// It exposes the profile, heatmap, mission, achievement, and claim
// endpoints consumed by the dashboard, plus the activity write path.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/app/progression"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/health"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/bus"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/sqlite"
)

// Server is the progression HTTP API server.
type Server struct {
	engine         *progression.Engine
	db             *sqlite.DB
	bus            *bus.Bus
	checker        *health.Checker
	version        string
	metricsEnabled bool
	corsOrigin     string
}

// NewServer creates a new API server.
func NewServer(engine *progression.Engine, db *sqlite.DB, b *bus.Bus) *Server {
	return &Server{engine: engine, db: db, bus: b, corsOrigin: "*"}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetVersion sets the version string reported by /api/version.
func (s *Server) SetVersion(v string) { s.version = v }

// SetChecker sets the health checker backing /health.
func (s *Server) SetChecker(c *health.Checker) { s.checker = c }

// SetCORSOrigin sets the allowed CORS origin. The dashboard runs as a
// browser new-tab page, so this defaults to "*".
func (s *Server) SetCORSOrigin(origin string) {
	if origin != "" {
		s.corsOrigin = origin
	}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": s.version,
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/profile", s.handleProfile)
		r.Get("/streaks", s.handleStreaks)
		r.Get("/heatmap", s.handleHeatmap)
		r.Get("/missions", s.handleMissions)
		r.Get("/achievements", s.handleAchievements)
		r.Get("/claims", s.handleClaims)
		r.Post("/claims/{kind}", s.handleClaim)

		r.Post("/activity", s.handleLogActivity)
		r.Get("/activity/{date}", s.handleGetActivity)

		r.Post("/reset", s.handleReset)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers so the new-tab page can call the
// local daemon from a browser origin.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
