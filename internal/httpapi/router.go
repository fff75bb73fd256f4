// Package httpapi wires the HTTP surface of the conversion service. Handlers
// stay thin: they decode, call the engine or the period store, and encode.
package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"log/slog"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	store       PeriodStore
	defaultRate float64
	log         *slog.Logger
	rt          *chi.Mux
}

// New constructs the HTTP server with routes and middleware. allowedOrigins
// restricts CORS; empty allows any origin (the conversion UI is served from
// a separate host in every deployment we have).
func New(store PeriodStore, defaultRate float64, allowedOrigins []string, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	s := &Server{store: store, defaultRate: defaultRate, log: logger, rt: r}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints.
func (s *Server) routes() {
	// Conversion (v1)
	s.rt.Post("/v1/convert", s.postConvert)
	s.rt.Post("/v1/convert/upload", s.postConvertUpload)
	s.rt.Post("/v1/export", s.postExport)
	// Mapping table (v1)
	s.rt.Get("/v1/mapping/meta", s.getMappingMeta)
	s.rt.Get("/v1/sample", s.getSample)
	// Periods (v1)
	s.rt.Get("/v1/periods", s.listPeriods)
	s.rt.Post("/v1/periods", s.savePeriod)
	s.rt.Get("/v1/periods/{year}/{month}", s.getPeriod)
	s.rt.Delete("/v1/periods/{year}/{month}", s.deletePeriod)
	s.rt.Get("/v1/periods/{year}/{month}/ytd", s.getYearToDate)
	s.rt.Get("/v1/periods/{year}/{month}/delta", s.getMonthDelta)
	// Health + metrics (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Handle("/metrics", metricsHandler())
}
