// Package httpapi serves the general ledger view over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledger/internal/buildinfo"
	"github.com/cleared-dev/ledger/internal/obs"
	"github.com/cleared-dev/ledger/internal/workspace"
)

// API is the HTTP layer over an opened workspace.
type API struct {
	ws      *workspace.Workspace
	logger  *zap.Logger
	metrics *obs.Metrics
	now     func() time.Time
}

// New creates the API. A nil metrics gets a private registry.
func New(ws *workspace.Workspace, logger *zap.Logger, metrics *obs.Metrics) *API {
	if metrics == nil {
		metrics = obs.NewMetrics(nil)
	}
	return &API{ws: ws, logger: logger, metrics: metrics, now: time.Now}
}

// Handler returns the router with middleware applied.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.RequestLogger(a.logger))
	r.Use(middleware.Recoverer)
	r.Use(a.metrics.Instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Actor"},
		MaxAge:         300,
	}))

	r.Get("/healthz", a.Healthz)
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/ledger", a.Ledger)
		r.Get("/ledger/export", a.Export)
		r.Get("/accounts", a.Accounts)
		r.Get("/entries/{id}", a.Entry)
		r.With(writeLimit(a.ws.Config.Server.WritesPerSecond, a.ws.Config.Server.WriteBurst)).
			Put("/entries/{id}/crossed", a.SetCrossed)
		r.Get("/crossings", a.Crossings)
	})
	return r
}

// Server wraps Handler in an http.Server configured from the workspace.
func (a *API) Server() *http.Server {
	cfg := a.ws.Config.Server
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           a.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}
}

func (a *API) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "ledger",
		"version": buildinfo.Version,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
