// Package http exposes the dialog engine as the Alice webhook endpoint.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RasimKhusaenov/alice-todoist-integration/internal/logging"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

// Engine is the dialog core driving one turn.
type Engine interface {
	Step(ctx context.Context, turn *domain.Turn) *domain.Response
}

// Server handles the platform webhook plus the operational endpoints.
type Server struct {
	engine  Engine
	logger  *slog.Logger
	version string
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithVersion sets the version reported on /info.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// NewHandler creates the HTTP handler for the webhook.
func NewHandler(engine Engine, gatherer prometheus.Gatherer, opts ...Option) http.Handler {
	s := &Server{
		engine:  engine,
		logger:  logging.NewNop(),
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/", s.handleWebhook)
	r.Get("/health", s.handleHealth)
	r.Get("/info", s.handleInfo)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// handleWebhook runs one dialog turn. Every failure mode below the decode
// step is handled inside the engine, so a valid payload always gets a 200.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var req domain.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("rejecting malformed webhook payload", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	turn := req.Turn()
	s.logger.Info("incoming turn",
		"session", turn.SessionID,
		"scene", turn.SceneID(),
		"utterance", turn.Utterance,
	)

	resp := s.engine.Step(r.Context(), turn)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp.Webhook()); err != nil {
		s.logger.Error("encoding webhook response failed", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"app":     "alice-todoist",
		"version": s.version,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
