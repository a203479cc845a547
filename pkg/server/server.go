package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-deckgen/pkg/orchestrator"
	"github.com/goliatone/go-deckgen/pkg/presets"
)

// DefaultMaxBodyBytes caps POST /api/decks payloads.
const DefaultMaxBodyBytes = 1 << 20

// Option configures the server.
type Option func(*Server)

// WithGenerator replaces the default generator.
func WithGenerator(gen *orchestrator.Generator) Option {
	return func(s *Server) {
		if gen != nil {
			s.gen = gen
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetricsRegistry registers collectors with reg and serves it on
// /metrics. Without it the server uses a private registry.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// Server exposes the matcher and the generator over HTTP.
type Server struct {
	cfg      *presets.Config
	gen      *orchestrator.Generator
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *Metrics
	maxBody  int64
}

// New builds a server over cfg.
func New(cfg *presets.Config, options ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: presets config is required")
	}
	s := &Server{
		cfg:     cfg,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.gen == nil {
		s.gen = orchestrator.New(orchestrator.WithLogger(s.logger))
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	metrics, err := NewMetrics(s.registry)
	if err != nil {
		return nil, fmt.Errorf("server: register metrics: %w", err)
	}
	s.metrics = metrics
	return s, nil
}

// Handler returns the chi router serving the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.health)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", s.listTemplates)
		r.Get("/styles", s.listStyles)
		r.Post("/decks", s.createDeck)
	})
	return r
}

type templatesResponse struct {
	Criteria        presets.Criteria   `json:"criteria"`
	Templates       []presets.Template `json:"templates"`
	SuggestedStyles []string           `json:"suggestedStyles,omitempty"`
}

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	criteria := presets.Criteria{
		Audience: splitValues(query["audience"]),
		Purpose:  strings.TrimSpace(query.Get("purpose")),
		Tags:     splitValues(append(query["tags"], query["tag"]...)),
	}

	matches := presets.FindTemplates(s.cfg, criteria)
	if matches == nil {
		matches = []presets.Template{}
	}
	outcome := "matched"
	if len(matches) == 0 {
		outcome = "empty"
	}
	s.metrics.TemplateMatches.WithLabelValues(outcome).Inc()

	writeJSON(w, s.logger, http.StatusOK, templatesResponse{
		Criteria:        criteria,
		Templates:       matches,
		SuggestedStyles: s.cfg.SuggestedStyles(criteria.Purpose),
	})
}

func (s *Server) listStyles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]any{
		"styles": s.cfg.ResolveAll(),
	})
}

type deckRequest struct {
	Style    string          `json:"style"`
	Template string          `json:"template"`
	Renderer string          `json:"renderer"`
	Author   string          `json:"author"`
	Content  json.RawMessage `json:"content"`
}

type alertResponse struct {
	Alert string `json:"alert"`
}

type alertRecorder struct {
	message string
}

func (a *alertRecorder) Alert(message string) {
	a.message = message
}

func (s *Server) createDeck(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	var payload deckRequest
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		s.logger.Warn("create deck: invalid request body", slog.Any("error", err))
		writeJSON(w, s.logger, http.StatusBadRequest, alertResponse{Alert: orchestrator.ContentErrorMessage(err)})
		return
	}

	alerts := &alertRecorder{}
	req := orchestrator.Request{
		Config:   s.cfg,
		StyleKey: payload.Style,
		Template: payload.Template,
		Renderer: payload.Renderer,
		Alerter:  alerts,
	}
	req.RenderOptions.Author = payload.Author

	rendererLabel := s.rendererLabel(payload.Renderer)

	started := time.Now()
	result, ok, err := s.gen.GenerateFromJSON(r.Context(), req, payload.Content)
	s.metrics.RenderDuration.WithLabelValues(rendererLabel).Observe(time.Since(started).Seconds())

	if err != nil {
		s.metrics.DecksGenerated.WithLabelValues(rendererLabel, "error").Inc()
		s.logger.Error("create deck: presets", slog.Any("error", err))
		writeJSON(w, s.logger, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !ok {
		status := http.StatusInternalServerError
		outcome := "error"
		if strings.HasPrefix(alerts.message, orchestrator.ContentErrorPrefix) {
			status = http.StatusBadRequest
			outcome = "alert"
		}
		s.metrics.DecksGenerated.WithLabelValues(rendererLabel, outcome).Inc()
		s.logger.Warn("create deck failed", slog.String("alert", alerts.message))
		writeJSON(w, s.logger, status, alertResponse{Alert: alerts.message})
		return
	}
	s.metrics.DecksGenerated.WithLabelValues(rendererLabel, "ok").Inc()

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.FileName}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		s.logger.Error("create deck: write response", slog.Any("error", err))
	}
}

// rendererLabel keeps metric cardinality bounded: names outside the
// generator's registry share one label.
func (s *Server) rendererLabel(name string) string {
	switch {
	case name == "":
		return "default"
	case s.gen.Registry() != nil && s.gen.Registry().Has(name):
		return name
	default:
		return "unknown"
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("elapsed", time.Since(started)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("encode response", slog.Any("error", err))
	}
}

// splitValues accepts repeated and comma separated query values.
func splitValues(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
