// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/okian/seograde/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ScoreDependencies
	BatchDependencies
}

// Draft mirrors the scoring input consumed by POST /score.
type Draft = model.Input

// Default request limits; overridable through options.
const (
	defaultMaxBodyBytes  = int64(1 << 20)
	defaultBatchMaxItems = 50
)

// Server wires HTTP routes for the business API.
type Server struct {
	maxBodyBytes  int64
	batchMaxItems int

	healthHandler  *HealthHandler
	metricsHandler *MetricsHandler
	statsHandler   *StatsHandler
	checksHandler  *ChecksHandler
	scoreHandler   *ScoreHandler
	batchHandler   *BatchHandler
}

// Option customizes the API server.
type Option func(*Server)

// WithMaxBodyBytes bounds the request body size accepted by the scoring
// endpoints.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithBatchMaxItems bounds the number of drafts accepted per batch request.
func WithBatchMaxItems(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.batchMaxItems = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		maxBodyBytes:  defaultMaxBodyBytes,
		batchMaxItems: defaultBatchMaxItems,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler()
	s.metricsHandler = NewMetricsHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.checksHandler = NewChecksHandler()
	s.scoreHandler = NewScoreHandler(deps, s.maxBodyBytes)
	s.batchHandler = NewBatchHandler(deps, s.maxBodyBytes, s.batchMaxItems)
	return s
}

// Register attaches middleware and all HTTP routes to r.
func (s *Server) Register(ctx context.Context, r chi.Router) {
	r.Use(RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
	}))

	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/metrics", s.metricsHandler.HandleMetrics)
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Get("/checks", MetricsMiddleware(s.checksHandler.HandleGetChecks, "checks"))
	r.Post("/score", MetricsMiddleware(s.scoreHandler.HandleScore, "score"))
	r.Post("/score/batch", MetricsMiddleware(s.batchHandler.HandleScoreBatch, "score_batch"))
}

// validateDraft enforces the request contract for scoring inputs. Only
// content and the primary keyword are mandatory; an absent title or meta
// description is a legal draft state that surfaces as failing checks.
func validateDraft(d Draft) error {
	switch {
	case strings.TrimSpace(d.Content) == "":
		return errors.New("missing content")
	case strings.TrimSpace(d.PrimaryKeyword) == "":
		return errors.New("missing primaryKeyword")
	}
	return nil
}

// batchRequest mirrors the OpenAPI schema for POST /score/batch.
type batchRequest struct {
	Drafts []Draft `json:"drafts"`
}

// batchResponse carries scores in the same order as the submitted drafts.
type batchResponse struct {
	Results []model.SEOScore `json:"results"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
