// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/seograde/internal/app"
	"github.com/okian/seograde/internal/domain/model"
)

// ScoreDependencies defines the interface for single-draft scoring.
type ScoreDependencies interface {
	Score(ctx context.Context, in model.Input) (model.SEOScore, error)
}

// ScoreHandler handles single-draft scoring requests.
type ScoreHandler struct {
	deps         ScoreDependencies
	maxBodyBytes int64
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps ScoreDependencies, maxBodyBytes int64) *ScoreHandler {
	return &ScoreHandler{deps: deps, maxBodyBytes: maxBodyBytes}
}

// HandleScore handles POST /score requests.
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.score"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req Draft
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validateDraft(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	score, err := h.deps.Score(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotStarted) {
			writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, score)
}
