// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	service "github.com/okian/seograde/internal/app"
	"github.com/okian/seograde/internal/domain/model"
)

// BatchDependencies defines the interface for batch scoring.
type BatchDependencies interface {
	ScoreBatch(ctx context.Context, drafts []model.Input) ([]model.SEOScore, error)
}

// BatchHandler handles batch scoring requests.
type BatchHandler struct {
	deps         BatchDependencies
	maxBodyBytes int64
	maxItems     int
}

// NewBatchHandler creates a new batch handler.
func NewBatchHandler(deps BatchDependencies, maxBodyBytes int64, maxItems int) *BatchHandler {
	return &BatchHandler{
		deps:         deps,
		maxBodyBytes: maxBodyBytes,
		maxItems:     maxItems,
	}
}

// HandleScoreBatch handles POST /score/batch requests. Results are
// returned in the same order as the submitted drafts.
func (h *BatchHandler) HandleScoreBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.score_batch"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(req.Drafts) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing drafts")))
		return
	}
	if len(req.Drafts) > h.maxItems {
		writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
		return
	}
	for i, d := range req.Drafts {
		if err := validateDraft(d); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, fmt.Errorf("draft %d: %w", i, err)))
			return
		}
	}

	scores, err := h.deps.ScoreBatch(r.Context(), req.Drafts)
	if err != nil {
		if errors.Is(err, service.ErrNotStarted) {
			writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: scores})
}
