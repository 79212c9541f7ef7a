// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/seograde/internal/domain/catalog"
)

// ChecksHandler exposes the fixed check catalog for UI and docs consumers.
type ChecksHandler struct{}

// NewChecksHandler creates a new checks handler.
func NewChecksHandler() *ChecksHandler {
	return &ChecksHandler{}
}

// HandleGetChecks handles GET /checks requests.
func (h *ChecksHandler) HandleGetChecks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, catalog.All())
}
