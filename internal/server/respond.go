package server

import (
	"encoding/json"
	"net/http"

	"github.com/reitmaier/banjara-api/internal/errors"
)

// respondError renders the fixed (status, message) pair for a domain
// error. Internal causes are logged here and never echoed.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status, message := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	} else {
		h.logger.Debug("request rejected", "error", err)
	}
	http.Error(w, message, status)
}

// respondText writes a plain-text body with status 200
func (h *Handler) respondText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		h.logger.Debug("failed to write response", "error", err)
	}
}

// respondJSON writes a JSON body with status 200
func (h *Handler) respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Debug("failed to encode response", "error", err)
	}
}
