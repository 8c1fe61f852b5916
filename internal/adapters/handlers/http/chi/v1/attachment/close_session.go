package attachment

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// CloseSessionV1 closes a session and discards whatever it still stages
func (h *HandlerV1) CloseSessionV1(w http.ResponseWriter, r *http.Request) {

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	uuidSessionID, parseErr := uuid.Parse(sessionID)
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	err := h.sessions.Close(r.Context(), uuidSessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error closing session", "error", err, "session_id", sessionID)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
