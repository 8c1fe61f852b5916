package attachment

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// V1OpenSessionRequest is the request to open an editing session. TaskID is
// zero when creating a brand new task.
type V1OpenSessionRequest struct {
	TaskID int64 `json:"task_id"`
}

// V1OpenSessionResponse is the response to open an editing session
type V1OpenSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

// OpenSessionV1 opens a staging session and returns its ID
func (h *HandlerV1) OpenSessionV1(w http.ResponseWriter, r *http.Request) {

	var req V1OpenSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error("error decoding open session request", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if req.TaskID < 0 {
		http.Error(w, "task id must not be negative", http.StatusBadRequest)
		return
	}

	sessionID, err := h.sessions.Open(r.Context(), req.TaskID)
	if err != nil {
		h.logger.Error("error opening session", "error", err, "task_id", req.TaskID)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1OpenSessionResponse{SessionID: sessionID}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
