package attachment

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// V1CommitRequest is the request to commit staged files to a task
type V1CommitRequest struct {
	TaskID       int64 `json:"task_id"`
	ClearStaging bool  `json:"clear_staging"`
}

// V1CommittedAttachment is one record created by a commit
type V1CommittedAttachment struct {
	ID          int64     `json:"id"`
	TaskID      int64     `json:"task_id"`
	FileName    string    `json:"file_name"`
	StoragePath string    `json:"storage_path"`
	MimeType    string    `json:"mime_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// V1CommitResponse is the response to a commit
type V1CommitResponse struct {
	Attachments []V1CommittedAttachment `json:"attachments"`
}

// CommitV1 promotes every staged file of the session to the permanent tier
func (h *HandlerV1) CommitV1(w http.ResponseWriter, r *http.Request) {

	engine, ok := h.engineFromRequest(w, r)
	if !ok {
		return
	}

	var req V1CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding commit request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.TaskID <= 0 {
		http.Error(w, "task id is required", http.StatusBadRequest)
		return
	}

	created, commitErr := engine.Commit(r.Context(), req.TaskID, req.ClearStaging)
	switch {
	case errors.Is(commitErr, domain.ErrCommitInProgress):
		http.Error(w, "commit in progress", http.StatusConflict)
		return
	case errors.Is(commitErr, domain.ErrCommitFailed):
		h.logger.Error("commit failed", "error", commitErr, "task_id", req.TaskID)
		http.Error(w, "commit failed", http.StatusBadGateway)
		return
	case commitErr != nil:
		h.logger.Error("error committing", "error", commitErr, "task_id", req.TaskID)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1CommitResponse{Attachments: make([]V1CommittedAttachment, 0, len(created))}
		for _, record := range created {
			resp.Attachments = append(resp.Attachments, V1CommittedAttachment{
				ID:          record.ID,
				TaskID:      record.TaskID,
				FileName:    record.FileName,
				StoragePath: record.StoragePath,
				MimeType:    record.MimeType,
				CreatedAt:   record.CreatedAt,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
