package attachment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// V1PreviewResponse is the response carrying a fetchable preview URL
type V1PreviewResponse struct {
	URL string `json:"url"`
}

// PreviewV1 resolves a preview URL for an attachment in either tier
func (h *HandlerV1) PreviewV1(w http.ResponseWriter, r *http.Request) {

	engine, ok := h.engineFromRequest(w, r)
	if !ok {
		return
	}

	rawID := chi.URLParam(r, "attachmentID")
	if rawID == "" {
		http.Error(w, "attachment id is required", http.StatusBadRequest)
		return
	}

	url, err := engine.ResolvePreviewURL(r.Context(), parseAttachmentID(rawID))
	switch {
	case errors.Is(err, domain.ErrPreviewNotReady):
		http.Error(w, "preview not ready", http.StatusConflict)
		return
	case errors.Is(err, domain.ErrAttachmentNotFound), errors.Is(err, domain.ErrAttachmentRecordNotFound):
		http.Error(w, "attachment not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error resolving preview url", "error", err, "attachment_id", rawID)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1PreviewResponse{URL: url}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
