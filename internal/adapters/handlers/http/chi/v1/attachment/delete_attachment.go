package attachment

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// DeleteAttachmentV1 removes an attachment from whichever tier its ID lives in
func (h *HandlerV1) DeleteAttachmentV1(w http.ResponseWriter, r *http.Request) {

	engine, ok := h.engineFromRequest(w, r)
	if !ok {
		return
	}

	rawID := chi.URLParam(r, "attachmentID")
	if rawID == "" {
		http.Error(w, "attachment id is required", http.StatusBadRequest)
		return
	}

	err := engine.Delete(r.Context(), parseAttachmentID(rawID))
	switch {
	case errors.Is(err, domain.ErrAttachmentNotFound), errors.Is(err, domain.ErrAttachmentRecordNotFound):
		http.Error(w, "attachment not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrDeleteFailed):
		h.logger.Error("delete failed", "error", err, "attachment_id", rawID)
		http.Error(w, "delete failed", http.StatusBadGateway)
		return
	case err != nil:
		h.logger.Error("error deleting attachment", "error", err, "attachment_id", rawID)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
