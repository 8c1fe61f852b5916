package attachment

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/port"
)

// HandlerV1 is the handler for v1 attachment session routes
type HandlerV1 struct {
	sessions port.SessionManager
	logger   *slog.Logger
}

// NewAttachmentHandlerV1 creates HandlerV1
func NewAttachmentHandlerV1(sessions port.SessionManager, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		sessions: sessions,
		logger:   logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.OpenSessionV1)
	router.Delete("/{sessionID}", h.CloseSessionV1)
	router.Post("/{sessionID}/files", h.StageFilesV1)
	router.Get("/{sessionID}/attachments", h.ListAttachmentsV1)
	router.Post("/{sessionID}/commit", h.CommitV1)
	router.Delete("/{sessionID}/attachments/{attachmentID}", h.DeleteAttachmentV1)
	router.Get("/{sessionID}/attachments/{attachmentID}/preview", h.PreviewV1)

	return router
}

// engineFromRequest resolves the engine of the session addressed by the URL
func (h *HandlerV1) engineFromRequest(w http.ResponseWriter, r *http.Request) (port.AttachmentEngine, bool) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return nil, false
	}

	uuidSessionID, parseErr := uuid.Parse(sessionID)
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return nil, false
	}

	engine, err := h.sessions.Get(uuidSessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return engine, true
}

// parseAttachmentID maps a URL segment onto a tier: numeric segments address
// permanent records, anything else is a staged file key
func parseAttachmentID(raw string) domain.AttachmentID {
	if recordID, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return domain.RecordID(recordID)
	}
	return domain.StagedID(raw)
}
