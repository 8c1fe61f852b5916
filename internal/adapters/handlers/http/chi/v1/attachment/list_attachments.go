package attachment

import (
	"net/http"
	"time"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// V1Attachment is one entry of the merged session view
type V1Attachment struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	MimeType    string    `json:"mime_type"`
	SizeBytes   int64     `json:"size_bytes,omitempty"`
	IsTemporary bool      `json:"is_temporary"`
	Uploading   bool      `json:"uploading"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

func toV1Attachments(attachments []domain.Attachment) []V1Attachment {
	out := make([]V1Attachment, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, V1Attachment{
			ID:          a.ID.String(),
			FileName:    a.FileName,
			MimeType:    a.MimeType,
			SizeBytes:   a.SizeBytes,
			IsTemporary: a.IsTemporary,
			Uploading:   a.Uploading,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out
}

// ListAttachmentsV1 returns the merged view of both tiers
func (h *HandlerV1) ListAttachmentsV1(w http.ResponseWriter, r *http.Request) {

	engine, ok := h.engineFromRequest(w, r)
	if !ok {
		return
	}

	h.writeAttachmentsV1(w, http.StatusOK, engine.ListAttachments())
}
