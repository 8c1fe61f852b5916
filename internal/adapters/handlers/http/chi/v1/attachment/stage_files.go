package attachment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

const multipartMemoryLimit = 10 << 20 //10mb in memory, larger parts spill to disk

// V1StageFilesResponse is the response listing the session view after staging
type V1StageFilesResponse struct {
	Attachments []V1Attachment `json:"attachments"`
}

// StageFilesV1 receives multipart files and stages them in the temporary tier
func (h *HandlerV1) StageFilesV1(w http.ResponseWriter, r *http.Request) {

	engine, ok := h.engineFromRequest(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		http.Error(w, "provide at least one file", http.StatusBadRequest)
		return
	}

	files := make([]domain.RawFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()

		files = append(files, domain.RawFile{
			FileName:  fh.Filename,
			MimeType:  fh.Header.Get("Content-Type"),
			SizeBytes: fh.Size,
			Content:   f,
		})
	}

	stageErr := engine.StageFiles(r.Context(), files)
	switch {
	case errors.Is(stageErr, domain.ErrCommitInProgress):
		http.Error(w, "commit in progress", http.StatusConflict)
		return
	case errors.Is(stageErr, domain.ErrInvalidFileType), errors.Is(stageErr, domain.ErrFileSizeTooBig):
		http.Error(w, stageErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(stageErr, domain.ErrUploadFailed):
		h.logger.Error("error staging files", "error", stageErr)
		//partial staging survives, report the view with 502 so the client can retry the rest
		h.writeAttachmentsV1(w, http.StatusBadGateway, engine.ListAttachments())
		return
	case stageErr != nil:
		h.logger.Error("error staging files", "error", stageErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		h.writeAttachmentsV1(w, http.StatusCreated, engine.ListAttachments())
	}
}

func (h *HandlerV1) writeAttachmentsV1(w http.ResponseWriter, status int, attachments []domain.Attachment) {
	resp := V1StageFilesResponse{Attachments: toV1Attachments(attachments)}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
