package attachment

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/config"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/port"
)

// engine holds the attachment state of one editing session: the staging
// registry, the records loaded for the bound task and the guards that keep
// staging, committing and deleting from interleaving badly.
type engine struct {
	storage port.ObjectStorage
	records port.AttachmentRepository
	events  port.EventPublisher
	cfg     config.StagingConfig
	logger  *slog.Logger

	batchID string

	mu         sync.Mutex
	taskID     int64
	staged     []*domain.StagedFile
	loaded     []domain.AttachmentRecord
	committing bool
	deleting   map[int64]struct{}
}

// NewEngine creates an attachment engine for a fresh upload batch
func NewEngine(storage port.ObjectStorage, records port.AttachmentRepository, events port.EventPublisher, cfg config.StagingConfig, logger *slog.Logger) port.AttachmentEngine {
	batchID := uuid.New().String()
	return &engine{
		storage:  storage,
		records:  records,
		events:   events,
		cfg:      cfg,
		logger:   logger.With("batch_id", batchID),
		batchID:  batchID,
		deleting: make(map[int64]struct{}),
	}
}

// BatchID returns the upload batch correlation ID
func (e *engine) BatchID() string {
	return e.batchID
}

// IsUploading reports whether a staged file's upload is still in flight
func (e *engine) IsUploading(id domain.AttachmentID) bool {
	if !id.IsTemporary() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.findStaged(id.StagedKey)
	return s != nil && s.Uploading
}

// IsDeleting reports whether a permanent record's deletion is in flight
func (e *engine) IsDeleting(id domain.AttachmentID) bool {
	if id.IsTemporary() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.deleting[id.RecordID]
	return ok
}

// findStaged must be called with e.mu held
func (e *engine) findStaged(key string) *domain.StagedFile {
	for _, s := range e.staged {
		if s.Key == key {
			return s
		}
	}
	return nil
}

// findRecord must be called with e.mu held
func (e *engine) findRecord(recordID int64) *domain.AttachmentRecord {
	for i := range e.loaded {
		if e.loaded[i].ID == recordID {
			return &e.loaded[i]
		}
	}
	return nil
}

// removeStaged must be called with e.mu held
func (e *engine) removeStaged(key string) {
	kept := e.staged[:0]
	for _, s := range e.staged {
		if s.Key != key {
			kept = append(kept, s)
		}
	}
	e.staged = kept
}

func (e *engine) stagingPath(key string) string {
	return fmt.Sprintf("staging/%s/%s", e.batchID, key)
}

// publish sends an attachment event; failures are logged and never escalated
func (e *engine) publish(ctx context.Context, event domain.AttachmentEvent) {
	if e.events == nil {
		return
	}
	event.BatchID = e.batchID
	event.OccurredAt = time.Now()
	if err := e.events.Publish(ctx, event); err != nil {
		e.logger.Warn("failed to publish attachment event", "type", event.Type, "error", err)
	}
}

// AllowedAttachmentMimeTypes is a whitelist of supported attachment MIME
// types and their extensions. Deterministic, does not rely on OS mime
// databases.
var AllowedAttachmentMimeTypes = map[string][]string{
	// Images
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
	"image/heic": {".heic"},
	"image/heif": {".heif"},

	// Documents
	"application/pdf": {".pdf"},

	// Audio notes
	"audio/mpeg": {".mp3"},
	"audio/mp4":  {".m4a"},
	"audio/wav":  {".wav"},
	"audio/ogg":  {".ogg"},
}

func (e *engine) validateAttachmentFile(f domain.RawFile) (string, error) {
	if f.SizeBytes > e.cfg.MaxFileSize {
		return "", fmt.Errorf("%w: %s (%d bytes)", domain.ErrFileSizeTooBig, f.FileName, f.SizeBytes)
	}

	mimeType := extractMimeType(f.MimeType)
	if mimeType == "" {
		return "", fmt.Errorf("%w: invalid content type %q", domain.ErrInvalidFileType, f.MimeType)
	}

	allowedExts, ok := AllowedAttachmentMimeTypes[mimeType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported MIME type %s", domain.ErrInvalidFileType, mimeType)
	}

	if err := validateExtension(f.FileName, allowedExts); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidFileType, err)
	}

	return mimeType, nil
}

func validateExtension(filename string, allowedExts []string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return fmt.Errorf("no file extension found")
	}

	for _, allowed := range allowedExts {
		if ext == allowed {
			return nil
		}
	}

	return fmt.Errorf("extension %s is not allowed (expected one of: %v)", ext, allowedExts)
}

func extractMimeType(contentType string) string {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mimeType
}
