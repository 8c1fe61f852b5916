package attachment

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// StageFiles uploads files into the temporary tier one at a time. Uploads
// are deliberately sequential: file N+1 never starts before file N resolved,
// which bounds backend load and makes failures attributable to one file.
//
// Each file is inserted into the staging registry with Uploading set before
// its network call starts, so callers see per-file progress immediately. A
// failed upload removes its own entry and aborts the remaining files;
// earlier successes stay staged.
func (e *engine) StageFiles(ctx context.Context, files []domain.RawFile) error {
	e.mu.Lock()
	if e.committing {
		e.mu.Unlock()
		return domain.ErrCommitInProgress
	}
	e.mu.Unlock()

	for _, f := range files {
		mimeType, err := e.validateAttachmentFile(f)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrUploadFailed, f.FileName, err)
		}

		key := uuid.New().String() + strings.ToLower(filepath.Ext(f.FileName))
		entry := &domain.StagedFile{
			Key:       key,
			FileName:  f.FileName,
			MimeType:  mimeType,
			SizeBytes: f.SizeBytes,
			Uploading: true,
		}

		e.mu.Lock()
		e.staged = append(e.staged, entry)
		e.mu.Unlock()

		obj, putErr := e.storage.Put(ctx, e.stagingPath(key), f.Content, f.SizeBytes, mimeType)
		if putErr != nil {
			e.mu.Lock()
			e.removeStaged(key)
			e.mu.Unlock()
			return fmt.Errorf("%w: %s: %w", domain.ErrUploadFailed, f.FileName, putErr)
		}

		e.mu.Lock()
		entry.StoragePath = obj.Path
		entry.PublicURL = obj.PublicURL
		entry.Uploading = false
		e.mu.Unlock()

		e.logger.Info("file staged", "key", key, "file", f.FileName, "size", f.SizeBytes)
	}

	return nil
}
