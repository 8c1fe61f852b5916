package attachment

import (
	"context"
	"fmt"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// ResolvePreviewURL returns a fetchable URL for an attachment. Staged files
// expose their public URL once uploaded; permanent objects are
// access-controlled, so a fresh time-limited URL is signed on every call and
// never cached.
func (e *engine) ResolvePreviewURL(ctx context.Context, id domain.AttachmentID) (string, error) {
	if id.IsTemporary() {
		e.mu.Lock()
		s := e.findStaged(id.StagedKey)
		if s == nil {
			e.mu.Unlock()
			return "", fmt.Errorf("%w: %s", domain.ErrAttachmentNotFound, id.StagedKey)
		}
		uploading := s.Uploading
		publicURL := s.PublicURL
		fileName := s.FileName
		e.mu.Unlock()

		if uploading || publicURL == "" {
			return "", fmt.Errorf("%w: %s", domain.ErrPreviewNotReady, fileName)
		}
		return publicURL, nil
	}

	e.mu.Lock()
	rec := e.findRecord(id.RecordID)
	if rec == nil {
		e.mu.Unlock()
		return "", fmt.Errorf("%w: %d", domain.ErrAttachmentNotFound, id.RecordID)
	}
	storagePath := rec.StoragePath
	e.mu.Unlock()

	url, _, err := e.storage.SignedURL(ctx, storagePath, e.cfg.PreviewURLTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign preview url for %s: %w", storagePath, err)
	}
	return url, nil
}
