package attachment

import (
	"context"
	"fmt"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// Delete removes an attachment from whichever tier its ID addresses
func (e *engine) Delete(ctx context.Context, id domain.AttachmentID) error {
	if id.IsTemporary() {
		return e.deleteStaged(ctx, id.StagedKey)
	}
	return e.deletePermanent(ctx, id.RecordID)
}

// deleteStaged removes the entry from the staging registry synchronously.
// The temporary object itself is cleaned up best-effort; a leftover staged
// object is reclaimed later by the cleanup sweep.
func (e *engine) deleteStaged(ctx context.Context, key string) error {
	e.mu.Lock()
	s := e.findStaged(key)
	if s == nil {
		e.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrAttachmentNotFound, key)
	}
	storagePath := s.StoragePath
	e.removeStaged(key)
	e.mu.Unlock()

	if storagePath != "" {
		if err := e.storage.Remove(ctx, []string{storagePath}); err != nil {
			e.logger.Warn("failed to remove staged object", "path", storagePath, "error", err)
		}
	}

	e.logger.Info("staged file deleted", "key", key)
	return nil
}

// deletePermanent deletes the storage object and then the record. A second
// delete for the same record while one is in flight is a no-op. On failure
// the loaded records are resynchronized from the repository instead of
// guessing the resulting state.
func (e *engine) deletePermanent(ctx context.Context, recordID int64) error {
	e.mu.Lock()
	if _, inFlight := e.deleting[recordID]; inFlight {
		e.mu.Unlock()
		return nil
	}
	rec := e.findRecord(recordID)
	if rec == nil {
		e.mu.Unlock()
		return fmt.Errorf("%w: %d", domain.ErrAttachmentNotFound, recordID)
	}
	e.deleting[recordID] = struct{}{}
	storagePath := rec.StoragePath
	fileName := rec.FileName
	taskID := e.taskID
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		delete(e.deleting, recordID)
		e.mu.Unlock()
	}()

	err := e.storage.Remove(ctx, []string{storagePath})
	if err == nil {
		err = e.records.Delete(ctx, recordID)
	}
	if err != nil {
		e.resyncRecords(ctx)
		return fmt.Errorf("%w: %d: %w", domain.ErrDeleteFailed, recordID, err)
	}

	e.mu.Lock()
	kept := e.loaded[:0]
	for _, r := range e.loaded {
		if r.ID != recordID {
			kept = append(kept, r)
		}
	}
	e.loaded = kept
	e.mu.Unlock()

	e.publish(ctx, domain.AttachmentEvent{
		Type:        domain.EventTypeAttachmentDeleted,
		TaskID:      taskID,
		RecordID:    recordID,
		FileName:    fileName,
		StoragePath: storagePath,
	})

	e.logger.Info("attachment deleted", "record_id", recordID)
	return nil
}

// resyncRecords reloads the permanent records from the repository after a
// failed delete. Resync failures are logged; the stale view is better than
// an invented one.
func (e *engine) resyncRecords(ctx context.Context) {
	e.mu.Lock()
	taskID := e.taskID
	e.mu.Unlock()

	if taskID == 0 {
		return
	}

	records, err := e.records.ListByTask(ctx, taskID)
	if err != nil {
		e.logger.Error("failed to resync attachment records", "task_id", taskID, "error", err)
		return
	}

	e.mu.Lock()
	e.loaded = records
	e.mu.Unlock()
}
