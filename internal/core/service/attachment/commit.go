package attachment

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

type promotedFile struct {
	staged   *domain.StagedFile
	permPath string
}

// Commit promotes every fully uploaded staged file to the permanent tier.
//
// Two phases with compensation: first each eligible object is copied
// server-side to its permanent path, stopping at the first failure; then all
// records are created in one atomic batch. If either phase fails, every
// object copied by this attempt is deleted again (best-effort, the original
// error is never masked) and the staging registry is left untouched so the
// caller can retry. Files still mid-upload are skipped, not errored.
func (e *engine) Commit(ctx context.Context, taskID int64, clearStagingAfter bool) ([]domain.AttachmentRecord, error) {
	if taskID <= 0 {
		return nil, fmt.Errorf("%w: task id %d", domain.ErrTaskNotBound, taskID)
	}

	e.mu.Lock()
	if e.committing {
		e.mu.Unlock()
		return nil, domain.ErrCommitInProgress
	}
	e.committing = true
	e.taskID = taskID

	eligible := make([]*domain.StagedFile, 0, len(e.staged))
	for _, s := range e.staged {
		if !s.Uploading && s.StoragePath != "" {
			eligible = append(eligible, s)
		}
	}
	takenNames := make(map[string]bool, len(e.loaded))
	for _, r := range e.loaded {
		takenNames[path.Base(r.StoragePath)] = true
	}
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.committing = false
		e.mu.Unlock()
	}()

	if len(eligible) == 0 {
		return nil, nil
	}

	// Copy phase: stop issuing copies at the first failure.
	promoted := make([]promotedFile, 0, len(eligible))
	var commitErr error
	for _, s := range eligible {
		permPath := permanentPath(taskID, s.FileName, takenNames)
		if err := e.storage.Copy(ctx, s.StoragePath, permPath); err != nil {
			commitErr = err
			break
		}
		promoted = append(promoted, promotedFile{staged: s, permPath: permPath})
	}

	// Record phase: one atomic batch create.
	var created []domain.AttachmentRecord
	if commitErr == nil {
		rows := make([]domain.NewAttachment, 0, len(promoted))
		for _, p := range promoted {
			rows = append(rows, domain.NewAttachment{
				FileName:    p.staged.FileName,
				StoragePath: p.permPath,
				MimeType:    p.staged.MimeType,
				Role:        domain.RoleAttachment,
			})
		}
		created, commitErr = e.records.CreateMany(ctx, taskID, rows)
	}

	if commitErr != nil {
		e.rollbackCopies(ctx, promoted)
		return nil, fmt.Errorf("%w: %d file(s): %w", domain.ErrCommitFailed, len(eligible), commitErr)
	}

	e.mu.Lock()
	e.loaded = append(e.loaded, created...)
	var tempPaths []string
	if clearStagingAfter {
		committed := make(map[string]bool, len(promoted))
		for _, p := range promoted {
			committed[p.staged.Key] = true
			tempPaths = append(tempPaths, p.staged.StoragePath)
		}
		kept := e.staged[:0]
		for _, s := range e.staged {
			if !committed[s.Key] {
				kept = append(kept, s)
			}
		}
		e.staged = kept
	}
	e.mu.Unlock()

	// The temporary objects are orphaned data now, not a data-loss risk.
	if len(tempPaths) > 0 {
		if err := e.storage.Remove(ctx, tempPaths); err != nil {
			e.logger.Warn("failed to remove staged objects after commit", "error", err)
		}
	}

	for _, rec := range created {
		e.publish(ctx, domain.AttachmentEvent{
			Type:        domain.EventTypeAttachmentCommitted,
			TaskID:      taskID,
			RecordID:    rec.ID,
			FileName:    rec.FileName,
			StoragePath: rec.StoragePath,
		})
	}

	e.logger.Info("commit completed", "task_id", taskID, "files", len(created))
	return created, nil
}

// rollbackCopies deletes the permanent objects copied by a failed attempt.
// Failures here are logged, not raised, so they never mask the commit error.
func (e *engine) rollbackCopies(ctx context.Context, promoted []promotedFile) {
	if len(promoted) == 0 {
		return
	}

	paths := make([]string, 0, len(promoted))
	for _, p := range promoted {
		paths = append(paths, p.permPath)
	}

	if err := e.storage.Remove(ctx, paths); err != nil {
		e.logger.Error("rollback of copied objects failed", "paths", len(paths), "error", err)
		return
	}
	e.logger.Info("rolled back copied objects", "paths", len(paths))
}

// permanentPath derives the permanent object path for a staged file from the
// task and its display name, suffixing a short unique fragment when the name
// is already taken within this task.
func permanentPath(taskID int64, fileName string, taken map[string]bool) string {
	name := path.Base(fileName)
	if taken[name] {
		ext := path.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		name = fmt.Sprintf("%s_%s%s", stem, uuid.New().String()[:8], ext)
	}
	taken[name] = true
	return fmt.Sprintf("tasks/%d/%s", taskID, name)
}
