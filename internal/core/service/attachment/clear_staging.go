package attachment

import (
	"context"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// ClearStaging drops every staged file and best-effort deletes their
// temporary objects. Rejected while a commit is draining the registry.
func (e *engine) ClearStaging(ctx context.Context) error {
	e.mu.Lock()
	if e.committing {
		e.mu.Unlock()
		return domain.ErrCommitInProgress
	}

	var paths []string
	for _, s := range e.staged {
		if s.StoragePath != "" {
			paths = append(paths, s.StoragePath)
		}
	}
	cleared := len(e.staged)
	e.staged = nil
	e.mu.Unlock()

	if len(paths) > 0 {
		if err := e.storage.Remove(ctx, paths); err != nil {
			e.logger.Warn("failed to remove staged objects", "paths", len(paths), "error", err)
		}
	}

	if cleared > 0 {
		e.logger.Info("staging cleared", "files", cleared)
	}
	return nil
}
