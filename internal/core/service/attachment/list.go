package attachment

import (
	"context"
	"fmt"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// BindTask loads the permanent records of an existing task into the session
// view. Edit-mode sessions call this once before listing or deleting.
func (e *engine) BindTask(ctx context.Context, taskID int64) error {
	records, err := e.records.ListByTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to load attachments for task %d: %w", taskID, err)
	}

	e.mu.Lock()
	e.taskID = taskID
	e.loaded = records
	e.mu.Unlock()

	return nil
}

// ListAttachments merges both tiers into one ordered collection: permanent
// records first in creation order, then staged files in upload order.
func (e *engine) ListAttachments() []domain.Attachment {
	e.mu.Lock()
	records := make([]domain.AttachmentRecord, len(e.loaded))
	copy(records, e.loaded)
	staged := make([]domain.StagedFile, 0, len(e.staged))
	for _, s := range e.staged {
		staged = append(staged, *s)
	}
	e.mu.Unlock()

	return domain.MergeAttachments(records, staged)
}
