package port

import (
	"context"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// AttachmentRepository is an interface to define attachment record
// interactions. CreateMany must be atomic: either every row of a commit
// batch is created or none is.
type AttachmentRepository interface {
	CreateMany(ctx context.Context, taskID int64, rows []domain.NewAttachment) ([]domain.AttachmentRecord, error)
	Delete(ctx context.Context, recordID int64) error
	ListByTask(ctx context.Context, taskID int64) ([]domain.AttachmentRecord, error)
}
