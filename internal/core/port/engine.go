package port

import (
	"context"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// AttachmentEngine drives attachments for one editing session: staging
// uploads into the temporary tier, committing them to a task, deleting from
// either tier and resolving preview URLs. An engine is owned by exactly one
// session and must not be shared across tasks.
type AttachmentEngine interface {
	// BatchID returns the upload batch correlation ID scoping this session's
	// temporary storage.
	BatchID() string

	// BindTask loads the permanent records of an existing task into the view.
	BindTask(ctx context.Context, taskID int64) error

	// StageFiles uploads files sequentially into the temporary tier. It is
	// rejected with ErrCommitInProgress while a commit is running. On the
	// first failing file the remaining files are aborted; earlier successes
	// stay staged.
	StageFiles(ctx context.Context, files []domain.RawFile) error

	// Commit promotes every fully uploaded staged file to the permanent
	// tier and creates their records in one batch. On failure every object
	// copied by this attempt is rolled back and the staged files are left
	// untouched for retry.
	Commit(ctx context.Context, taskID int64, clearStagingAfter bool) ([]domain.AttachmentRecord, error)

	// ClearStaging drops all staged files and best-effort deletes their
	// temporary objects.
	ClearStaging(ctx context.Context) error

	// Delete removes an attachment from whichever tier its ID addresses.
	Delete(ctx context.Context, id domain.AttachmentID) error

	// ResolvePreviewURL returns a fetchable URL: the known public URL for a
	// staged file, a freshly signed URL for a permanent record.
	ResolvePreviewURL(ctx context.Context, id domain.AttachmentID) (string, error)

	// ListAttachments merges both tiers into one ordered view, permanent
	// records first.
	ListAttachments() []domain.Attachment

	IsUploading(id domain.AttachmentID) bool
	IsDeleting(id domain.AttachmentID) bool
}
