package port

import (
	"context"
	"io"
	"time"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// ObjectStorage is an interface to define object storage interactions.
// Temporary and permanent tiers live in one bucket under distinct prefixes,
// so Copy is a cheap server-side promotion, never a download and re-upload.
type ObjectStorage interface {
	Put(ctx context.Context, path string, content io.Reader, size int64, mimeType string) (*domain.StoredObject, error)
	Copy(ctx context.Context, srcPath, dstPath string) error
	Remove(ctx context.Context, paths []string) error
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, *time.Time, error)
	List(ctx context.Context, prefix string) ([]string, error)
}
