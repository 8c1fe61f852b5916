package port

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionManager tracks one AttachmentEngine per editing session
type SessionManager interface {
	Open(ctx context.Context, taskID int64) (uuid.UUID, error)
	Get(id uuid.UUID) (AttachmentEngine, error)
	Close(ctx context.Context, id uuid.UUID) error
	ActiveBatches() []string
	ExpireIdle(ctx context.Context, cutoff time.Time) int
}
