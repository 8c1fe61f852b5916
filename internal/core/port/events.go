package port

import (
	"context"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// EventPublisher is an interface to notify downstream consumers of
// permanent-tier mutations. Publishing is best-effort for callers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.AttachmentEvent) error
}
