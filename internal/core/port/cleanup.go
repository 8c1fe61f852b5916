package port

import "context"

// CleanupService reclaims temporary-tier resources: idle staging sessions
// and orphaned staged objects left behind by crashed sessions
type CleanupService interface {
	CleanupIdleSessions(ctx context.Context) int
	CleanupOrphanedStaging(ctx context.Context) error
}
