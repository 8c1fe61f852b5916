package cleanup

import (
	"context"
	"time"
)

// CleanupIdleSessions expires staging sessions with no activity for the
// session TTL, clearing their staged files
func (c *cleanupService) CleanupIdleSessions(ctx context.Context) int {
	cutoff := time.Now().Add(-c.sessionTTL)
	expired := c.sessions.ExpireIdle(ctx, cutoff)
	if expired > 0 {
		c.logger.Info("expired idle staging sessions", "count", expired)
	}
	return expired
}
