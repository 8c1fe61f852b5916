package cleanup

import (
	"context"
	"fmt"
	"strings"
)

// CleanupOrphanedStaging removes temporary objects whose upload batch belongs
// to no live session. Such objects are left behind by crashed processes or
// by best-effort deletions that never completed; the batch segment in the
// object path is the correlation ID that makes them attributable.
func (c *cleanupService) CleanupOrphanedStaging(ctx context.Context) error {
	paths, err := c.storage.List(ctx, stagingPrefix)
	if err != nil {
		return fmt.Errorf("failed to list staging objects: %w", err)
	}

	live := make(map[string]bool)
	for _, batch := range c.sessions.ActiveBatches() {
		live[batch] = true
	}

	var orphaned []string
	for _, p := range paths {
		rest := strings.TrimPrefix(p, stagingPrefix)
		batch, _, ok := strings.Cut(rest, "/")
		if !ok || !live[batch] {
			orphaned = append(orphaned, p)
		}
	}

	if len(orphaned) == 0 {
		return nil
	}

	if err := c.storage.Remove(ctx, orphaned); err != nil {
		return fmt.Errorf("failed to remove orphaned staging objects: %w", err)
	}

	c.logger.Info("removed orphaned staging objects", "count", len(orphaned))
	return nil
}
