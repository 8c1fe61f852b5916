package cleanup

import (
	"log/slog"
	"time"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/port"
)

// stagingPrefix is the temporary-tier namespace swept for orphans
const stagingPrefix = "staging/"

type cleanupService struct {
	sessions   port.SessionManager
	storage    port.ObjectStorage
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(sessions port.SessionManager, storage port.ObjectStorage, sessionTTL time.Duration, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		sessions:   sessions,
		storage:    storage,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}
