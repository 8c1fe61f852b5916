package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/config"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/port"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/service/attachment"
)

type managedSession struct {
	engine     port.AttachmentEngine
	lastActive time.Time
}

// manager keeps one attachment engine per editing session. The staging
// registry inside each engine is never shared across sessions or tasks.
type manager struct {
	storage port.ObjectStorage
	records port.AttachmentRepository
	events  port.EventPublisher
	cfg     config.StagingConfig
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*managedSession
}

// NewManager creates a new session manager
func NewManager(storage port.ObjectStorage, records port.AttachmentRepository, events port.EventPublisher, cfg config.StagingConfig, logger *slog.Logger) port.SessionManager {
	return &manager{
		storage:  storage,
		records:  records,
		events:   events,
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[uuid.UUID]*managedSession),
	}
}

// Open starts an editing session. A task ID binds the session to an existing
// task so its permanent attachments appear in the view; zero means the task
// does not exist yet (new-task flow) and a task is bound at commit time.
func (m *manager) Open(ctx context.Context, taskID int64) (uuid.UUID, error) {
	eng := attachment.NewEngine(m.storage, m.records, m.events, m.cfg, m.logger)
	if taskID > 0 {
		if err := eng.BindTask(ctx, taskID); err != nil {
			return uuid.Nil, fmt.Errorf("failed to open session for task %d: %w", taskID, err)
		}
	}

	id := uuid.New()
	m.mu.Lock()
	m.sessions[id] = &managedSession{engine: eng, lastActive: time.Now()}
	m.mu.Unlock()

	m.logger.Info("staging session opened", "session_id", id, "task_id", taskID, "batch_id", eng.BatchID())
	return id, nil
}

// Get returns the session's engine and refreshes its idle timer
func (m *manager) Get(id uuid.UUID) (port.AttachmentEngine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	s.lastActive = time.Now()
	return s.engine, nil
}

// Close ends a session and clears its staging
func (m *manager) Close(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	if err := s.engine.ClearStaging(ctx); err != nil {
		m.logger.Warn("failed to clear staging on session close", "session_id", id, "error", err)
	}

	m.logger.Info("staging session closed", "session_id", id)
	return nil
}

// ActiveBatches lists the upload batch IDs of all live sessions
func (m *manager) ActiveBatches() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	batches := make([]string, 0, len(m.sessions))
	for _, s := range m.sessions {
		batches = append(batches, s.engine.BatchID())
	}
	return batches
}

// ExpireIdle closes every session inactive since before the cutoff and
// returns how many were expired
func (m *manager) ExpireIdle(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	var expired []*managedSession
	for id, s := range m.sessions {
		if s.lastActive.Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		if err := s.engine.ClearStaging(ctx); err != nil {
			m.logger.Warn("failed to clear staging on session expiry", "batch_id", s.engine.BatchID(), "error", err)
		}
	}

	return len(expired)
}
