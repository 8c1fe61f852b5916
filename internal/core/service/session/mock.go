package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/port"
)

// MockSessionManager is a mock implementation of port.SessionManager
type MockSessionManager struct {
	mock.Mock
}

// NewMockSessionManager creates a new MockSessionManager
func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{}
}

func (m *MockSessionManager) Open(ctx context.Context, taskID int64) (uuid.UUID, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSessionManager) Get(id uuid.UUID) (port.AttachmentEngine, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(port.AttachmentEngine), args.Error(1)
}

func (m *MockSessionManager) Close(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionManager) ActiveBatches() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockSessionManager) ExpireIdle(ctx context.Context, cutoff time.Time) int {
	args := m.Called(ctx, cutoff)
	return args.Int(0)
}
