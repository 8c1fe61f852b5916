package eventbroker

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// MockEventPublisher is a mock implementation of port.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.AttachmentEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
