package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// MockAttachmentRepository is a mock implementation of port.AttachmentRepository
type MockAttachmentRepository struct {
	mock.Mock
}

// NewMockAttachmentRepository creates a new MockAttachmentRepository
func NewMockAttachmentRepository() *MockAttachmentRepository {
	return &MockAttachmentRepository{}
}

func (m *MockAttachmentRepository) CreateMany(ctx context.Context, taskID int64, rows []domain.NewAttachment) ([]domain.AttachmentRecord, error) {
	args := m.Called(ctx, taskID, rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttachmentRecord), args.Error(1)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, recordID int64) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

func (m *MockAttachmentRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.AttachmentRecord, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttachmentRecord), args.Error(1)
}
