package attachment

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// MockAttachmentEngine is a mock implementation of port.AttachmentEngine
type MockAttachmentEngine struct {
	mock.Mock
}

// NewMockAttachmentEngine creates a new MockAttachmentEngine
func NewMockAttachmentEngine() *MockAttachmentEngine {
	return &MockAttachmentEngine{}
}

func (m *MockAttachmentEngine) BatchID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockAttachmentEngine) BindTask(ctx context.Context, taskID int64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *MockAttachmentEngine) StageFiles(ctx context.Context, files []domain.RawFile) error {
	args := m.Called(ctx, files)
	return args.Error(0)
}

func (m *MockAttachmentEngine) Commit(ctx context.Context, taskID int64, clearStagingAfter bool) ([]domain.AttachmentRecord, error) {
	args := m.Called(ctx, taskID, clearStagingAfter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttachmentRecord), args.Error(1)
}

func (m *MockAttachmentEngine) ClearStaging(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttachmentEngine) Delete(ctx context.Context, id domain.AttachmentID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttachmentEngine) ResolvePreviewURL(ctx context.Context, id domain.AttachmentID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentEngine) ListAttachments() []domain.Attachment {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Attachment)
}

func (m *MockAttachmentEngine) IsUploading(id domain.AttachmentID) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockAttachmentEngine) IsDeleting(id domain.AttachmentID) bool {
	args := m.Called(id)
	return args.Bool(0)
}
