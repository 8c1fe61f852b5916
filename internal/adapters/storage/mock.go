package storage

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// MockObjectStorage is a mock implementation of port.ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

// NewMockObjectStorage creates a new MockObjectStorage
func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{}
}

func (m *MockObjectStorage) Put(ctx context.Context, path string, content io.Reader, size int64, mimeType string) (*domain.StoredObject, error) {
	args := m.Called(ctx, path, content, size, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredObject), args.Error(1)
}

func (m *MockObjectStorage) Copy(ctx context.Context, srcPath, dstPath string) error {
	args := m.Called(ctx, srcPath, dstPath)
	return args.Error(0)
}

func (m *MockObjectStorage) Remove(ctx context.Context, paths []string) error {
	args := m.Called(ctx, paths)
	return args.Error(0)
}

func (m *MockObjectStorage) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, *time.Time, error) {
	args := m.Called(ctx, path, ttl)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*time.Time), args.Error(2)
}

func (m *MockObjectStorage) List(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
