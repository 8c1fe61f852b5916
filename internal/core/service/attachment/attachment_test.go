package attachment_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/adapters/eventbroker"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/adapters/repository"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/adapters/storage"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/config"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/port"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/service/attachment"
)

var defaultCfg = config.StagingConfig{
	MaxFileSize:   20 << 20,
	SessionTTL:    30 * time.Minute,
	CleanupEvery:  15 * time.Minute,
	PreviewURLTTL: 15 * time.Minute,
}

func newTestEngine() (port.AttachmentEngine, *storage.MockObjectStorage, *repository.MockAttachmentRepository, *eventbroker.MockEventPublisher) {
	mockStorage := storage.NewMockObjectStorage()
	mockRepo := repository.NewMockAttachmentRepository()
	mockEvents := eventbroker.NewMockEventPublisher()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	eng := attachment.NewEngine(mockStorage, mockRepo, mockEvents, defaultCfg, logger)
	return eng, mockStorage, mockRepo, mockEvents
}

func rawFile(name, mimeType string, size int64) domain.RawFile {
	return domain.RawFile{
		FileName:  name,
		MimeType:  mimeType,
		SizeBytes: size,
		Content:   strings.NewReader("content of " + name),
	}
}

// stageFiles sets one Put expectation per file and stages them. The returned
// temporary paths follow "staging/batch/<name>" so later expectations on
// Copy/Remove can name them concretely.
func stageFiles(t *testing.T, eng port.AttachmentEngine, mockStorage *storage.MockObjectStorage, files ...domain.RawFile) {
	t.Helper()
	for _, f := range files {
		mockStorage.
			On("Put", mock.Anything, mock.Anything, mock.Anything, f.SizeBytes, f.MimeType).
			Return(&domain.StoredObject{
				Path:      tempPath(f.FileName),
				PublicURL: publicURL(f.FileName),
			}, nil).
			Once()
	}
	require.NoError(t, eng.StageFiles(context.Background(), files))
}

func tempPath(name string) string {
	return "staging/batch/" + name
}

func publicURL(name string) string {
	return "https://minio.example.com/lawtime/staging/batch/" + name
}

// stagedID finds the engine-assigned key of a staged file by display name
func stagedID(t *testing.T, eng port.AttachmentEngine, fileName string) domain.AttachmentID {
	t.Helper()
	for _, a := range eng.ListAttachments() {
		if a.IsTemporary && a.FileName == fileName {
			return a.ID
		}
	}
	t.Fatalf("no staged file named %s", fileName)
	return domain.AttachmentID{}
}
