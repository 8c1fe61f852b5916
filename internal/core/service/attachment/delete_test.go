package attachment_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/adapters/repository"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/port"
)

func bindTaskWith(t *testing.T, eng port.AttachmentEngine, mockRepo *repository.MockAttachmentRepository, records []domain.AttachmentRecord) {
	t.Helper()
	mockRepo.On("ListByTask", mock.Anything, int64(7)).Return(records, nil).Once()
	require.NoError(t, eng.BindTask(context.Background(), 7))
}

func TestEngine_Delete_StagedFile_Synchronous(t *testing.T) {
	// Arrange
	eng, mockStorage, _, _ := newTestEngine()
	stageFiles(t, eng, mockStorage, rawFile("a.pdf", "application/pdf", 100))
	id := stagedID(t, eng, "a.pdf")

	mockStorage.On("Remove", mock.Anything, []string{tempPath("a.pdf")}).Return(nil).Once()

	// Act
	err := eng.Delete(context.Background(), id)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, eng.ListAttachments())
	mockStorage.AssertExpectations(t)
}

func TestEngine_Delete_StagedFile_StorageFailureIsBestEffort(t *testing.T) {
	// Arrange
	eng, mockStorage, _, _ := newTestEngine()
	stageFiles(t, eng, mockStorage, rawFile("a.pdf", "application/pdf", 100))
	id := stagedID(t, eng, "a.pdf")

	mockStorage.On("Remove", mock.Anything, mock.Anything).Return(errors.New("storage down")).Once()

	// Act
	err := eng.Delete(context.Background(), id)

	// Assert: the registry entry is gone regardless; the orphaned temp
	// object is the cleanup sweep's problem.
	require.NoError(t, err)
	assert.Empty(t, eng.ListAttachments())
}

func TestEngine_Delete_StagedFile_UnknownKey(t *testing.T) {
	// Arrange
	eng, _, _, _ := newTestEngine()

	// Act
	err := eng.Delete(context.Background(), domain.StagedID("nope"))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
}

func TestEngine_Delete_PermanentRecord_Success(t *testing.T) {
	// Arrange
	eng, mockStorage, mockRepo, mockEvents := newTestEngine()
	bindTaskWith(t, eng, mockRepo, []domain.AttachmentRecord{
		{ID: 11, TaskID: 7, FileName: "a.pdf", StoragePath: "tasks/7/a.pdf"},
		{ID: 12, TaskID: 7, FileName: "b.jpg", StoragePath: "tasks/7/b.jpg"},
	})

	mockStorage.On("Remove", mock.Anything, []string{"tasks/7/a.pdf"}).Return(nil).Once()
	mockRepo.On("Delete", mock.Anything, int64(11)).Return(nil).Once()
	mockEvents.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	// Act
	err := eng.Delete(context.Background(), domain.RecordID(11))

	// Assert
	require.NoError(t, err)
	attachments := eng.ListAttachments()
	require.Len(t, attachments, 1)
	assert.Equal(t, int64(12), attachments[0].ID.RecordID)
	assert.False(t, eng.IsDeleting(domain.RecordID(11)))
	mockStorage.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestEngine_Delete_PermanentRecord_DuplicateConcurrentIsNoOp(t *testing.T) {
	// Arrange
	eng, mockStorage, mockRepo, mockEvents := newTestEngine()
	bindTaskWith(t, eng, mockRepo, []domain.AttachmentRecord{
		{ID: 11, TaskID: 7, FileName: "a.pdf", StoragePath: "tasks/7/a.pdf"},
	})

	removeStarted := make(chan struct{})
	releaseRemove := make(chan struct{})
	mockStorage.
		On("Remove", mock.Anything, []string{"tasks/7/a.pdf"}).
		Run(func(mock.Arguments) {
			close(removeStarted)
			<-releaseRemove
		}).
		Return(nil).
		Once()
	mockRepo.On("Delete", mock.Anything, int64(11)).Return(nil).Once()
	mockEvents.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		firstErr = eng.Delete(context.Background(), domain.RecordID(11))
	}()
	<-removeStarted

	// Act: a second tap while the first delete is in flight.
	assert.True(t, eng.IsDeleting(domain.RecordID(11)))
	secondErr := eng.Delete(context.Background(), domain.RecordID(11))
	close(releaseRemove)
	wg.Wait()

	// Assert: exactly one storage delete and one record delete.
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	mockStorage.AssertNumberOfCalls(t, "Remove", 1)
	mockRepo.AssertNumberOfCalls(t, "Delete", 1)
	assert.False(t, eng.IsDeleting(domain.RecordID(11)))
}

func TestEngine_Delete_PermanentRecord_FailureResyncsView(t *testing.T) {
	// Arrange
	eng, mockStorage, mockRepo, _ := newTestEngine()
	bindTaskWith(t, eng, mockRepo, []domain.AttachmentRecord{
		{ID: 11, TaskID: 7, FileName: "a.pdf", StoragePath: "tasks/7/a.pdf"},
	})

	deleteErr := errors.New("row locked")
	mockStorage.On("Remove", mock.Anything, []string{"tasks/7/a.pdf"}).Return(nil).Once()
	mockRepo.On("Delete", mock.Anything, int64(11)).Return(deleteErr).Once()

	// The view is invalidated and refetched rather than guessed.
	resynced := []domain.AttachmentRecord{
		{ID: 11, TaskID: 7, FileName: "a.pdf", StoragePath: "tasks/7/a.pdf"},
	}
	mockRepo.On("ListByTask", mock.Anything, int64(7)).Return(resynced, nil).Once()

	// Act
	err := eng.Delete(context.Background(), domain.RecordID(11))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeleteFailed)
	assert.ErrorIs(t, err, deleteErr)
	assert.False(t, eng.IsDeleting(domain.RecordID(11)))
	require.Len(t, eng.ListAttachments(), 1)
	mockRepo.AssertExpectations(t)
}

func TestEngine_Delete_PermanentRecord_Unknown(t *testing.T) {
	// Arrange
	eng, mockStorage, mockRepo, _ := newTestEngine()
	bindTaskWith(t, eng, mockRepo, nil)

	// Act
	err := eng.Delete(context.Background(), domain.RecordID(99))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
	mockStorage.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
