package attachment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

func TestEngine_StageFiles_Success(t *testing.T) {
	// Arrange
	eng, mockStorage, _, _ := newTestEngine()
	files := []domain.RawFile{
		rawFile("scan.pdf", "application/pdf", 100),
		rawFile("photo.jpg", "image/jpeg", 200),
	}

	// Act
	stageFiles(t, eng, mockStorage, files...)

	// Assert
	attachments := eng.ListAttachments()
	require.Len(t, attachments, 2)
	assert.Equal(t, "scan.pdf", attachments[0].FileName)
	assert.Equal(t, "photo.jpg", attachments[1].FileName)
	for _, a := range attachments {
		assert.True(t, a.IsTemporary)
		assert.False(t, a.Uploading)
		assert.False(t, eng.IsUploading(a.ID))
	}
	mockStorage.AssertExpectations(t)
}

func TestEngine_StageFiles_SequentialOrder(t *testing.T) {
	// Arrange
	eng, mockStorage, _, _ := newTestEngine()

	var order []int64
	for _, size := range []int64{100, 200, 300} {
		size := size
		mockStorage.
			On("Put", mock.Anything, mock.Anything, mock.Anything, size, "application/pdf").
			Run(func(args mock.Arguments) {
				order = append(order, args.Get(3).(int64))
			}).
			Return(&domain.StoredObject{Path: "staging/batch/f", PublicURL: "https://pub/f"}, nil).
			Once()
	}

	files := []domain.RawFile{
		rawFile("a.pdf", "application/pdf", 100),
		rawFile("b.pdf", "application/pdf", 200),
		rawFile("c.pdf", "application/pdf", 300),
	}

	// Act
	err := eng.StageFiles(context.Background(), files)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 200, 300}, order)
}

func TestEngine_StageFiles_FailureRemovesEntryAndAbortsRest(t *testing.T) {
	// Arrange
	eng, mockStorage, _, _ := newTestEngine()
	uploadErr := errors.New("connection reset")

	mockStorage.
		On("Put", mock.Anything, mock.Anything, mock.Anything, int64(100), "application/pdf").
		Return(&domain.StoredObject{Path: tempPath("a.pdf"), PublicURL: publicURL("a.pdf")}, nil).
		Once()
	mockStorage.
		On("Put", mock.Anything, mock.Anything, mock.Anything, int64(200), "application/pdf").
		Return(nil, uploadErr).
		Once()

	files := []domain.RawFile{
		rawFile("a.pdf", "application/pdf", 100),
		rawFile("b.pdf", "application/pdf", 200),
		rawFile("c.pdf", "application/pdf", 300),
	}

	// Act
	err := eng.StageFiles(context.Background(), files)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Contains(t, err.Error(), "b.pdf")

	// No ghost entries: only the file that uploaded before the failure remains.
	attachments := eng.ListAttachments()
	require.Len(t, attachments, 1)
	assert.Equal(t, "a.pdf", attachments[0].FileName)

	// The third file's upload never started.
	mockStorage.AssertNumberOfCalls(t, "Put", 2)
}

func TestEngine_StageFiles_InvalidMimeType(t *testing.T) {
	// Arrange
	eng, mockStorage, _, _ := newTestEngine()

	// Act
	err := eng.StageFiles(context.Background(), []domain.RawFile{
		rawFile("malware.exe", "application/octet-stream", 100),
	})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFileType)
	assert.Empty(t, eng.ListAttachments())
	mockStorage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_StageFiles_MismatchedExtension(t *testing.T) {
	// Arrange
	eng, _, _, _ := newTestEngine()

	// Act
	err := eng.StageFiles(context.Background(), []domain.RawFile{
		rawFile("photo.pdf", "image/jpeg", 100),
	})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFileType)
}

func TestEngine_StageFiles_FileTooBig(t *testing.T) {
	// Arrange
	eng, _, _, _ := newTestEngine()

	// Act
	err := eng.StageFiles(context.Background(), []domain.RawFile{
		rawFile("huge.pdf", "application/pdf", defaultCfg.MaxFileSize+1),
	})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileSizeTooBig)
	assert.Empty(t, eng.ListAttachments())
}

func TestEngine_StageFiles_RejectedWhileCommitInFlight(t *testing.T) {
	// Arrange
	eng, mockStorage, mockRepo, mockEvents := newTestEngine()
	stageFiles(t, eng, mockStorage, rawFile("a.pdf", "application/pdf", 100))

	copyStarted := make(chan struct{})
	releaseCopy := make(chan struct{})
	mockStorage.
		On("Copy", mock.Anything, tempPath("a.pdf"), "tasks/7/a.pdf").
		Run(func(mock.Arguments) {
			close(copyStarted)
			<-releaseCopy
		}).
		Return(nil).
		Once()
	mockRepo.
		On("CreateMany", mock.Anything, int64(7), mock.Anything).
		Return([]domain.AttachmentRecord{{ID: 1, TaskID: 7, FileName: "a.pdf", StoragePath: "tasks/7/a.pdf"}}, nil).
		Once()
	mockStorage.On("Remove", mock.Anything, []string{tempPath("a.pdf")}).Return(nil).Once()
	mockEvents.On("Publish", mock.Anything, mock.Anything).Return(nil)

	commitDone := make(chan error, 1)
	go func() {
		_, err := eng.Commit(context.Background(), 7, true)
		commitDone <- err
	}()
	<-copyStarted

	// Act
	stageErr := eng.StageFiles(context.Background(), []domain.RawFile{
		rawFile("b.pdf", "application/pdf", 200),
	})
	_, secondCommitErr := eng.Commit(context.Background(), 7, true)
	close(releaseCopy)

	// Assert
	assert.ErrorIs(t, stageErr, domain.ErrCommitInProgress)
	assert.ErrorIs(t, secondCommitErr, domain.ErrCommitInProgress)
	require.NoError(t, <-commitDone)
	mockStorage.AssertExpectations(t)
}
