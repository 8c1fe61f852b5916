package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/adapters/repository/postgres"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

func newAttachment(fileName, storagePath string) domain.NewAttachment {
	return domain.NewAttachment{
		FileName:    fileName,
		StoragePath: storagePath,
		MimeType:    "application/pdf",
		Role:        domain.RoleAttachment,
	}
}

func TestSqlAttachmentRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := postgres.NewSqlAttachmentRepository(dbConnection)

	t.Run("CreateMany - Success", func(t *testing.T) {
		// Arrange
		truncate()
		rows := []domain.NewAttachment{
			newAttachment("contract.pdf", "tasks/42/contract.pdf"),
			newAttachment("evidence.jpg", "tasks/42/evidence.jpg"),
		}

		// Act
		created, err := repo.CreateMany(ctx, 42, rows)

		// Assert
		require.NoError(t, err)
		require.Len(t, created, 2)
		require.NotZero(t, created[0].ID)
		require.NotZero(t, created[1].ID)
		require.NotEqual(t, created[0].ID, created[1].ID)
		require.Equal(t, int64(42), created[0].TaskID)
		require.Equal(t, "contract.pdf", created[0].FileName)
		require.False(t, created[0].CreatedAt.IsZero())
	})

	t.Run("CreateMany - Empty Input", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		created, err := repo.CreateMany(ctx, 42, nil)

		// Assert
		require.NoError(t, err)
		require.Empty(t, created)
	})

	t.Run("CreateMany - Duplicate Path Rolls Back All", func(t *testing.T) {
		// Arrange
		truncate()
		rows := []domain.NewAttachment{
			newAttachment("a.pdf", "tasks/42/a.pdf"),
			newAttachment("b.pdf", "tasks/42/a.pdf"),
		}

		// Act
		created, err := repo.CreateMany(ctx, 42, rows)

		// Assert
		require.Error(t, err)
		require.Nil(t, created)
		remaining, err := repo.ListByTask(ctx, 42)
		require.NoError(t, err)
		require.Empty(t, remaining, "no rows should survive a failed batch")
	})

	t.Run("Delete - Success", func(t *testing.T) {
		// Arrange
		truncate()
		created, err := repo.CreateMany(ctx, 42, []domain.NewAttachment{
			newAttachment("contract.pdf", "tasks/42/contract.pdf"),
		})
		require.NoError(t, err)

		// Act
		err = repo.Delete(ctx, created[0].ID)

		// Assert
		require.NoError(t, err)
		remaining, err := repo.ListByTask(ctx, 42)
		require.NoError(t, err)
		require.Empty(t, remaining)
	})

	t.Run("Delete - Not Found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		err := repo.Delete(ctx, 999)

		// Assert
		require.ErrorIs(t, err, domain.ErrAttachmentRecordNotFound)
	})

	t.Run("ListByTask - Ordered By Creation", func(t *testing.T) {
		// Arrange
		truncate()
		first, err := repo.CreateMany(ctx, 42, []domain.NewAttachment{
			newAttachment("first.pdf", "tasks/42/first.pdf"),
		})
		require.NoError(t, err)
		second, err := repo.CreateMany(ctx, 42, []domain.NewAttachment{
			newAttachment("second.pdf", "tasks/42/second.pdf"),
		})
		require.NoError(t, err)

		// Act
		attachments, err := repo.ListByTask(ctx, 42)

		// Assert
		require.NoError(t, err)
		require.Len(t, attachments, 2)
		require.Equal(t, first[0].ID, attachments[0].ID)
		require.Equal(t, second[0].ID, attachments[1].ID)
	})

	t.Run("ListByTask - Scoped To Task", func(t *testing.T) {
		// Arrange
		truncate()
		_, err := repo.CreateMany(ctx, 42, []domain.NewAttachment{
			newAttachment("mine.pdf", "tasks/42/mine.pdf"),
		})
		require.NoError(t, err)
		_, err = repo.CreateMany(ctx, 7, []domain.NewAttachment{
			newAttachment("other.pdf", "tasks/7/other.pdf"),
		})
		require.NoError(t, err)

		// Act
		attachments, err := repo.ListByTask(ctx, 42)

		// Assert
		require.NoError(t, err)
		require.Len(t, attachments, 1)
		require.Equal(t, "mine.pdf", attachments[0].FileName)
	})

	t.Run("ListByTask - Empty", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		attachments, err := repo.ListByTask(ctx, 42)

		// Assert
		require.NoError(t, err)
		require.Empty(t, attachments)
	})
}
