package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/port"
)

type sqlAttachmentRepository struct {
	db *sql.DB
}

// NewSqlAttachmentRepository creates sqlAttachmentRepository that implements port.AttachmentRepository
func NewSqlAttachmentRepository(db *sql.DB) port.AttachmentRepository {
	return &sqlAttachmentRepository{
		db: db,
	}
}

// CreateMany inserts all rows in one transaction, all rows or none
func (s *sqlAttachmentRepository) CreateMany(ctx context.Context, taskID int64, rows []domain.NewAttachment) ([]domain.AttachmentRecord, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO task_attachments (task_id, file_name, storage_path, mime_type, role)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id, created_at`

	created := make([]domain.AttachmentRecord, 0, len(rows))
	for _, r := range rows {
		var id int64
		var createdAt time.Time
		err := tx.QueryRowContext(ctx, query, taskID, r.FileName, r.StoragePath, r.MimeType, r.Role).
			Scan(&id, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("error inserting attachment %s: %w", r.FileName, err)
		}
		created = append(created, domain.AttachmentRecord{
			ID:          id,
			TaskID:      taskID,
			FileName:    r.FileName,
			StoragePath: r.StoragePath,
			MimeType:    r.MimeType,
			Role:        r.Role,
			CreatedAt:   createdAt,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}
	return created, nil
}

// Delete removes the record
func (s *sqlAttachmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM task_attachments WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting attachment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrAttachmentRecordNotFound
	}

	return nil
}

// ListByTask returns a task's attachments oldest first
func (s *sqlAttachmentRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.AttachmentRecord, error) {
	query := `SELECT id, task_id, file_name, storage_path, mime_type, role, created_at
              FROM task_attachments
              WHERE task_id = $1
              ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("error querying attachments: %w", err)
	}
	defer rows.Close()

	var attachments []domain.AttachmentRecord
	for rows.Next() {
		var dbRow dbAttachment
		err := rows.Scan(
			&dbRow.ID,
			&dbRow.TaskID,
			&dbRow.FileName,
			&dbRow.StoragePath,
			&dbRow.MimeType,
			&dbRow.Role,
			&dbRow.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning attachment: %w", err)
		}
		attachments = append(attachments, *dbRow.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attachments: %w", err)
	}

	return attachments, nil
}

// dbAttachment represents an attachment row in DB
type dbAttachment struct {
	ID          int64     `db:"id"`
	TaskID      int64     `db:"task_id"`
	FileName    string    `db:"file_name"`
	StoragePath string    `db:"storage_path"`
	MimeType    string    `db:"mime_type"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

// ToDomain converts to domain.AttachmentRecord
func (a *dbAttachment) ToDomain() *domain.AttachmentRecord {
	return &domain.AttachmentRecord{
		ID:          a.ID,
		TaskID:      a.TaskID,
		FileName:    a.FileName,
		StoragePath: a.StoragePath,
		MimeType:    a.MimeType,
		Role:        a.Role,
		CreatedAt:   a.CreatedAt,
	}
}
