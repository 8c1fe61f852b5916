package domain

import "time"

// EventType is a type that represents the type of an attachment event
type EventType string

const (
	EventTypeAttachmentCommitted EventType = "attachment.committed"
	EventTypeAttachmentDeleted   EventType = "attachment.deleted"
)

// AttachmentEvent is published after a successful permanent-tier mutation
type AttachmentEvent struct {
	Type        EventType `json:"type"`
	TaskID      int64     `json:"task_id"`
	RecordID    int64     `json:"record_id"`
	FileName    string    `json:"file_name"`
	StoragePath string    `json:"storage_path"`
	BatchID     string    `json:"batch_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
