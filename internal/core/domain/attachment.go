package domain

import (
	"strconv"
	"time"
)

// RoleAttachment is the role tag written on records created by a commit
const RoleAttachment = "attachment"

// AttachmentRecord is durable attachment metadata, created when a staged
// file is committed to a task
type AttachmentRecord struct {
	ID          int64
	TaskID      int64
	FileName    string
	StoragePath string
	MimeType    string
	Role        string
	CreatedAt   time.Time
}

// NewAttachment is the input row for creating an AttachmentRecord
type NewAttachment struct {
	FileName    string
	StoragePath string
	MimeType    string
	Role        string
}

// AttachmentID identifies an attachment in either tier. Staged files are
// keyed by a string storage key, permanent records by a numeric row ID, so
// exactly one of the two fields is set.
type AttachmentID struct {
	StagedKey string
	RecordID  int64
}

// StagedID builds the ID of a staged file
func StagedID(key string) AttachmentID {
	return AttachmentID{StagedKey: key}
}

// RecordID builds the ID of a permanent record
func RecordID(id int64) AttachmentID {
	return AttachmentID{RecordID: id}
}

// IsTemporary reports whether the ID addresses the temporary tier
func (id AttachmentID) IsTemporary() bool {
	return id.StagedKey != ""
}

func (id AttachmentID) String() string {
	if id.IsTemporary() {
		return id.StagedKey
	}
	return strconv.FormatInt(id.RecordID, 10)
}

// Attachment is the read-only view entity merging both tiers
type Attachment struct {
	ID          AttachmentID
	FileName    string
	MimeType    string
	SizeBytes   int64
	IsTemporary bool
	Uploading   bool
	CreatedAt   time.Time
}

// MergeAttachments builds the presentation view: permanent records first in
// creation order, then staged files in upload order. Pure function, no side
// effects.
func MergeAttachments(records []AttachmentRecord, staged []StagedFile) []Attachment {
	merged := make([]Attachment, 0, len(records)+len(staged))

	for _, r := range records {
		merged = append(merged, Attachment{
			ID:        RecordID(r.ID),
			FileName:  r.FileName,
			MimeType:  r.MimeType,
			CreatedAt: r.CreatedAt,
		})
	}

	for _, s := range staged {
		merged = append(merged, Attachment{
			ID:          StagedID(s.Key),
			FileName:    s.FileName,
			MimeType:    s.MimeType,
			SizeBytes:   s.SizeBytes,
			IsTemporary: true,
			Uploading:   s.Uploading,
		})
	}

	return merged
}
