package domain

import "errors"

// ErrUploadFailed is an error thrown when staging a file fails; remaining
// files in the same call are aborted
var ErrUploadFailed = errors.New("upload failed")

// ErrCommitFailed is an error thrown after a failed commit has been rolled back
var ErrCommitFailed = errors.New("commit failed")

// ErrCommitInProgress is an error thrown when an operation is rejected
// because a commit is running for the same session
var ErrCommitInProgress = errors.New("commit in progress")

// ErrDeleteFailed is an error thrown when deleting a permanent attachment fails
var ErrDeleteFailed = errors.New("delete failed")

// ErrPreviewNotReady is an error thrown when a preview is requested for a
// staged file whose upload has not completed
var ErrPreviewNotReady = errors.New("preview not ready")

// ErrAttachmentNotFound is an error thrown when an ID resolves to neither tier
var ErrAttachmentNotFound = errors.New("attachment not found")

// ErrAttachmentRecordNotFound is an error thrown when a record row is not found
var ErrAttachmentRecordNotFound = errors.New("attachment record not found")

// ErrSessionNotFound is an error thrown when a staging session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrTaskNotBound is an error thrown when a permanent-tier operation needs a
// task and the session has none
var ErrTaskNotBound = errors.New("no task bound to session")

// ErrInvalidFileType is an error thrown when file type is invalid
var ErrInvalidFileType = errors.New("invalid file type")

// ErrFileSizeTooBig is an error thrown when file size is too big
var ErrFileSizeTooBig = errors.New("file size too big")
