package domain

import "io"

// RawFile is a caller-provided file to be staged into temporary storage
type RawFile struct {
	FileName  string
	MimeType  string
	SizeBytes int64
	Content   io.Reader
}

// StoredObject is the result of writing an object to storage
type StoredObject struct {
	Path      string
	PublicURL string
}

// StagedFile represents a file uploaded to the temporary tier but not yet
// committed to a task. Its Key is unique within its upload batch and serves
// as its temporary identity.
type StagedFile struct {
	Key         string
	FileName    string
	MimeType    string
	SizeBytes   int64
	StoragePath string
	PublicURL   string
	Uploading   bool
}
