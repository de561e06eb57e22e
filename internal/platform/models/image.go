package models

import "time"

// Image is the metadata record of one stored binary object. FilePath is the
// opaque storage key under which the binary lives in the object store.
// Notes is nil until the user writes something.
type Image struct {
	ID        string
	Name      string
	FilePath  string
	FolderID  string
	UserID    string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
