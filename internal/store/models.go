// Package store holds the in-memory view state of the application and
// mediates every mutation between the UI and the backing platform. The
// platform is authoritative; the state kept here is an advisory cache that
// is only updated after a confirmed remote write.
package store

import "time"

// Folder is the view-model shape of a folder: the stored row plus the
// cached image count maintained alongside image create/delete.
type Folder struct {
	ID         string
	Name       string
	ImageCount int
	CreatedAt  time.Time
}

// Image is the view-model shape of an image record. FilePath is the storage
// key resolvable to a display URL. Notes is nil until set.
type Image struct {
	ID        string
	Name      string
	FilePath  string
	Notes     *string
	CreatedAt time.Time
}

// HasNotes reports whether the image carries a non-empty note.
func (i *Image) HasNotes() bool {
	return i.Notes != nil && *i.Notes != ""
}
