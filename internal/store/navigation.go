package store

// View identifies which of the three screens is active. Exactly one view is
// active at a time; Images carries a selected folder and Detail a selected
// image.
type View string

const (
	ViewFolders View = "folders"
	ViewImages  View = "images"
	ViewDetail  View = "detail"
)

// Back steps one level up: Detail -> Images clears the selected image,
// Images -> Folders clears the selected folder and drops the cached image
// list so the next folder entered always fetches fresh. On the folder list
// it is a no-op. There is no direct Detail -> Folders transition.
func (s *FolderImageStore) Back() {
	switch s.view {
	case ViewDetail:
		s.view = ViewImages
		s.selectedImage = nil
	case ViewImages:
		s.view = ViewFolders
		s.selectedFolder = nil
		s.imageList = nil
	}
}

// SelectImage enters the detail view for an image of the currently open
// folder. It is a pure state transition; the image must already be in the
// cached list.
func (s *FolderImageStore) SelectImage(imageID string) error {
	if s.view != ViewImages {
		return errInvalidTransition(s.view, ViewDetail)
	}
	img := s.findImage(imageID)
	if img == nil {
		return errImageNotCached(imageID)
	}
	// detail view works on its own copy, patched separately by UpdateNotes
	selected := *img
	s.selectedImage = &selected
	s.view = ViewDetail
	return nil
}
