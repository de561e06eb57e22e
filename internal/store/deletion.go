package store

import (
	"context"
	"fmt"

	"visualnotes/internal/common"
)

// TargetKind names what a DeletionRequest points at.
type TargetKind string

const (
	TargetFolder TargetKind = "folder"
	TargetImage  TargetKind = "image"
)

// DeletionRequest is a pending confirmation for either a folder or an
// image. The inFlight flag blocks a second confirmation while the first is
// outstanding.
type DeletionRequest struct {
	Kind     TargetKind
	Folder   *Folder
	Image    *Image
	inFlight bool
}

// Name returns the display name of the deletion target.
func (d *DeletionRequest) Name() string {
	if d.Kind == TargetFolder {
		return d.Folder.Name
	}
	return d.Image.Name
}

// PendingDeletion returns the armed request, nil if none.
func (s *FolderImageStore) PendingDeletion() *DeletionRequest { return s.pendingDeletion }

// ArmFolderDeletion arms a deletion request for a cached folder. The
// request replaces a previously armed one unless that one is in flight.
func (s *FolderImageStore) ArmFolderDeletion(folderID string) error {
	if s.pendingDeletion != nil && s.pendingDeletion.inFlight {
		return common.ErrDeletionInFlight
	}
	for i := range s.folderList {
		if s.folderList[i].ID == folderID {
			target := s.folderList[i]
			s.pendingDeletion = &DeletionRequest{Kind: TargetFolder, Folder: &target}
			return nil
		}
	}
	return fmt.Errorf("folder %s is not in the current list", folderID)
}

// ArmImageDeletion arms a deletion request for a cached image.
func (s *FolderImageStore) ArmImageDeletion(imageID string) error {
	if s.pendingDeletion != nil && s.pendingDeletion.inFlight {
		return common.ErrDeletionInFlight
	}
	img := s.findImage(imageID)
	if img == nil {
		return errImageNotCached(imageID)
	}
	target := *img
	s.pendingDeletion = &DeletionRequest{Kind: TargetImage, Image: &target}
	return nil
}

// CancelDeletion disarms the pending request. An in-flight confirmation
// cannot be cancelled; the remote call runs to completion either way.
func (s *FolderImageStore) CancelDeletion() error {
	if s.pendingDeletion != nil && s.pendingDeletion.inFlight {
		return common.ErrDeletionInFlight
	}
	s.pendingDeletion = nil
	return nil
}

// ConfirmDeletion executes the armed request. Whatever the outcome, the
// request is cleared afterwards so the user can retry or move on.
//
// Folder: the folder's storage keys are enumerated and removed in one
// batched call before the row delete, because the cascading row delete
// destroys the ability to enumerate them. Storage cleanup is best-effort
// and never aborts the logical delete. Image: the single object is removed,
// then the row; if either step fails no local state changes.
func (s *FolderImageStore) ConfirmDeletion(ctx context.Context) error {
	if s.pendingDeletion == nil {
		return common.ErrNothingToConfirm
	}
	if s.pendingDeletion.inFlight {
		return common.ErrDeletionInFlight
	}
	s.pendingDeletion.inFlight = true
	defer func() { s.pendingDeletion = nil }()

	if s.pendingDeletion.Kind == TargetFolder {
		return s.deleteFolder(ctx, s.pendingDeletion.Folder)
	}
	return s.deleteImage(ctx, s.pendingDeletion.Image)
}

func (s *FolderImageStore) deleteFolder(ctx context.Context, folder *Folder) error {
	keys, err := s.imageRepo.SelectStorageKeysByFolder(ctx, folder.ID)
	if err != nil {
		s.log.Warn(ctx, "enumerating folder objects", "folder", folder.ID, "err", err)
		keys = nil
	}
	if err := s.objects.Remove(ctx, keys); err != nil {
		s.log.Warn(ctx, "removing folder objects", "folder", folder.ID, "err", err)
	}

	// image rows go with the folder row via the database cascade
	if err := s.folderRepo.DeleteByID(ctx, folder.ID, s.userID); err != nil {
		s.log.Error(ctx, "deleting folder", "folder", folder.ID, "err", err)
		return err
	}

	kept := make([]Folder, 0, len(s.folderList))
	for _, f := range s.folderList {
		if f.ID != folder.ID {
			kept = append(kept, f)
		}
	}
	s.folderList = kept
	return nil
}

func (s *FolderImageStore) deleteImage(ctx context.Context, img *Image) error {
	if err := s.objects.Remove(ctx, []string{img.FilePath}); err != nil {
		s.log.Error(ctx, "removing object", "key", img.FilePath, "err", err)
		return err
	}
	if err := s.imageRepo.DeleteByID(ctx, img.ID, s.userID); err != nil {
		s.log.Error(ctx, "deleting image record", "image", img.ID, "err", err)
		return err
	}

	kept := make([]Image, 0, len(s.imageList))
	for _, i := range s.imageList {
		if i.ID != img.ID {
			kept = append(kept, i)
		}
	}
	s.imageList = kept
	if s.selectedFolder != nil {
		s.bumpFolderCount(s.selectedFolder.ID, -1)
	}
	return nil
}
