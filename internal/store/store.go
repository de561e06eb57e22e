package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"visualnotes/internal/common"
	"visualnotes/internal/logging"
	"visualnotes/internal/platform/models"
	"visualnotes/internal/platform/records/folders"
	"visualnotes/internal/platform/records/images"
	"visualnotes/internal/platform/storage"
)

// timeNow is a test seam for deterministic storage keys.
var timeNow = time.Now

// FolderImageStore mediates every mutation between the UI and the platform.
// It is driven exclusively by the single foreground UI loop, so no locking
// is needed. Every mutating operation must succeed remotely before the
// cached state changes; a failed remote call leaves the cache exactly as it
// was.
type FolderImageStore struct {
	folderRepo folders.Repository
	imageRepo  images.Repository
	objects    storage.ObjectStore
	userID     string
	log        logging.Logger

	view            View
	folderList      []Folder
	imageList       []Image
	selectedFolder  *Folder
	selectedImage   *Image
	pendingDeletion *DeletionRequest
}

// New constructs a store for the given authenticated user, starting on the
// folder list view with an empty cache.
func New(folderRepo folders.Repository, imageRepo images.Repository, objects storage.ObjectStore, userID string, log logging.Logger) *FolderImageStore {
	return &FolderImageStore{
		folderRepo: folderRepo,
		imageRepo:  imageRepo,
		objects:    objects,
		userID:     userID,
		log:        log,
		view:       ViewFolders,
	}
}

// View returns the active view.
func (s *FolderImageStore) View() View { return s.view }

// Folders returns the cached folder list, newest first.
func (s *FolderImageStore) Folders() []Folder { return s.folderList }

// Images returns the cached image list of the open folder, newest first.
func (s *FolderImageStore) Images() []Image { return s.imageList }

// SelectedFolder returns the folder the images view presents, nil outside it.
func (s *FolderImageStore) SelectedFolder() *Folder { return s.selectedFolder }

// SelectedImage returns the image the detail view presents, nil outside it.
func (s *FolderImageStore) SelectedImage() *Image { return s.selectedImage }

// ListFolders fetches all folders of the user, newest first, resolving each
// folder's current image count with a count query. On any remote error the
// previous cache stays untouched.
func (s *FolderImageStore) ListFolders(ctx context.Context) error {
	rows, err := s.folderRepo.SelectAllByUser(ctx, s.userID)
	if err != nil {
		s.log.Error(ctx, "fetching folders", "err", err)
		return err
	}

	result := make([]Folder, 0, len(rows))
	for _, row := range rows {
		count, err := s.imageRepo.CountByFolder(ctx, row.ID)
		if err != nil {
			s.log.Error(ctx, "counting images", "folder", row.ID, "err", err)
			return err
		}
		result = append(result, Folder{
			ID:         row.ID,
			Name:       row.Name,
			ImageCount: count,
			CreatedAt:  row.CreatedAt,
		})
	}

	s.folderList = result
	return nil
}

// OpenFolder enters the images view for a cached folder, fetching its image
// list. The fetch replaces the cached list wholesale; on failure the view
// and list stay as they were.
func (s *FolderImageStore) OpenFolder(ctx context.Context, folderID string) error {
	if s.view != ViewFolders {
		return errInvalidTransition(s.view, ViewImages)
	}
	var target *Folder
	for i := range s.folderList {
		if s.folderList[i].ID == folderID {
			target = &s.folderList[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("folder %s is not in the current list", folderID)
	}

	rows, err := s.imageRepo.SelectByFolder(ctx, folderID)
	if err != nil {
		s.log.Error(ctx, "fetching images", "folder", folderID, "err", err)
		return err
	}

	list := make([]Image, 0, len(rows))
	for _, row := range rows {
		list = append(list, imageFromRecord(row))
	}

	selected := *target
	s.selectedFolder = &selected
	s.imageList = list
	s.view = ViewImages
	return nil
}

// CreateFolder inserts one folder row and prepends the returned record with
// a zero count. Names empty after trimming are rejected before any remote
// call is made.
func (s *FolderImageStore) CreateFolder(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := validation.Validate(name, validation.Required); err != nil {
		return fmt.Errorf("folder name: %w", err)
	}

	row, err := s.folderRepo.Insert(ctx, name, s.userID)
	if err != nil {
		s.log.Error(ctx, "creating folder", "name", name, "err", err)
		return err
	}

	created := Folder{ID: row.ID, Name: row.Name, ImageCount: 0, CreatedAt: row.CreatedAt}
	s.folderList = append([]Folder{created}, s.folderList...)
	return nil
}

// UploadImage writes the binary under a derived storage key, then inserts
// the metadata record. Requires an open folder. If the record insert fails
// after a successful write, the freshly written object is removed again
// best-effort so no orphan is left behind.
func (s *FolderImageStore) UploadImage(ctx context.Context, fileName string, data []byte) error {
	if s.selectedFolder == nil {
		return common.ErrNoFolderSelected
	}
	folderID := s.selectedFolder.ID
	key := deriveStorageKey(s.userID, folderID, fileName, timeNow())

	if err := s.objects.Upload(ctx, key, data); err != nil {
		s.log.Error(ctx, "uploading object", "key", key, "err", err)
		return err
	}

	row, err := s.imageRepo.Insert(ctx, &models.Image{
		Name:     fileName,
		FilePath: key,
		FolderID: folderID,
		UserID:   s.userID,
	})
	if err != nil {
		s.log.Error(ctx, "saving image record", "key", key, "err", err)
		if rmErr := s.objects.Remove(ctx, []string{key}); rmErr != nil {
			s.log.Warn(ctx, "orphaned object left in storage", "key", key, "err", rmErr)
		}
		return err
	}

	s.imageList = append([]Image{imageFromRecord(row)}, s.imageList...)
	s.bumpFolderCount(folderID, +1)
	return nil
}

// UpdateNotes updates the record's notes field. On success the cached list
// entry is patched and, if the image is the one shown in detail, that copy
// too. The returned error is the caller's saving indicator; there is no
// automatic retry.
func (s *FolderImageStore) UpdateNotes(ctx context.Context, imageID, notes string) error {
	if err := s.imageRepo.UpdateNotes(ctx, imageID, s.userID, notes); err != nil {
		s.log.Error(ctx, "updating notes", "image", imageID, "err", err)
		return err
	}

	if img := s.findImage(imageID); img != nil {
		n := notes
		img.Notes = &n
	}
	if s.selectedImage != nil && s.selectedImage.ID == imageID {
		n := notes
		s.selectedImage.Notes = &n
	}
	return nil
}

// ResolveURL produces a display URL for a storage key. It never fails: bad
// references resolve to the placeholder.
func (s *FolderImageStore) ResolveURL(key string) string {
	return s.objects.PublicURL(key)
}

// SignOut drops the entire view state. The caller discards the session.
func (s *FolderImageStore) SignOut() {
	s.view = ViewFolders
	s.folderList = nil
	s.imageList = nil
	s.selectedFolder = nil
	s.selectedImage = nil
	s.pendingDeletion = nil
}

// deriveStorageKey builds the object key for an upload:
// userID/folderID/<unix-ms> with the original file extension preserved.
// Distinct users, folders and upload instants cannot collide.
func deriveStorageKey(userID, folderID, fileName string, now time.Time) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	if ext == "" {
		return fmt.Sprintf("%s/%s/%d", userID, folderID, now.UnixMilli())
	}
	return fmt.Sprintf("%s/%s/%d.%s", userID, folderID, now.UnixMilli(), ext)
}

func imageFromRecord(row *models.Image) Image {
	return Image{
		ID:        row.ID,
		Name:      row.Name,
		FilePath:  row.FilePath,
		Notes:     row.Notes,
		CreatedAt: row.CreatedAt,
	}
}

func (s *FolderImageStore) findImage(imageID string) *Image {
	for i := range s.imageList {
		if s.imageList[i].ID == imageID {
			return &s.imageList[i]
		}
	}
	return nil
}

func (s *FolderImageStore) bumpFolderCount(folderID string, delta int) {
	for i := range s.folderList {
		if s.folderList[i].ID == folderID {
			s.folderList[i].ImageCount += delta
			if s.folderList[i].ImageCount < 0 {
				s.folderList[i].ImageCount = 0
			}
			if s.selectedFolder != nil && s.selectedFolder.ID == folderID {
				s.selectedFolder.ImageCount = s.folderList[i].ImageCount
			}
			return
		}
	}
}

func errInvalidTransition(from, to View) error {
	return fmt.Errorf("cannot enter %s view from %s view", to, from)
}

func errImageNotCached(imageID string) error {
	return fmt.Errorf("image %s is not in the current list", imageID)
}
