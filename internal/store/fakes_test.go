package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"visualnotes/internal/common"
	"visualnotes/internal/logging"
	"visualnotes/internal/platform/models"
	"visualnotes/internal/platform/storage"
)

// fakeData is the shared backend state of the test doubles. The calls slice
// records operation order across repos so tests can assert sequencing.
type fakeData struct {
	folders []*models.Folder // newest first
	images  map[string][]*models.Image
	objects map[string][]byte
	calls   []string
	seq     int
	clock   time.Time
}

func newFakeData() *fakeData {
	return &fakeData{
		images:  make(map[string][]*models.Image),
		objects: make(map[string][]byte),
		clock:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (d *fakeData) nextID(prefix string) string {
	d.seq++
	return fmt.Sprintf("%s%d", prefix, d.seq)
}

func (d *fakeData) tick() time.Time {
	d.clock = d.clock.Add(time.Second)
	return d.clock
}

type fakeFolderRepo struct {
	d         *fakeData
	insertErr error
	selectErr error
	deleteErr error
}

func (r *fakeFolderRepo) Insert(ctx context.Context, name, userID string) (*models.Folder, error) {
	r.d.calls = append(r.d.calls, "folders.Insert")
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	now := r.d.tick()
	f := &models.Folder{ID: r.d.nextID("f"), Name: name, UserID: userID, CreatedAt: now, UpdatedAt: now}
	r.d.folders = append([]*models.Folder{f}, r.d.folders...)
	return f, nil
}

func (r *fakeFolderRepo) SelectAllByUser(ctx context.Context, userID string) ([]*models.Folder, error) {
	r.d.calls = append(r.d.calls, "folders.SelectAll")
	if r.selectErr != nil {
		return nil, r.selectErr
	}
	var out []*models.Folder
	for _, f := range r.d.folders {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) DeleteByID(ctx context.Context, id, userID string) error {
	r.d.calls = append(r.d.calls, "folders.Delete")
	if r.deleteErr != nil {
		return r.deleteErr
	}
	kept := r.d.folders[:0]
	found := false
	for _, f := range r.d.folders {
		if f.ID == id && f.UserID == userID {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	r.d.folders = kept
	if !found {
		return common.ErrNotFound
	}
	delete(r.d.images, id) // the cascade
	return nil
}

type fakeImageRepo struct {
	d         *fakeData
	insertErr error
	selectErr error
	countErr  error
	keysErr   error
	updateErr error
	deleteErr error
}

func (r *fakeImageRepo) Insert(ctx context.Context, img *models.Image) (*models.Image, error) {
	r.d.calls = append(r.d.calls, "images.Insert")
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	now := r.d.tick()
	stored := *img
	stored.ID = r.d.nextID("i")
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.d.images[img.FolderID] = append([]*models.Image{&stored}, r.d.images[img.FolderID]...)
	return &stored, nil
}

func (r *fakeImageRepo) SelectByFolder(ctx context.Context, folderID string) ([]*models.Image, error) {
	r.d.calls = append(r.d.calls, "images.SelectByFolder")
	if r.selectErr != nil {
		return nil, r.selectErr
	}
	return r.d.images[folderID], nil
}

func (r *fakeImageRepo) CountByFolder(ctx context.Context, folderID string) (int, error) {
	r.d.calls = append(r.d.calls, "images.CountByFolder")
	if r.countErr != nil {
		return 0, r.countErr
	}
	return len(r.d.images[folderID]), nil
}

func (r *fakeImageRepo) SelectStorageKeysByFolder(ctx context.Context, folderID string) ([]string, error) {
	r.d.calls = append(r.d.calls, "images.SelectStorageKeys")
	if r.keysErr != nil {
		return nil, r.keysErr
	}
	var keys []string
	for _, img := range r.d.images[folderID] {
		keys = append(keys, img.FilePath)
	}
	return keys, nil
}

func (r *fakeImageRepo) UpdateNotes(ctx context.Context, id, userID, notes string) error {
	r.d.calls = append(r.d.calls, "images.UpdateNotes")
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, list := range r.d.images {
		for _, img := range list {
			if img.ID == id && img.UserID == userID {
				n := notes
				img.Notes = &n
				img.UpdatedAt = r.d.tick()
				return nil
			}
		}
	}
	return common.ErrNotFound
}

func (r *fakeImageRepo) DeleteByID(ctx context.Context, id, userID string) error {
	r.d.calls = append(r.d.calls, "images.Delete")
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for folderID, list := range r.d.images {
		kept := list[:0]
		found := false
		for _, img := range list {
			if img.ID == id && img.UserID == userID {
				found = true
				continue
			}
			kept = append(kept, img)
		}
		if found {
			r.d.images[folderID] = kept
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeObjectStore struct {
	d         *fakeData
	uploadErr error
	removeErr error
	removed   [][]string
}

func (o *fakeObjectStore) Upload(ctx context.Context, key string, data []byte) error {
	o.d.calls = append(o.d.calls, "objects.Upload")
	if o.uploadErr != nil {
		return o.uploadErr
	}
	o.d.objects[key] = data
	return nil
}

func (o *fakeObjectStore) Remove(ctx context.Context, keys []string) error {
	o.d.calls = append(o.d.calls, "objects.Remove")
	o.removed = append(o.removed, keys)
	if o.removeErr != nil {
		return o.removeErr
	}
	for _, k := range keys {
		delete(o.d.objects, k)
	}
	return nil
}

func (o *fakeObjectStore) PublicURL(key string) string {
	if key == "" {
		return storage.PlaceholderURL
	}
	return "http://fake/" + key
}

type testEnv struct {
	store   *FolderImageStore
	data    *fakeData
	folders *fakeFolderRepo
	images  *fakeImageRepo
	objects *fakeObjectStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	d := newFakeData()
	fr := &fakeFolderRepo{d: d}
	ir := &fakeImageRepo{d: d}
	os := &fakeObjectStore{d: d}
	log := logging.NewDefault(io.Discard, slog.LevelDebug)
	return &testEnv{
		store:   New(fr, ir, os, "u1", log),
		data:    d,
		folders: fr,
		images:  ir,
		objects: os,
	}
}

// seedFolder creates a folder remotely and refreshes the local list.
func (e *testEnv) seedFolder(t *testing.T, name string) Folder {
	t.Helper()
	if err := e.store.CreateFolder(context.Background(), name); err != nil {
		t.Fatalf("CreateFolder(%q): %v", name, err)
	}
	return e.store.Folders()[0]
}
