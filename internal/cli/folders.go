package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"visualnotes/internal/store"
)

var (
	errNotLoggedIn    = errors.New("please log in first")
	errSessionExpired = errors.New("session expired")
)

// requireStore returns the active view-state store, or an error printed to
// the user when no session is open. The session token is verified on every
// command; once it expires the session and all cached state are dropped and
// the user has to log in again.
func (a *App) requireStore() (*store.FolderImageStore, error) {
	if a.session == nil || a.store == nil {
		printlnFn("Please log in first.")
		return nil, errNotLoggedIn
	}
	if _, err := a.platform.Identity.CurrentUser(a.session.Token); err != nil {
		a.store.SignOut()
		a.store = nil
		a.session = nil
		printlnFn("Session expired. Please log in again.")
		return nil, errSessionExpired
	}
	return a.store, nil
}

// parseIndex converts a 1-based list position typed by the user into a slice
// index, validating it against the list length.
func parseIndex(arg string, n int) (int, error) {
	if arg == "" {
		return 0, errors.New("missing list number")
	}
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", arg)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("no entry %d, the list has %d", i, n)
	}
	return i - 1, nil
}

func (a *App) printFolders() {
	fs := a.store.Folders()
	if len(fs) == 0 {
		printlnFn("No folders yet. Use 'create' to add one.")
		return
	}
	for i, f := range fs {
		printlnFn(fmt.Sprintf("%d. %s (%d images)", i+1, f.Name, f.ImageCount))
	}
}

func (a *App) printImages() {
	imgs := a.store.Images()
	if len(imgs) == 0 {
		printlnFn("No images yet. Use 'upload PATH' to add one.")
		return
	}
	for i, img := range imgs {
		marker := ""
		if img.HasNotes() {
			marker = " [notes]"
		}
		printlnFn(fmt.Sprintf("%d. %s%s", i+1, img.Name, marker))
	}
}

// List re-renders the current view. On the folder list it refetches the
// folders so the counts stay current; on an open folder it prints the
// cached images; on the detail view it reprints the image.
func (a *App) List(ctx context.Context) error {
	s, err := a.requireStore()
	if err != nil {
		return err
	}

	switch s.View() {
	case store.ViewFolders:
		if err := s.ListFolders(ctx); err != nil {
			log.Printf("Error loading folders: %s", err.Error())
			return err
		}
		a.printFolders()
	case store.ViewImages:
		a.printImages()
	case store.ViewDetail:
		a.printDetail()
	}
	return nil
}

// Create prompts for a folder name and creates the folder. The new folder
// appears at the top of the list.
func (a *App) Create(ctx context.Context) error {
	s, err := a.requireStore()
	if err != nil {
		return err
	}
	if s.View() != store.ViewFolders {
		printlnFn("Go 'back' to the folder list to create a folder.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter folder name", os.Stdout)
	if err != nil {
		return err
	}

	if err := s.CreateFolder(ctx, name); err != nil {
		log.Printf("Error creating folder: %s", err.Error())
		return err
	}
	a.printFolders()
	return nil
}

// Open enters the folder at the given list position and prints its images.
func (a *App) Open(ctx context.Context, arg string) error {
	s, err := a.requireStore()
	if err != nil {
		return err
	}
	if s.View() != store.ViewFolders {
		printlnFn("Go 'back' to the folder list first.")
		return nil
	}

	i, err := parseIndex(arg, len(s.Folders()))
	if err != nil {
		printlnFn("Usage: open N.", err.Error())
		return err
	}

	if err := s.OpenFolder(ctx, s.Folders()[i].ID); err != nil {
		log.Printf("Error opening folder: %s", err.Error())
		return err
	}
	a.printImages()
	return nil
}
