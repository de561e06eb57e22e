package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"visualnotes/internal/store"
)

// getMultiline is an indirection over GetMultiline for tests.
var getMultiline = GetMultiline

// readFileFn is a test seam for os.ReadFile.
var readFileFn = os.ReadFile

func (a *App) printDetail() {
	img := a.store.SelectedImage()
	if img == nil {
		return
	}
	printlnFn("Name:", img.Name)
	printlnFn("Added:", img.CreatedAt.Format("2006-01-02 15:04"))
	printlnFn("URL:", a.store.ResolveURL(img.FilePath))
	if img.HasNotes() {
		printlnFn("Notes:")
		printlnFn(*img.Notes)
	} else {
		printlnFn("No notes yet. Use 'notes' to add some.")
	}
}

// Show opens the detail view for the image at the given list position.
func (a *App) Show(ctx context.Context, arg string) error {
	s, err := a.requireStore()
	if err != nil {
		return err
	}
	if s.View() != store.ViewImages {
		printlnFn("Open a folder first.")
		return nil
	}

	i, err := parseIndex(arg, len(s.Images()))
	if err != nil {
		printlnFn("Usage: show N.", err.Error())
		return err
	}

	if err := s.SelectImage(s.Images()[i].ID); err != nil {
		log.Printf("Error showing image: %s", err.Error())
		return err
	}
	a.printDetail()
	return nil
}

// Upload reads a local file and uploads it into the open folder. The new
// image appears at the top of the list.
func (a *App) Upload(ctx context.Context, arg string) error {
	s, err := a.requireStore()
	if err != nil {
		return err
	}
	if s.View() != store.ViewImages {
		printlnFn("Open a folder first.")
		return nil
	}
	if arg == "" {
		printlnFn("Usage: upload PATH")
		return fmt.Errorf("missing file path")
	}

	data, err := readFileFn(arg)
	if err != nil {
		log.Printf("Error reading file: %s", err.Error())
		return err
	}

	if err := s.UploadImage(ctx, filepath.Base(arg), data); err != nil {
		log.Printf("Error uploading image: %s", err.Error())
		return err
	}
	a.printImages()
	return nil
}

// Notes prompts for a new note text and saves it for the shown image. An
// empty entry clears the notes.
func (a *App) Notes(ctx context.Context) error {
	s, err := a.requireStore()
	if err != nil {
		return err
	}
	img := s.SelectedImage()
	if s.View() != store.ViewDetail || img == nil {
		printlnFn("Show an image first.")
		return nil
	}

	notes, err := getMultiline(a.reader, "Enter notes", os.Stdout)
	if err != nil {
		return err
	}

	if err := s.UpdateNotes(ctx, img.ID, notes); err != nil {
		log.Printf("Error saving notes: %s", err.Error())
		return err
	}
	printlnFn("Saved.")
	return nil
}

// URL prints the public URL of the shown image.
func (a *App) URL(ctx context.Context) error {
	s, err := a.requireStore()
	if err != nil {
		return err
	}
	img := s.SelectedImage()
	if img == nil {
		printlnFn("Show an image first.")
		return nil
	}
	printlnFn(s.ResolveURL(img.FilePath))
	return nil
}

// Back steps one level up and re-renders the view it lands on.
func (a *App) Back(ctx context.Context) error {
	s, err := a.requireStore()
	if err != nil {
		return err
	}
	s.Back()
	switch s.View() {
	case store.ViewFolders:
		a.printFolders()
	case store.ViewImages:
		a.printImages()
	}
	return nil
}
