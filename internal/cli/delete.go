package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"visualnotes/internal/store"
)

// confirmFn is a test seam for the interactive yes/no prompt.
var confirmFn = Confirm

// Delete removes the folder or image at the given list position, depending
// on the current view. The deletion must be confirmed interactively;
// answering anything but yes cancels it and nothing is removed.
func (a *App) Delete(ctx context.Context, arg string) error {
	s, err := a.requireStore()
	if err != nil {
		return err
	}

	switch s.View() {
	case store.ViewFolders:
		i, err := parseIndex(arg, len(s.Folders()))
		if err != nil {
			printlnFn("Usage: del N.", err.Error())
			return err
		}
		if err := s.ArmFolderDeletion(s.Folders()[i].ID); err != nil {
			log.Printf("Error: %s", err.Error())
			return err
		}
	case store.ViewImages:
		i, err := parseIndex(arg, len(s.Images()))
		if err != nil {
			printlnFn("Usage: del N.", err.Error())
			return err
		}
		if err := s.ArmImageDeletion(s.Images()[i].ID); err != nil {
			log.Printf("Error: %s", err.Error())
			return err
		}
	default:
		printlnFn("Go to the folder or image list to delete entries.")
		return nil
	}

	pending := s.PendingDeletion()
	ok, err := confirmFn(a.reader, fmt.Sprintf("Delete %q? This cannot be undone.", pending.Name()), os.Stdout)
	if err != nil {
		_ = s.CancelDeletion()
		return err
	}
	if !ok {
		if err := s.CancelDeletion(); err != nil {
			return err
		}
		printlnFn("Cancelled.")
		return nil
	}

	if err := s.ConfirmDeletion(ctx); err != nil {
		log.Printf("Error deleting: %s", err.Error())
		return err
	}

	printlnFn("Deleted.")
	switch s.View() {
	case store.ViewFolders:
		a.printFolders()
	case store.ViewImages:
		a.printImages()
	}
	return nil
}
