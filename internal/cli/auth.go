package cli

import (
	"context"
	"log"
	"os"

	"visualnotes/internal/common"
	"visualnotes/internal/store"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account.
//
// On success it prints "Success! You can log in now." and returns nil. The
// password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.platform.Identity.Register(ctx, userName, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	printlnFn("Success! You can log in now.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success it keeps the session, builds a fresh view-state store for the
// user and loads the folder list.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.platform.Identity.Login(ctx, userName, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.session = session
	a.store = store.New(a.platform.Folders, a.platform.Images, a.platform.Storage, session.UserID, a.log)

	if err := a.store.ListFolders(ctx); err != nil {
		log.Printf("Error loading folders: %s", err.Error())
		return err
	}
	a.printFolders()
	return nil
}

// Logout drops the session and all locally cached view state.
func (a *App) Logout(ctx context.Context) error {
	if a.store != nil {
		a.store.SignOut()
	}
	a.store = nil
	a.session = nil
	printlnFn("Logged out.")
	return nil
}
