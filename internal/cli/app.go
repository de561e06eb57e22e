// Package cli implements the interactive terminal client. It wires the
// platform services into a small REPL: the user authenticates, browses
// folders of images, inspects a single image and edits its notes.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"visualnotes/internal/config"
	"visualnotes/internal/logging"
	"visualnotes/internal/platform"
	"visualnotes/internal/platform/identity"
	"visualnotes/internal/store"
)

// App holds everything the REPL needs: the loaded configuration, the
// platform handle and, once the user has logged in, the active session
// and its view-state store.
type App struct {
	config   *config.Config
	platform *platform.Platform
	log      logging.Logger

	session *identity.Session
	store   *store.FolderImageStore

	reader *bufio.Reader
}

// NewApp connects to the platform and returns an App ready to Run.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	p, err := platform.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing platform: %w", err)
	}

	return &App{
		config:   cfg,
		platform: p,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL loop and blocks until the user exits or standard
// input is exhausted. The platform connection is closed on return.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.platform.Close(); err != nil {
			a.log.Error(ctx, "error closing platform", "err", err)
		}
	}()

	fmt.Println("Welcome to visualnotes (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// isLoggedIn reports whether a session is open and its token still
// verifies. An expired token counts as logged out.
func (a *App) isLoggedIn() bool {
	if a.session == nil {
		return false
	}
	_, err := a.platform.Identity.CurrentUser(a.session.Token)
	return err == nil
}

// status renders the REPL prompt prefix, e.g. "alice/Trip Photos".
func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	s := a.session.Username
	if a.store == nil {
		return s
	}
	if f := a.store.SelectedFolder(); f != nil {
		s += "/" + f.Name
	}
	if img := a.store.SelectedImage(); img != nil {
		s += "/" + img.Name
	}
	return s
}
