package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Create(ctx context.Context) error
	Open(ctx context.Context, arg string) error
	Show(ctx context.Context, arg string) error
	Upload(ctx context.Context, arg string) error
	Notes(ctx context.Context) error
	URL(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
	Back(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the visualnotes CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current location (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list           — list folders, or images of the open folder
//	  - create         — create a folder (interactive name prompt)
//	  - open N         — open the Nth folder
//	  - show N         — show the Nth image of the open folder
//	  - upload PATH    — upload a local file into the open folder
//	  - notes          — edit the notes of the shown image
//	  - url            — print the public URL of the shown image
//	  - del N          — delete the Nth folder or image (with confirmation)
//	  - back           — go one level up
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vn %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, create, open N, show N, upload PATH, notes, url, del N, back, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "create":
			_ = a.Create(ctx)

		case "open":
			_ = a.Open(ctx, arg)

		case "show":
			_ = a.Show(ctx, arg)

		case "up", "upload":
			_ = a.Upload(ctx, arg)

		case "notes":
			_ = a.Notes(ctx)

		case "url":
			_ = a.URL(ctx)

		case "del", "delete":
			_ = a.Delete(ctx, arg)

		case "b", "back":
			_ = a.Back(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
