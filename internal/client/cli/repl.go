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
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	ShowFeed(ctx context.Context) error
	Like(ctx context.Context) error
	Pass(ctx context.Context) error
	More(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	CreateProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	DeleteProfile(ctx context.Context) error
	ShowMatches(ctx context.Context) error
	ShowSettings(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Ember CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           - show available commands
//	  - register       - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - feed           - open the discovery feed
//	  - like | pass    - swipe on the top candidate
//	  - more           - load the next feed page
//	  - profile        - show your profile
//	  - create | edit  - create or edit your profile
//	  - matches        - list matches
//	  - settings       - open settings
//	  - logout         - log out
//	  - delete-profile / delete-account
//	  - exit | quit    - leave the program
//
// Screen changes go through the navigation guard inside the handlers, so a
// command for a screen the session may not visit redirects instead of
// executing. Any errors returned by command handlers are ignored here;
// handlers report their own errors. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ember %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed, like, pass, more, profile, create, edit, matches, settings, logout, delete-profile, delete-account, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "feed", "f":
			_ = a.ShowFeed(ctx)

		case "like", "l":
			_ = a.Like(ctx)

		case "pass", "p":
			_ = a.Pass(ctx)

		case "more":
			_ = a.More(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "create":
			_ = a.CreateProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "matches":
			_ = a.ShowMatches(ctx)

		case "settings":
			_ = a.ShowSettings(ctx)

		case "delete-profile":
			_ = a.DeleteProfile(ctx)

		case "delete-account":
			_ = a.DeleteAccount(ctx)

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
