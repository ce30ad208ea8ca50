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
	Users(ctx context.Context) error
	Search(ctx context.Context, term string) error
	ShowUser(ctx context.Context, userID string) error
	Photos(ctx context.Context, ownerID string) error
	CommentsBy(ctx context.Context, userID string) error
	AddComment(ctx context.Context, photoID string) error
	Upload(ctx context.Context, path string) error
	DeletePhoto(ctx context.Context, photoID string) error
	ChangePassword(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the PhotoShare CLI.
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
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - users            — list users with photo/comment counts
//	  - search <term>    — filter the user list by name
//	  - user <id>        — show a single profile
//	  - photos [userId]  — list a user's photos (default: your own)
//	  - comments [userId]— list every comment a user has written
//	  - comment <photoId>— add a comment to a photo
//	  - upload <path>    — upload a photo file
//	  - delete <photoId> — delete one of your photos
//	  - profile          — edit your profile
//	  - passwd           — change your password
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are reported inline; handlers log
// their own details. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ps> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func(usage string) (string, bool) {
			if len(args) == 0 {
				printlnFn("Usage: " + usage)
				return "", false
			}
			return args[0], true
		}

		// everything beyond the login surface requires a session
		switch cmd {
		case "help", "register", "login", "exit", "quit":
		default:
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
		}

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: users, search <term>, user <id>, photos [userId], comments [userId], comment <photoId>, upload <path>, delete <photoId>, profile, passwd, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "u", "users":
			err = a.Users(ctx)

		case "search":
			err = a.Search(ctx, strings.Join(args, " "))

		case "user":
			if id, ok := arg("user <id>"); ok {
				err = a.ShowUser(ctx, id)
			}

		case "p", "photos":
			// no argument means your own collection
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			err = a.Photos(ctx, id)

		case "comments":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			err = a.CommentsBy(ctx, id)

		case "comment":
			if id, ok := arg("comment <photoId>"); ok {
				err = a.AddComment(ctx, id)
			}

		case "upload":
			if path, ok := arg("upload <path>"); ok {
				err = a.Upload(ctx, path)
			}

		case "delete":
			if id, ok := arg("delete <photoId>"); ok {
				err = a.DeletePhoto(ctx, id)
			}

		case "passwd":
			err = a.ChangePassword(ctx)

		case "profile":
			err = a.EditProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
