// Package cli provides the interactive PhotoShare command-line client.
//
// It wires configuration, the local session store, API services, and a REPL
// that mirrors a browsing session: list users with activity stats, open a
// profile, page through photo collections, comment, upload, and delete.
//
// Key features:
//   - Login / Register / Logout with a session that survives restarts
//   - User directory with photo and comment counts, plus name search
//   - Photo collections with inline comments
//   - Cross-collection listing of one user's comments
//   - Profile editing and password change
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
