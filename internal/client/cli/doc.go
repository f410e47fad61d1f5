// Package cli provides the interactive Ember terminal client.
//
// It wires configuration, the credential store, the REST API client, and
// the session, profile and discovery stores into an interactive REPL.
// Typical flow: restore a persisted session, land on the screen the
// navigation guard allows, and execute user commands.
//
// Key features:
//   - Login / Register / Logout / account deletion
//   - Profile create, show, edit and delete
//   - Swiping through the discovery feed (like / pass / more)
//   - Listing matches reported by the swipe endpoint
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and the nav package for the screen-gating rules.
package cli
