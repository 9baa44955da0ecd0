// Package cli provides the interactive Linkfo command-line client.
//
// It wires configuration, the local session store, the API client and an
// interactive REPL. On start it restores a saved session when the server
// still accepts it, then watches server reachability in the background.
//
// Key features:
//   - Register / Login / Logout, with the session kept between runs
//   - Manage links: list, add, edit, move, delete
//   - Profile: show, edit, stats, avatar upload URL
//   - Persona: show, request an update, list and connect sources
//   - Chat with the agent and read the history
//   - Open a public profile and register link clicks
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
