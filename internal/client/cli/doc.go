// Package cli provides the interactive Orwel command-line client.
//
// It wires configuration, the local cache store, the tiered data-access
// services, and an interactive REPL that supports online/offline operation.
// Typical flow: prompt for credentials, start a background connectivity
// watcher, and execute user commands.
//
// Key features:
//   - Login / Logout (online with offline cache fallback)
//   - Tag-filtered update feed across all content kinds
//   - News, country and dashboard views
//   - Profile and interest-tag management
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
