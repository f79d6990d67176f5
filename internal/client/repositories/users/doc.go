// Package users provides the local cache store for user accounts and their
// commodity tag sets: the offline tier of last resort behind the remote
// data sources.
//
// # Data Model
//
// One user row per unique email and username; one tag row per (user, tag
// name) pair, enforced unique. Secrets are stored as bcrypt hashes; rows
// written by older builds may still hold plain text and are verified with a
// constant-time comparison instead.
//
// # Concurrency
//
// The store is reached from independent per-action workers. Operations are
// single-row upserts and reads with no cross-row transaction requirement;
// SQLite's own isolation is sufficient. The one multi-statement operation,
// SaveTags, runs inside its own transaction.
package users
