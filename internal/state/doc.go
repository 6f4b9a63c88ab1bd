// Package state shares the most recently loaded deck between the loaders
// (file watcher, remote poller) and the UI.
//
// # Update Semantics
//
// A successful Update replaces the deck and bumps Revision only when the
// content differs from what is stored, so the UI can rebuild its slider on
// real changes and keep the reader's position otherwise. A failed Update keeps
// the previous deck and records the error:
//
//	store.Update(d, nil)   // Deck = d, LastError = nil, failures reset
//	store.Update(nil, err) // Deck unchanged, LastError = err, failures++
//
// Snapshot returns copies, so callers may modify what they receive.
package state
