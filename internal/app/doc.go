// Package app is glide's composition root.
//
// Run loads the config and preferences, opens the log, performs the first
// deck load into a shared state.Store and then keeps that store current
// while the UI runs:
//
//   - local decks are reloaded by a Watcher (fsnotify on the deck's
//     directory, debounced)
//   - remote decks are re-fetched by StartPoller, which doubles its interval
//     after each consecutive failure up to maxBackoff
//
// The UI never loads decks itself. It reads Store snapshots and rebuilds the
// slider whenever the snapshot revision changes.
package app
