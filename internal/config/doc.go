// Package config loads glide's application configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/glide/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/glide/config.toml
//   - Log file: ~/.local/state/glide/glide.log
//   - Log level: info
//   - Remote poll interval: 5 seconds
//   - Warnings: off
//
// # TOML Format
//
//	deck = "~/decks/talk.md"
//	show_warnings = true
//	log_file = "~/.local/state/glide/glide.log"
//	log_level = "debug"
//	poll_seconds = 10
//
//	[slider]
//	slides_per_page = 2.0
//	margin = 1.0
//	infinite = true
//	dot_navigation = true
//
//	[[slider.responsive]]
//	breakpoint = 80.0
//	[slider.responsive.settings]
//	slides_per_page = 1.0
//
// The [slider] table uses the same keys as the slider table of a deck file;
// options set in a deck override the ones set here. Widths are terminal
// cells.
//
// # Path Expansion
//
// Tilde and relative paths are expanded to absolute paths for the config
// file, log_file and a local deck. Deck URLs are kept as written.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and unknown log levels. A missing config
// file is not an error.
package config
