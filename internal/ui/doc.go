// Package ui is glide's terminal host, built on Bubble Tea.
//
// # Architecture Overview
//
// The slider engine knows nothing about terminals. This package gives it a
// host: for every deck revision it builds an in-memory dom.Document whose
// viewport width is the terminal width, mounts a slider on the #deck
// container and then reads the resulting geometry back to draw the screen.
// One terminal cell is one pixel.
//
// # Package Structure
//
//   - app.go: Model, the update loop, screen regions and Run
//   - stage.go: document construction, slide and dot rendering, hit testing
//   - input.go: mouse reports translated into document events
//   - scheduler.go: teaScheduler, which delivers slider timers as messages
//   - keys.go, help.go: key bindings and the help overlay
//   - detail.go, modal.go: the slide detail overlay
//   - warnings.go: the warnings panel fed by the log ring buffer
//   - theme.go, style_helpers.go: lipgloss themes and background helpers
//
// # Threading
//
// Slider callbacks, listeners and timers all run inside Update. Timers are
// armed with time.AfterFunc but only post a timerMsg; the callback fires when
// that message is processed.
//
// # Data Flow
//
//	state.Store ──tick──▶ snapshotMsg ──revision changed──▶ rebuild stage
//	tea.MouseMsg / tea.KeyMsg ──▶ dom.Document.Dispatch ──▶ slider
//	tea.WindowSizeMsg ──▶ SetViewportWidth ──▶ resize ──▶ slider re-snap
package ui
