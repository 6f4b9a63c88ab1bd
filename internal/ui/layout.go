package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the status line drops
	// breakpoint and drag details.
	LayoutCompactWidth = 72
)

// Panel sizes.
const (
	// WarningPanelLines is the number of log records shown in the warnings panel.
	WarningPanelLines = 5

	// DetailModalWidth is the maximum width of the slide detail overlay.
	DetailModalWidth = 72
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI checks the store for a new deck.
	DefaultUIInterval = 250 * time.Millisecond
)
