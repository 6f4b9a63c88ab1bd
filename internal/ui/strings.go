package ui

import "strings"

// truncateMiddle shortens a string by removing characters from the middle,
// preserving both the beginning and end. Deck paths and URLs keep their file
// name visible.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}

	const ellipsis = "…"
	keep := limit - 1

	// Keep the whole last path element when it fits in three quarters of the space.
	if slash := strings.LastIndexAny(value, "/\\"); slash >= 0 {
		tail := []rune(value[slash:])
		if len(tail) <= keep*3/4 {
			prefix := keep - len(tail)
			return string(runes[:prefix]) + ellipsis + string(tail)
		}
	}

	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + ellipsis + string(runes[len(runes)-suffix:])
}
