package dom

import (
	"strconv"
	"strings"
)

// ParsePx parses a pixel length such as "12px" or "12". Anything else is 0.
func ParsePx(v string) float64 {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseTranslateX extracts the horizontal component of a translate(x, y) or
// translateX(x) transform.
func ParseTranslateX(transform string) float64 {
	transform = strings.TrimSpace(transform)
	for _, fn := range []string{"translateX(", "translate3d(", "translate("} {
		rest, ok := strings.CutPrefix(transform, fn)
		if !ok {
			continue
		}
		rest, _, _ = strings.Cut(rest, ")")
		first, _, _ := strings.Cut(rest, ",")
		return ParsePx(first)
	}
	return 0
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// boxSide resolves one side of a 1-4 value box shorthand (padding, margin,
// border-width).
func boxSide(shorthand, side string) float64 {
	parts := strings.Fields(shorthand)
	if len(parts) == 0 {
		return 0
	}
	var top, right, bottom, left string
	switch len(parts) {
	case 1:
		top, right, bottom, left = parts[0], parts[0], parts[0], parts[0]
	case 2:
		top, right, bottom, left = parts[0], parts[1], parts[0], parts[1]
	case 3:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[1]
	default:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[3]
	}
	switch side {
	case "top":
		return ParsePx(top)
	case "right":
		return ParsePx(right)
	case "bottom":
		return ParsePx(bottom)
	default:
		return ParsePx(left)
	}
}

// borderShorthandWidth finds the width token in a border shorthand such as
// "1px solid #999".
func borderShorthandWidth(v string) float64 {
	for _, tok := range strings.Fields(v) {
		if strings.HasSuffix(tok, "px") {
			return ParsePx(tok)
		}
		if tok == "none" {
			return 0
		}
	}
	return 0
}
