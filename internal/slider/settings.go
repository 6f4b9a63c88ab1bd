package slider

import (
	"fmt"
	"math"
	"time"
)

// Settings is a fully resolved slider configuration.
type Settings struct {
	SlidesPerPage        int
	Margin               float64
	Duration             time.Duration
	Easing               string
	Autoplay             time.Duration // zero disables autoplay
	Draggable            bool
	MouseButton          *int // nil accepts any button
	Threshold            float64
	ArrowControls        bool
	PreventClickDistance float64
	Responsive           []Breakpoint
	NoOuterMargin        bool
	StartAtPage          int
	Infinite             bool
	KeepSlideSize        bool
	FreeScroll           bool
	DotNavigation        bool
	DotStyle             DotStyle
}

// DotStyle configures the generated dot navigation.
type DotStyle struct {
	OwnStyle      bool
	ClassName     string
	Size          float64
	Border        string
	Margin        float64
	ActiveColor   string
	InactiveColor string
	BorderRadius  string
}

// Breakpoint applies Settings when the viewport is narrower than Width.
type Breakpoint struct {
	Width    float64 `toml:"breakpoint" yaml:"breakpoint"`
	Settings Options `toml:"settings" yaml:"settings"`
}

// Options is a partial configuration. Nil fields leave the underlying value
// untouched when applied. Durations are expressed in milliseconds.
type Options struct {
	SlidesPerPage        *float64         `toml:"slides_per_page,omitempty" yaml:"slides_per_page,omitempty"`
	Margin               *float64         `toml:"margin,omitempty" yaml:"margin,omitempty"`
	Duration             *int             `toml:"duration,omitempty" yaml:"duration,omitempty"`
	Easing               *string          `toml:"easing,omitempty" yaml:"easing,omitempty"`
	Autoplay             *int             `toml:"autoplay,omitempty" yaml:"autoplay,omitempty"`
	Draggable            *bool            `toml:"draggable,omitempty" yaml:"draggable,omitempty"`
	MouseButton          *int             `toml:"mouse_button,omitempty" yaml:"mouse_button,omitempty"`
	Threshold            *float64         `toml:"threshold,omitempty" yaml:"threshold,omitempty"`
	ArrowControls        *bool            `toml:"arrow_controls,omitempty" yaml:"arrow_controls,omitempty"`
	PreventClickDistance *float64         `toml:"prevent_click_distance,omitempty" yaml:"prevent_click_distance,omitempty"`
	Responsive           []Breakpoint     `toml:"responsive,omitempty" yaml:"responsive,omitempty"`
	NoOuterMargin        *bool            `toml:"no_outer_margin,omitempty" yaml:"no_outer_margin,omitempty"`
	StartAtPage          *int             `toml:"start_at_page,omitempty" yaml:"start_at_page,omitempty"`
	Infinite             *bool            `toml:"infinite,omitempty" yaml:"infinite,omitempty"`
	KeepSlideSize        *bool            `toml:"keep_slide_size,omitempty" yaml:"keep_slide_size,omitempty"`
	FreeScroll           *bool            `toml:"free_scroll,omitempty" yaml:"free_scroll,omitempty"`
	DotNavigation        *bool            `toml:"dot_navigation,omitempty" yaml:"dot_navigation,omitempty"`
	DotStyle             *DotStyleOptions `toml:"dot_style,omitempty" yaml:"dot_style,omitempty"`
}

// DotStyleOptions is the partial form of DotStyle.
type DotStyleOptions struct {
	OwnStyle      *bool    `toml:"own_style,omitempty" yaml:"own_style,omitempty"`
	ClassName     *string  `toml:"class_name,omitempty" yaml:"class_name,omitempty"`
	Size          *float64 `toml:"size,omitempty" yaml:"size,omitempty"`
	Border        *string  `toml:"border,omitempty" yaml:"border,omitempty"`
	Margin        *float64 `toml:"margin,omitempty" yaml:"margin,omitempty"`
	ActiveColor   *string  `toml:"active_color,omitempty" yaml:"active_color,omitempty"`
	InactiveColor *string  `toml:"inactive_color,omitempty" yaml:"inactive_color,omitempty"`
	BorderRadius  *string  `toml:"border_radius,omitempty" yaml:"border_radius,omitempty"`
}

const (
	classPrefix = "glide"

	defaultDuration  = 200 * time.Millisecond
	defaultThreshold = 20
	defaultDotClass  = classPrefix + "__dot"
)

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		SlidesPerPage:        1,
		Duration:             defaultDuration,
		Easing:               "ease-out",
		Draggable:            true,
		Threshold:            defaultThreshold,
		PreventClickDistance: 20,
		DotStyle: DotStyle{
			ClassName:     defaultDotClass,
			Size:          10,
			Border:        "1px solid #999",
			Margin:        10,
			ActiveColor:   "#fff",
			InactiveColor: "transparent",
			BorderRadius:  "50%",
		},
	}
}

// Apply merges o on top of s and returns the result. Non-integer
// slidesPerPage values are rounded and reported through warn.
func (o Options) Apply(s Settings, warn func(string)) Settings {
	if o.SlidesPerPage != nil {
		spp := *o.SlidesPerPage
		rounded := math.Round(spp)
		if rounded != spp && warn != nil {
			warn(fmt.Sprintf("option slidesPerPage has to be a whole number, %v was rounded to %v", spp, rounded))
		}
		s.SlidesPerPage = int(rounded)
	}
	if o.Margin != nil {
		s.Margin = *o.Margin
	}
	if o.Duration != nil {
		s.Duration = time.Duration(*o.Duration) * time.Millisecond
	}
	if o.Easing != nil {
		s.Easing = *o.Easing
	}
	if o.Autoplay != nil {
		s.Autoplay = time.Duration(*o.Autoplay) * time.Millisecond
	}
	if o.Draggable != nil {
		s.Draggable = *o.Draggable
	}
	if o.MouseButton != nil {
		button := *o.MouseButton
		s.MouseButton = &button
	}
	if o.Threshold != nil {
		s.Threshold = *o.Threshold
	}
	if o.ArrowControls != nil {
		s.ArrowControls = *o.ArrowControls
	}
	if o.PreventClickDistance != nil {
		s.PreventClickDistance = *o.PreventClickDistance
	}
	if o.Responsive != nil {
		s.Responsive = append([]Breakpoint(nil), o.Responsive...)
	}
	if o.NoOuterMargin != nil {
		s.NoOuterMargin = *o.NoOuterMargin
	}
	if o.StartAtPage != nil {
		s.StartAtPage = *o.StartAtPage
	}
	if o.Infinite != nil {
		s.Infinite = *o.Infinite
	}
	if o.KeepSlideSize != nil {
		s.KeepSlideSize = *o.KeepSlideSize
	}
	if o.FreeScroll != nil {
		s.FreeScroll = *o.FreeScroll
	}
	if o.DotNavigation != nil {
		s.DotNavigation = *o.DotNavigation
	}
	if o.DotStyle != nil {
		s.DotStyle = o.DotStyle.apply(s.DotStyle)
	}
	return s
}

func (o DotStyleOptions) apply(d DotStyle) DotStyle {
	if o.OwnStyle != nil {
		d.OwnStyle = *o.OwnStyle
	}
	if o.ClassName != nil {
		d.ClassName = *o.ClassName
	}
	if o.Size != nil {
		d.Size = *o.Size
	}
	if o.Border != nil {
		d.Border = *o.Border
	}
	if o.Margin != nil {
		d.Margin = *o.Margin
	}
	if o.ActiveColor != nil {
		d.ActiveColor = *o.ActiveColor
	}
	if o.InactiveColor != nil {
		d.InactiveColor = *o.InactiveColor
	}
	if o.BorderRadius != nil {
		d.BorderRadius = *o.BorderRadius
	}
	return d
}

// Merge layers override on top of o. Set fields of override win; the dot
// style is merged field by field and a non-nil Responsive list replaces the
// base list.
func (o Options) Merge(override Options) Options {
	out := o
	if override.SlidesPerPage != nil {
		out.SlidesPerPage = override.SlidesPerPage
	}
	if override.Margin != nil {
		out.Margin = override.Margin
	}
	if override.Duration != nil {
		out.Duration = override.Duration
	}
	if override.Easing != nil {
		out.Easing = override.Easing
	}
	if override.Autoplay != nil {
		out.Autoplay = override.Autoplay
	}
	if override.Draggable != nil {
		out.Draggable = override.Draggable
	}
	if override.MouseButton != nil {
		out.MouseButton = override.MouseButton
	}
	if override.Threshold != nil {
		out.Threshold = override.Threshold
	}
	if override.ArrowControls != nil {
		out.ArrowControls = override.ArrowControls
	}
	if override.PreventClickDistance != nil {
		out.PreventClickDistance = override.PreventClickDistance
	}
	if override.Responsive != nil {
		out.Responsive = override.Responsive
	}
	if override.NoOuterMargin != nil {
		out.NoOuterMargin = override.NoOuterMargin
	}
	if override.StartAtPage != nil {
		out.StartAtPage = override.StartAtPage
	}
	if override.Infinite != nil {
		out.Infinite = override.Infinite
	}
	if override.KeepSlideSize != nil {
		out.KeepSlideSize = override.KeepSlideSize
	}
	if override.FreeScroll != nil {
		out.FreeScroll = override.FreeScroll
	}
	if override.DotNavigation != nil {
		out.DotNavigation = override.DotNavigation
	}
	if override.DotStyle != nil {
		if out.DotStyle == nil {
			out.DotStyle = override.DotStyle
		} else {
			merged := out.DotStyle.merge(*override.DotStyle)
			out.DotStyle = &merged
		}
	}
	return out
}

func (o DotStyleOptions) merge(override DotStyleOptions) DotStyleOptions {
	if override.OwnStyle != nil {
		o.OwnStyle = override.OwnStyle
	}
	if override.ClassName != nil {
		o.ClassName = override.ClassName
	}
	if override.Size != nil {
		o.Size = override.Size
	}
	if override.Border != nil {
		o.Border = override.Border
	}
	if override.Margin != nil {
		o.Margin = override.Margin
	}
	if override.ActiveColor != nil {
		o.ActiveColor = override.ActiveColor
	}
	if override.InactiveColor != nil {
		o.InactiveColor = override.InactiveColor
	}
	if override.BorderRadius != nil {
		o.BorderRadius = override.BorderRadius
	}
	return o
}

// MatchBreakpoint returns the index of the breakpoint that applies at
// viewportWidth, or -1. The last entry in list order whose width is strictly
// greater than the viewport wins, so lists written largest-first resolve to
// the narrowest matching bracket.
func MatchBreakpoint(breakpoints []Breakpoint, viewportWidth float64) int {
	match := -1
	for i, bp := range breakpoints {
		if viewportWidth < bp.Width {
			match = i
		}
	}
	return match
}

// Resolve merges defaults, initial and the breakpoint override that matches
// viewportWidth. It returns the effective settings and the matched breakpoint
// index (-1 when none applies). Inputs are never mutated.
func Resolve(defaults Settings, initial Options, viewportWidth float64, warn func(string)) (Settings, int) {
	settings := initial.Apply(defaults, warn)
	index := MatchBreakpoint(initial.Responsive, viewportWidth)
	if index >= 0 {
		settings = initial.Responsive[index].Settings.Apply(settings, warn)
		settings.Responsive = append([]Breakpoint(nil), initial.Responsive...)
	}
	return settings.validate(warn), index
}

func (s Settings) validate(warn func(string)) Settings {
	if s.SlidesPerPage < 1 {
		if warn != nil {
			warn(fmt.Sprintf("option slidesPerPage must be at least 1, got %d", s.SlidesPerPage))
		}
		s.SlidesPerPage = 1
	}
	if s.Duration < 0 {
		s.Duration = 0
	}
	if s.Autoplay < 0 {
		s.Autoplay = 0
	}
	if s.StartAtPage < 0 {
		s.StartAtPage = 0
	}
	return s
}

// Ptr returns a pointer to v. It keeps literal Options readable.
func Ptr[T any](v T) *T {
	return &v
}
