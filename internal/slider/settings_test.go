package slider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	s, index := Resolve(DefaultSettings(), Options{}, 1024, nil)
	assert.Equal(t, -1, index)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, 200*time.Millisecond, s.Duration)
	assert.Equal(t, "glide__dot", s.DotStyle.ClassName)
}

func TestResolveMergesInitial(t *testing.T) {
	initial := Options{
		SlidesPerPage: Ptr(3.0),
		Margin:        Ptr(8.0),
		Duration:      Ptr(350),
		Autoplay:      Ptr(2000),
		MouseButton:   Ptr(0),
		Infinite:      Ptr(true),
	}
	s, _ := Resolve(DefaultSettings(), initial, 1024, nil)

	assert.Equal(t, 3, s.SlidesPerPage)
	assert.Equal(t, 8.0, s.Margin)
	assert.Equal(t, 350*time.Millisecond, s.Duration)
	assert.Equal(t, 2*time.Second, s.Autoplay)
	require.NotNil(t, s.MouseButton)
	assert.Equal(t, 0, *s.MouseButton)
	assert.True(t, s.Infinite)
	assert.True(t, s.Draggable, "unset fields keep defaults")
}

func TestResolveLastMatchingBreakpointWins(t *testing.T) {
	initial := Options{
		SlidesPerPage: Ptr(4.0),
		Margin:        Ptr(5.0),
		Responsive: []Breakpoint{
			{Width: 1200, Settings: Options{SlidesPerPage: Ptr(3.0)}},
			{Width: 900, Settings: Options{SlidesPerPage: Ptr(2.0)}},
			{Width: 600, Settings: Options{SlidesPerPage: Ptr(1.0)}},
		},
	}

	tests := []struct {
		width     float64
		wantIndex int
		wantSPP   int
	}{
		{1300, -1, 4},
		{1200, -1, 4},
		{1000, 0, 3},
		{800, 1, 2},
		{500, 2, 1},
	}
	for _, tt := range tests {
		s, index := Resolve(DefaultSettings(), initial, tt.width, nil)
		assert.Equal(t, tt.wantIndex, index, "width %v", tt.width)
		assert.Equal(t, tt.wantSPP, s.SlidesPerPage, "width %v", tt.width)
		assert.Equal(t, 5.0, s.Margin, "initial settings still apply at width %v", tt.width)
	}
}

func TestResolveListOrderNotNumericOrder(t *testing.T) {
	initial := Options{Responsive: []Breakpoint{
		{Width: 600, Settings: Options{SlidesPerPage: Ptr(1.0)}},
		{Width: 1200, Settings: Options{SlidesPerPage: Ptr(3.0)}},
	}}
	s, index := Resolve(DefaultSettings(), initial, 500, nil)
	assert.Equal(t, 1, index)
	assert.Equal(t, 3, s.SlidesPerPage)
}

func TestResolveRoundsSlidesPerPage(t *testing.T) {
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }

	s, _ := Resolve(DefaultSettings(), Options{SlidesPerPage: Ptr(2.6)}, 1024, warn)
	assert.Equal(t, 3, s.SlidesPerPage)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "whole number")

	warnings = nil
	s, _ = Resolve(DefaultSettings(), Options{SlidesPerPage: Ptr(0.2)}, 1024, warn)
	assert.Equal(t, 1, s.SlidesPerPage)
	assert.Len(t, warnings, 2)
}

func TestResolveMergesDotStyleByKey(t *testing.T) {
	initial := Options{
		DotStyle: &DotStyleOptions{ActiveColor: Ptr("#f00")},
		Responsive: []Breakpoint{
			{Width: 800, Settings: Options{DotStyle: &DotStyleOptions{Size: Ptr(6.0)}}},
		},
	}
	s, _ := Resolve(DefaultSettings(), initial, 500, nil)

	assert.Equal(t, "#f00", s.DotStyle.ActiveColor)
	assert.Equal(t, 6.0, s.DotStyle.Size)
	assert.Equal(t, "1px solid #999", s.DotStyle.Border)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	defaults := DefaultSettings()
	initial := Options{
		SlidesPerPage: Ptr(2.0),
		Responsive: []Breakpoint{
			{Width: 800, Settings: Options{SlidesPerPage: Ptr(1.0)}},
		},
	}
	s, _ := Resolve(defaults, initial, 500, nil)
	s.Responsive[0].Width = 1

	assert.Equal(t, DefaultSettings(), defaults)
	assert.Equal(t, 2.0, *initial.SlidesPerPage)
	assert.Equal(t, 800.0, initial.Responsive[0].Width)
}

func TestResolveClampsNegatives(t *testing.T) {
	s, _ := Resolve(DefaultSettings(), Options{
		Duration:    Ptr(-5),
		Autoplay:    Ptr(-1),
		StartAtPage: Ptr(-3),
	}, 1024, nil)
	assert.Zero(t, s.Duration)
	assert.Zero(t, s.Autoplay)
	assert.Zero(t, s.StartAtPage)
}

func TestOptionsMerge(t *testing.T) {
	base := Options{
		SlidesPerPage: Ptr(2.0),
		Infinite:      Ptr(true),
		DotStyle:      &DotStyleOptions{Size: Ptr(8.0)},
	}
	override := Options{
		SlidesPerPage: Ptr(3.0),
		DotStyle:      &DotStyleOptions{Border: Ptr("none")},
	}
	merged := base.Merge(override)

	assert.Equal(t, 3.0, *merged.SlidesPerPage)
	assert.True(t, *merged.Infinite)
	require.NotNil(t, merged.DotStyle)
	assert.Equal(t, 8.0, *merged.DotStyle.Size)
	assert.Equal(t, "none", *merged.DotStyle.Border)
	assert.Nil(t, base.DotStyle.Border, "base is left untouched")
}

func TestMatchBreakpoint(t *testing.T) {
	assert.Equal(t, -1, MatchBreakpoint(nil, 100))
	bps := []Breakpoint{{Width: 1024}}
	assert.Equal(t, 0, MatchBreakpoint(bps, 800))
	assert.Equal(t, -1, MatchBreakpoint(bps, 1024))
}
