package slider

import (
	"math"
	"strconv"
	"strings"
)

// GotoOption adjusts a single page change.
type GotoOption func(*gotoConfig)

type gotoConfig struct {
	silent     bool
	correction bool
}

// WithoutCallbacks moves the track without firing change callbacks.
func WithoutCallbacks() GotoOption {
	return func(c *gotoConfig) { c.silent = true }
}

func newGotoConfig(opts []GotoOption) gotoConfig {
	var cfg gotoConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// GotoPage moves the track so page is aligned with the viewport's left edge.
// Out-of-range pages are clamped; callbacks are skipped when the requested
// page was out of range or already current.
func (s *Slider) GotoPage(page int, opts ...GotoOption) {
	if !s.active() {
		return
	}
	s.gotoPage(page, newGotoConfig(opts))
}

// GotoNearest snaps to the page closest to the current offset.
func (s *Slider) GotoNearest(opts ...GotoOption) {
	if !s.active() {
		return
	}
	s.gotoPage(s.CurrentPage(), newGotoConfig(opts))
}

// GotoNext moves one page forward, wrapping to the first page at the end.
func (s *Slider) GotoNext() {
	if !s.active() {
		return
	}
	s.enableTransition()
	next := s.page + 1
	if s.page >= s.maxPage() {
		next = 0
	}
	s.gotoPage(next, gotoConfig{})
}

// GotoPrev moves one page back, wrapping to the last page at the start.
func (s *Slider) GotoPrev() {
	if !s.active() {
		return
	}
	s.enableTransition()
	prev := s.page - 1
	if s.page <= 0 {
		prev = s.maxPage()
	}
	s.gotoPage(prev, gotoConfig{})
}

// CurrentPage returns the page nearest to the current offset. It is not
// clamped to the last page.
func (s *Slider) CurrentPage() int {
	if !s.active() || s.offset > 0 {
		return 0
	}
	if s.layout.Natural() {
		return s.nearestNaturalPage()
	}
	if s.layout.SlideWidth <= 0 {
		return 0
	}
	return int(math.Abs(roundHalfUp(s.offset / s.layout.SlideWidth)))
}

// nearestNaturalPage picks the slide whose left edge is closest to the
// viewport origin; on equal distance the slide at or right of the origin wins.
func (s *Slider) nearestNaturalPage() int {
	best := 0
	bestDiff := math.Inf(1)
	for i := range s.arranged.Slides {
		diff := s.layout.Edge(i) + s.offset
		switch {
		case math.Abs(diff) < math.Abs(bestDiff):
			best, bestDiff = i, diff
		case math.Abs(diff) == math.Abs(bestDiff) && diff >= 0 && bestDiff < 0:
			best, bestDiff = i, diff
		}
	}
	return best
}

func (s *Slider) gotoPage(page int, cfg gotoConfig) {
	trigger := !cfg.silent
	maxPage := s.maxPage()
	if page < 0 || page > maxPage || page == s.page {
		trigger = false
	}
	page = s.clampPage(page)

	s.offset = s.layout.PageOffset(page)
	s.setTransform(s.offset)
	s.page = page

	if trigger {
		if s.cb.beforeChange != nil {
			s.cb.beforeChange(page)
		}
		s.scheduleAfterChange(page)
	}

	s.stop(&s.correction)
	if !cfg.correction {
		s.scheduleCorrection()
	}
	s.activateDot()
}

func (s *Slider) scheduleAfterChange(page int) {
	var t Timer
	t = s.sched.After(s.settings.Duration, func() {
		s.dropPending(t)
		if s.cb.afterChange != nil {
			s.cb.afterChange(page)
		}
	})
	s.pending = append(s.pending, t)
}

func (s *Slider) dropPending(t Timer) {
	for i, cur := range s.pending {
		if cur == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// scheduleCorrection arms the silent jump that replaces a clone with the
// real slide it mirrors once the transition has finished.
func (s *Slider) scheduleCorrection() {
	pad := s.arranged.Padding
	if pad == 0 {
		return
	}
	real := s.arranged.Real
	var target int
	switch {
	case s.page == 0:
		target = s.page + real
	case s.page >= s.maxPage() && s.page >= pad+real:
		target = s.page - real
	default:
		return
	}
	s.correction = s.sched.After(s.settings.Duration, func() {
		s.correction = nil
		s.disableTransition()
		s.gotoPage(target, gotoConfig{silent: true, correction: true})
	})
}

func (s *Slider) maxPage() int {
	max := s.arranged.Count() - s.settings.SlidesPerPage
	if max < 0 {
		return 0
	}
	return max
}

func (s *Slider) clampPage(page int) int {
	if max := s.maxPage(); page > max {
		page = max
	}
	if page < 0 {
		page = 0
	}
	return page
}

// MaxPage returns the last page index that can be aligned with the viewport.
func (s *Slider) MaxPage() int { return s.maxPage() }

func (s *Slider) measure() Metrics {
	style := s.container.ComputedStyle
	return Metrics{
		Width:        s.container.OffsetWidth(),
		PaddingLeft:  parsePx(style("padding-left")),
		PaddingRight: parsePx(style("padding-right")),
		BorderLeft:   parsePx(style("border-left-width")),
		BorderRight:  parsePx(style("border-right-width")),
	}
}

// applyWidths recomputes the layout and writes slide and track geometry.
func (s *Slider) applyWidths() {
	margin := s.settings.Margin
	var natural []float64
	for _, slide := range s.arranged.Slides {
		slide.SetStyle("margin", "0 "+formatPx(margin))
		slide.SetStyle("float", "left")
		if s.settings.KeepSlideSize {
			slide.SetStyle("width", "")
			natural = append(natural, slide.OffsetWidth())
		}
	}
	if s.settings.KeepSlideSize && natural == nil {
		natural = []float64{}
	}

	s.layout = ComputeLayout(s.measure(), s.settings, s.arranged.Count(), natural)

	if !s.settings.KeepSlideSize {
		width := math.Max(0, s.layout.SlideWidth-2*margin)
		for _, slide := range s.arranged.Slides {
			slide.SetStyle("width", formatPx(width))
		}
	}
	s.track.SetStyle("width", formatPx(s.layout.TrackWidth))

	if s.settings.NoOuterMargin {
		s.container.SetStyle("position", "relative")
		s.container.SetStyle("right", formatPx(margin))
	} else {
		s.container.SetStyle("right", "")
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func parsePx(v string) float64 {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
