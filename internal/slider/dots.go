package slider

import "math"

func (s *Slider) buildDots() {
	if !s.settings.DotNavigation {
		return
	}
	style := s.settings.DotStyle

	s.dotNav = s.host.CreateElement("div")
	s.dotNav.AddClass(classDotNav)
	if !style.OwnStyle {
		s.dotNav.SetStyle("margin", "0 auto")
		s.dotNav.SetStyle("text-align", "center")
	}
	s.track.After(s.dotNav)

	count := s.DotCount()
	s.dots = make([]Element, 0, count)
	for i := 0; i < count; i++ {
		dot := s.host.CreateElement("div")
		dot.AddClass(style.ClassName)
		if !style.OwnStyle {
			dot.SetStyle("width", formatPx(style.Size))
			dot.SetStyle("height", formatPx(style.Size))
			dot.SetStyle("border-radius", style.BorderRadius)
			dot.SetStyle("display", "inline-block")
			dot.SetStyle("margin", "0 "+formatPx(style.Margin))
			dot.SetStyle("border", style.Border)
		}
		s.dotNav.Append(dot)

		index := i
		s.listen(dot, EventClick, func(*Event) { s.gotoDot(index) }, ListenOptions{})
		s.dots = append(s.dots, dot)
	}
}

// rebuildDots replaces the dot navigation after a breakpoint change, since
// both the dot count and the styling may differ.
func (s *Slider) rebuildDots() {
	if s.dotNav != nil {
		s.dotNav.Remove()
		s.dotNav = nil
		s.dots = nil
	}
	s.buildDots()
	s.activateDot()
}

func (s *Slider) gotoDot(index int) {
	if !s.active() {
		return
	}
	s.enableTransition()
	s.gotoPage(s.arranged.Padding+index*s.settings.SlidesPerPage, gotoConfig{})
}

// GotoDot navigates to the page represented by dot index.
func (s *Slider) GotoDot(index int) {
	if index < 0 || index >= s.DotCount() {
		return
	}
	s.gotoDot(index)
}

// DotCount returns the number of dots: one per page of real slides.
func (s *Slider) DotCount() int {
	if !s.active() {
		return 0
	}
	real := s.arranged.Count() - 2*s.arranged.Padding
	if real <= 0 {
		return 0
	}
	return int(math.Ceil(float64(real) / float64(s.settings.SlidesPerPage)))
}

// ActiveDot returns the index of the highlighted dot, or -1 when the current
// page sits on clone padding.
func (s *Slider) ActiveDot() int {
	if !s.active() {
		return -1
	}
	spp, pad := s.settings.SlidesPerPage, s.arranged.Padding
	index := floorDiv(s.page-pad, spp)
	// The last real page may start mid-group; it still belongs to the last dot.
	if last := pad + s.arranged.Real - spp; s.page == last && (last-pad)%spp != 0 {
		index = s.DotCount() - 1
	}
	if index < 0 || index >= s.DotCount() {
		return -1
	}
	return index
}

// Dots returns the dot elements in order.
func (s *Slider) Dots() []Element {
	return append([]Element(nil), s.dots...)
}

func (s *Slider) activateDot() {
	if !s.settings.DotNavigation || len(s.dots) == 0 {
		return
	}
	style := s.settings.DotStyle
	activeClass := style.ClassName + "--active"
	active := s.ActiveDot()
	for i, dot := range s.dots {
		if i == active {
			dot.AddClass(activeClass)
		} else {
			dot.RemoveClass(activeClass)
		}
		if style.OwnStyle {
			continue
		}
		if i == active {
			dot.SetStyle("background-color", style.ActiveColor)
		} else {
			dot.SetStyle("background-color", style.InactiveColor)
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
