package slider

func (s *Slider) bindResize() {
	s.listenHost(EventResize, func(*Event) { s.Resize() }, ListenOptions{})
}

// Resize re-resolves the configuration against the current viewport width,
// recomputes the layout and re-snaps to the current page without animation.
// The breakpoint callback fires only when a different breakpoint applies.
func (s *Slider) Resize() {
	if !s.active() {
		return
	}
	s.updateBreakpoint()
	s.applyWidths()
	s.disableTransition()
	// gotoPage clamps, so a page beyond the new maximum lands on the last one.
	s.gotoPage(s.page, gotoConfig{silent: true})
}

func (s *Slider) updateBreakpoint() {
	settings, index := Resolve(DefaultSettings(), s.initial, s.host.ViewportWidth(), s.warn)
	if settings.Infinite != s.settings.Infinite {
		if index != s.breakpoint {
			s.warn("option infinite cannot change after construction, keeping the initial arrangement")
		}
		settings.Infinite = s.settings.Infinite
	}
	s.settings = settings
	if index == s.breakpoint {
		return
	}

	s.breakpoint = index
	s.log.Debug("breakpoint changed", "slider", s.id, "index", index)
	s.rebuildDots()
	if s.cb.breakpoint != nil {
		s.cb.breakpoint(index)
	}
	s.startAutoplay()
}
