package slider

// startAutoplay (re)arms the autoplay timer for the current interval.
func (s *Slider) startAutoplay() {
	s.stopAutoplay()
	if !s.active() || s.settings.Autoplay <= 0 || s.drag.active {
		return
	}
	s.autoplay = s.sched.Every(s.settings.Autoplay, func() {
		s.enableTransition()
		s.GotoNext()
	})
}

func (s *Slider) stopAutoplay() {
	s.stop(&s.autoplay)
}

// SetAutoplay pauses or resumes autoplay without touching the configured
// interval.
func (s *Slider) SetAutoplay(enabled bool) {
	if !s.active() {
		return
	}
	if enabled {
		s.startAutoplay()
		return
	}
	s.stopAutoplay()
}

func (s *Slider) bindArrowControls() {
	s.listenHost(EventKeyDown, func(e *Event) {
		if !s.active() || !s.settings.ArrowControls {
			return
		}
		switch e.Key {
		case "ArrowLeft", "Left":
			s.GotoPrev()
		case "ArrowRight", "Right":
			s.GotoNext()
		}
	}, ListenOptions{})
}
