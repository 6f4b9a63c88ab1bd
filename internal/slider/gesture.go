package slider

import "math"

// freeScrollWindowMS is the drag duration in milliseconds below which a
// free-scroll release carries residual momentum.
const freeScrollWindowMS = 300

func (s *Slider) bindDragging() {
	s.listen(s.container, EventMouseDown, s.pointerDown, ListenOptions{})
	s.listen(s.container, EventTouchStart, s.pointerDown, ListenOptions{Passive: true})

	s.listenHost(EventMouseUp, s.pointerUp, ListenOptions{})
	s.listenHost(EventTouchEnd, s.pointerUp, ListenOptions{})

	s.listenHost(EventMouseMove, s.pointerMove, ListenOptions{})
	s.listenHost(EventTouchMove, s.pointerMove, ListenOptions{Passive: false})
}

func (s *Slider) pointerDown(e *Event) {
	if !s.active() {
		return
	}
	if !s.settings.Draggable {
		s.warn("dragging is disabled")
		return
	}
	if !e.IsTouch() && s.settings.MouseButton != nil && e.Button != *s.settings.MouseButton {
		s.warn("dragging is not possible with this mouse button")
		return
	}
	if !e.IsTouch() {
		e.PreventDefault()
	}

	s.stopAutoplay()
	s.disableTransition()
	s.drag = dragState{
		active: true,
		startX: e.X,
		start:  s.sched.Now().UnixMilli(),
	}
	if s.cb.beforeDragging != nil {
		s.cb.beforeDragging()
	}
}

func (s *Slider) pointerMove(e *Event) {
	if !s.active() || !s.drag.active {
		return
	}
	e.PreventDefault()
	s.drag.deltaX = e.X - s.drag.startX
	if s.cb.dragging != nil {
		s.cb.dragging(s.drag.deltaX)
	}
	s.setTransform(s.offset + s.drag.deltaX)
}

// pointerUp commits the drag. The delta is left in place so the click that
// follows a mouse release can still be suppressed.
func (s *Slider) pointerUp(e *Event) {
	if !s.active() || !s.drag.active {
		return
	}
	s.enableTransition()
	delta := s.drag.deltaX
	s.offset += delta

	if s.settings.FreeScroll {
		s.releaseFree(delta)
	} else {
		s.releasePaged(delta)
	}

	s.drag.active = false
	s.startAutoplay()
	if s.cb.afterDragging != nil {
		s.cb.afterDragging()
	}
}

func (s *Slider) releasePaged(delta float64) {
	threshold := s.settings.Threshold
	switch {
	case !s.layout.Natural() && math.Abs(delta) > s.layout.SlideWidth:
		s.gotoPage(s.CurrentPage(), gotoConfig{})
	case delta <= -threshold && s.offset > s.layout.MinOffset():
		s.GotoNext()
	case delta >= threshold && s.offset < 0:
		s.GotoPrev()
	default:
		s.gotoPage(s.CurrentPage(), gotoConfig{})
	}
}

// releaseFree applies the residual momentum of a quick drag and clamps the
// track inside its scrollable range. Faster drags travel further.
func (s *Slider) releaseFree(delta float64) {
	elapsed := s.sched.Now().UnixMilli() - s.drag.start
	force := float64(freeScrollWindowMS - elapsed)
	if force > 0 && math.Abs(delta) > s.settings.Threshold {
		if delta < 0 {
			s.offset -= force
		} else {
			s.offset += force
		}
	}
	s.offset = math.Min(0, math.Max(s.layout.MinOffset(), s.offset))
	s.setTransform(s.offset)
	s.page = s.clampPage(s.CurrentPage())
	s.activateDot()
}

func (s *Slider) bindClickSuppression() {
	s.listenHost(EventClick, s.suppressClick, ListenOptions{Capture: true})
	s.listenHost(EventTouchEnd, s.suppressClick, ListenOptions{})
}

// suppressClick swallows the click that ends a drag longer than the
// configured distance, then clears the recorded delta.
func (s *Slider) suppressClick(e *Event) {
	if !s.active() {
		return
	}
	if math.Abs(s.drag.deltaX) > s.settings.PreventClickDistance {
		e.StopPropagation()
		if e.Type != EventTouchEnd {
			e.PreventDefault()
		}
	}
	s.drag.deltaX = 0
}

// LastDragDelta returns the delta of the most recent drag until a click or
// touch end consumes it.
func (s *Slider) LastDragDelta() float64 { return s.drag.deltaX }
