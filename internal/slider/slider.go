// Package slider implements a horizontally paged carousel engine on top of an
// abstract host document.
package slider

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
)

// ChangeFunc observes page changes.
type ChangeFunc func(page int)

// BreakpointFunc observes breakpoint transitions; index is -1 when the base
// settings apply again.
type BreakpointFunc func(index int)

// DragFunc observes live drag movement.
type DragFunc func(deltaX float64)

// Option configures a Slider at construction.
type Option func(*Slider)

// WithWarnings enables the warning channel.
func WithWarnings(enabled bool) Option {
	return func(s *Slider) { s.showWarnings = enabled }
}

// WithLogger routes warnings to logger instead of slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Slider) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithScheduler overrides the host's timer service.
func WithScheduler(sched Scheduler) Option {
	return func(s *Slider) {
		if sched != nil {
			s.sched = sched
		}
	}
}

type dragState struct {
	active bool
	startX float64
	deltaX float64
	start  int64 // unix milliseconds
}

type callbacks struct {
	beforeChange   ChangeFunc
	afterChange    ChangeFunc
	breakpoint     BreakpointFunc
	beforeDragging func()
	dragging       DragFunc
	afterDragging  func()
}

// Slider is one carousel instance. It is not safe for concurrent use: every
// method, listener and timer callback must run on the host's event loop.
type Slider struct {
	id           string
	host         Host
	sched        Scheduler
	log          *slog.Logger
	showWarnings bool
	inert        bool
	disposed     bool

	initial    Options
	settings   Settings
	breakpoint int

	container Element
	track     Element
	dotNav    Element
	dots      []Element
	arranged  Arrangement
	layout    Layout

	page   int
	offset float64
	drag   dragState

	autoplay   Timer
	correction Timer
	pending    []Timer // afterChange notifications

	removers []func()
	cb       callbacks
}

// New mounts a slider on target, which is either a selector string or an
// Element. When the target cannot be found a warning is logged and an inert
// slider is returned whose methods do nothing.
func New(host Host, target any, opts Options, options ...Option) *Slider {
	s := &Slider{
		id:         uuid.NewString(),
		host:       host,
		log:        slog.Default(),
		breakpoint: -1,
		initial:    opts,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.sched == nil && host != nil {
		s.sched = host.Scheduler()
	}

	s.container = s.lookup(target)
	if s.container == nil || s.sched == nil {
		if s.container != nil {
			s.warn("no scheduler available from host")
		} else {
			s.warn(fmt.Sprintf("no element found using the given selector: %v", target))
		}
		s.inert = true
		return s
	}

	s.settings, s.breakpoint = Resolve(DefaultSettings(), opts, host.ViewportWidth(), s.warn)
	s.mount()
	return s
}

func (s *Slider) lookup(target any) Element {
	if s.host == nil {
		return nil
	}
	switch t := target.(type) {
	case string:
		return s.host.Query(t)
	case Element:
		return t
	default:
		return nil
	}
}

func (s *Slider) mount() {
	s.container.SetStyle("overflow", "hidden")

	children := s.container.Children()
	s.track = s.host.CreateElement("div")
	s.track.AddClass(classTrack)
	s.track.SetStyle("overflow", "hidden")
	s.container.Append(s.track)

	s.arranged = BuildArrangement(children, s.settings, s.track)
	s.applyWidths()

	s.page = s.clampPage(s.settings.StartAtPage + s.arranged.Padding)
	s.offset = s.layout.PageOffset(s.page)
	s.setTransform(s.offset)
	s.enableTransition()

	s.buildDots()
	s.bindDragging()
	s.bindResize()
	s.bindClickSuppression()
	s.bindArrowControls()
	s.startAutoplay()
	s.activateDot()
}

// ID returns the instance identifier used in log records.
func (s *Slider) ID() string { return s.id }

// Inert reports whether construction failed and the slider does nothing.
func (s *Slider) Inert() bool { return s.inert }

// Settings returns the effective configuration.
func (s *Slider) Settings() Settings { return s.settings }

// Layout returns the current track geometry.
func (s *Slider) Layout() Layout { return s.layout }

// Page returns the index of the slide aligned with the viewport's left edge.
func (s *Slider) Page() int { return s.page }

// Offset returns the track translation in pixels.
func (s *Slider) Offset() float64 { return s.offset }

// SlideCount returns the number of arranged slides, clones included.
func (s *Slider) SlideCount() int { return s.arranged.Count() }

// RealCount returns the number of slides taken from the container.
func (s *Slider) RealCount() int { return s.arranged.Real }

// Slides returns the arranged slide elements in track order.
func (s *Slider) Slides() []Element {
	return append([]Element(nil), s.arranged.Slides...)
}

// Track returns the track element, or nil for an inert slider.
func (s *Slider) Track() Element { return s.track }

// Breakpoint returns the active breakpoint index, or -1.
func (s *Slider) Breakpoint() int { return s.breakpoint }

// Dragging reports whether a pointer drag is in progress.
func (s *Slider) Dragging() bool { return s.drag.active }

// AutoplayRunning reports whether the autoplay timer is armed.
func (s *Slider) AutoplayRunning() bool { return s.autoplay != nil }

// OnBeforeChange sets the callback fired synchronously when the page changes.
func (s *Slider) OnBeforeChange(fn ChangeFunc) { s.cb.beforeChange = fn }

// OnAfterChange sets the callback fired once the transition duration elapsed.
func (s *Slider) OnAfterChange(fn ChangeFunc) { s.cb.afterChange = fn }

// OnBreakpointChange sets the callback fired when another breakpoint applies.
func (s *Slider) OnBreakpointChange(fn BreakpointFunc) { s.cb.breakpoint = fn }

// OnBeforeDragging sets the callback fired when a drag starts.
func (s *Slider) OnBeforeDragging(fn func()) { s.cb.beforeDragging = fn }

// OnDragging sets the callback fired on every drag movement.
func (s *Slider) OnDragging(fn DragFunc) { s.cb.dragging = fn }

// OnAfterDragging sets the callback fired when a drag ends.
func (s *Slider) OnAfterDragging(fn func()) { s.cb.afterDragging = fn }

// Dispose stops every timer and detaches every listener the slider attached.
// It is safe to call more than once.
func (s *Slider) Dispose() {
	if s.inert || s.disposed {
		return
	}
	s.disposed = true
	s.stopAutoplay()
	s.stop(&s.correction)
	for _, t := range s.pending {
		t.Stop()
	}
	s.pending = nil
	for _, remove := range s.removers {
		remove()
	}
	s.removers = nil
	s.drag = dragState{}
}

func (s *Slider) active() bool {
	return !s.inert && !s.disposed
}

func (s *Slider) listen(el Element, t EventType, l Listener, opts ListenOptions) {
	s.removers = append(s.removers, el.Listen(t, l, opts))
}

func (s *Slider) listenHost(t EventType, l Listener, opts ListenOptions) {
	s.removers = append(s.removers, s.host.Listen(t, l, opts))
}

func (s *Slider) stop(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

func (s *Slider) warn(msg string) {
	if !s.showWarnings {
		return
	}
	s.log.Warn(msg, slog.String("slider", s.id))
}

func (s *Slider) setTransform(x float64) {
	s.track.SetStyle("transform", "translate("+formatPx(x)+", 0)")
}

func (s *Slider) enableTransition() {
	s.track.SetStyle("transition", fmt.Sprintf("all %dms %s", s.settings.Duration.Milliseconds(), s.settings.Easing))
}

func (s *Slider) disableTransition() {
	s.track.SetStyle("transition", "all 0ms "+s.settings.Easing)
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
