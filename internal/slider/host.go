package slider

import "strings"

// EventType names a host event.
type EventType string

const (
	EventMouseDown  EventType = "mousedown"
	EventMouseMove  EventType = "mousemove"
	EventMouseUp    EventType = "mouseup"
	EventTouchStart EventType = "touchstart"
	EventTouchMove  EventType = "touchmove"
	EventTouchEnd   EventType = "touchend"
	EventClick      EventType = "click"
	EventKeyDown    EventType = "keydown"
	EventResize     EventType = "resize"
)

// Event is a pointer, keyboard or window event delivered by the host.
type Event struct {
	Type   EventType
	X      float64 // page x coordinate
	Button int
	Key    string
	Target Element

	stopped   bool
	prevented bool
}

// StopPropagation prevents the event from reaching further listeners on
// other nodes.
func (e *Event) StopPropagation() { e.stopped = true }

// PreventDefault marks the host's default action as cancelled.
func (e *Event) PreventDefault() { e.prevented = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.stopped }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// IsTouch reports whether the event originated from a touch surface.
func (e *Event) IsTouch() bool {
	return strings.HasPrefix(string(e.Type), "touch")
}

// Listener handles a single event.
type Listener func(*Event)

// ListenOptions mirror the capture/passive listener flags of a browser host.
type ListenOptions struct {
	Capture bool
	Passive bool
}

// Element is a node of the host document. Implementations must support moving
// an element that already has a parent (Append and Prepend detach it first).
type Element interface {
	Children() []Element
	Append(children ...Element)
	Prepend(children ...Element)
	// After inserts sibling directly after the receiver.
	After(sibling Element)
	Remove()
	Clone() Element

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	SetStyle(prop, value string)
	Style(prop string) string
	ComputedStyle(prop string) string

	OffsetWidth() float64
	OffsetLeft() float64

	Listen(t EventType, l Listener, opts ListenOptions) (remove func())
}

// Host is the document/window surface a slider is mounted into.
type Host interface {
	// Query returns the first element matching selector, or nil.
	Query(selector string) Element
	CreateElement(tag string) Element
	ViewportWidth() float64
	// Listen attaches a document or window level listener.
	Listen(t EventType, l Listener, opts ListenOptions) (remove func())
	Scheduler() Scheduler
}
