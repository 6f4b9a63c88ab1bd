// Package dom is a small in-memory document used as the slider host by the
// terminal UI, the validate command and tests. It models just enough of a
// browser: a node tree, inline styles, float layout and event dispatch.
package dom

import (
	"time"

	"github.com/five82/glide/internal/slider"
)

// Document is the root of an element tree plus window-level state.
type Document struct {
	body     *Element
	viewport float64
	sched    slider.Scheduler
	handlers listeners
}

var _ slider.Host = (*Document)(nil)

// Option configures a Document.
type Option func(*Document)

// WithScheduler sets the timer service handed to sliders.
func WithScheduler(s slider.Scheduler) Option {
	return func(d *Document) { d.sched = s }
}

// New returns an empty document with the given viewport width. Without
// WithScheduler a ManualScheduler starting at the Unix epoch is used.
func New(viewportWidth float64, opts ...Option) *Document {
	d := &Document{viewport: viewportWidth}
	d.body = newElement(d, "body")
	for _, opt := range opts {
		opt(d)
	}
	if d.sched == nil {
		d.sched = slider.NewManualScheduler(time.Unix(0, 0))
	}
	return d
}

// Body returns the root element.
func (d *Document) Body() *Element { return d.body }

// NewElement creates a detached element.
func (d *Document) NewElement(tag string) *Element {
	return newElement(d, tag)
}

func (d *Document) CreateElement(tag string) slider.Element {
	return newElement(d, tag)
}

// Query supports "#id", ".class" and bare tag selectors and returns the first
// match in document order.
func (d *Document) Query(selector string) slider.Element {
	if el := d.Find(selector); el != nil {
		return el
	}
	return nil
}

// Find is Query returning the concrete element.
func (d *Document) Find(selector string) *Element {
	if selector == "" {
		return nil
	}
	return d.body.find(selector)
}

func (d *Document) ViewportWidth() float64 { return d.viewport }

// SetViewportWidth changes the viewport and dispatches a resize event when
// the width differs.
func (d *Document) SetViewportWidth(w float64) {
	if w == d.viewport {
		return
	}
	d.viewport = w
	d.Dispatch(nil, &slider.Event{Type: slider.EventResize})
}

func (d *Document) Listen(t slider.EventType, l slider.Listener, opts slider.ListenOptions) func() {
	return d.handlers.add(t, l, opts)
}

// ListenerCount returns the number of document-level listeners.
func (d *Document) ListenerCount() int { return d.handlers.len() }

func (d *Document) Scheduler() slider.Scheduler { return d.sched }

// ElementAt returns the deepest element whose horizontal extent contains x
// among the descendants of root, preferring later siblings, or nil.
func (d *Document) ElementAt(root *Element, x float64) *Element {
	if root == nil {
		root = d.body
	}
	for i := len(root.children) - 1; i >= 0; i-- {
		c := root.children[i]
		left := c.PageLeft()
		if x >= left && x < left+c.OffsetWidth() {
			if deeper := d.ElementAt(c, x); deeper != nil {
				return deeper
			}
			return c
		}
	}
	return nil
}
