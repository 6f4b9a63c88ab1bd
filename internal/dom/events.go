package dom

import "github.com/five82/glide/internal/slider"

type listener struct {
	typ     slider.EventType
	fn      slider.Listener
	opts    slider.ListenOptions
	removed bool
}

type listeners struct {
	entries []*listener
}

func (ls *listeners) add(t slider.EventType, fn slider.Listener, opts slider.ListenOptions) func() {
	l := &listener{typ: t, fn: fn, opts: opts}
	ls.entries = append(ls.entries, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, cur := range ls.entries {
			if cur == l {
				ls.entries = append(ls.entries[:i], ls.entries[i+1:]...)
				break
			}
		}
	}
}

func (ls *listeners) len() int { return len(ls.entries) }

// fire runs the listeners registered for e.Type in the given phase. All
// listeners on one node run even after StopPropagation.
func (ls *listeners) fire(e *slider.Event, capture bool, both bool) {
	snapshot := append([]*listener(nil), ls.entries...)
	for _, l := range snapshot {
		if l.removed || l.typ != e.Type {
			continue
		}
		if !both && l.opts.Capture != capture {
			continue
		}
		l.fn(e)
	}
}

// Dispatch delivers e to target through capture, target and bubble phases,
// with the document acting as the outermost node. A nil target delivers to
// document listeners only. It returns false when a listener called
// PreventDefault.
func (d *Document) Dispatch(target *Element, e *slider.Event) bool {
	if target == nil {
		d.handlers.fire(e, false, true)
		return !e.DefaultPrevented()
	}
	e.Target = target

	var path []*Element // root first
	for cur := target.parent; cur != nil; cur = cur.parent {
		path = append([]*Element{cur}, path...)
	}

	d.handlers.fire(e, true, false)
	for _, el := range path {
		if e.PropagationStopped() {
			return !e.DefaultPrevented()
		}
		el.handlers.fire(e, true, false)
	}
	if e.PropagationStopped() {
		return !e.DefaultPrevented()
	}
	target.handlers.fire(e, false, true)
	for i := len(path) - 1; i >= 0; i-- {
		if e.PropagationStopped() {
			return !e.DefaultPrevented()
		}
		path[i].handlers.fire(e, false, false)
	}
	if !e.PropagationStopped() {
		d.handlers.fire(e, false, false)
	}
	return !e.DefaultPrevented()
}
