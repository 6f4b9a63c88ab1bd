package dom

import (
	"slices"
	"strings"

	"github.com/five82/glide/internal/slider"
)

// Element is a node of an in-memory document. It implements slider.Element.
type Element struct {
	doc      *Document
	tag      string
	id       string
	text     string
	classes  []string
	styles   map[string]string
	data     map[string]string
	natural  float64
	parent   *Element
	children []*Element
	handlers listeners
}

var _ slider.Element = (*Element)(nil)

func newElement(doc *Document, tag string) *Element {
	return &Element{
		doc:    doc,
		tag:    strings.ToLower(tag),
		styles: make(map[string]string),
		data:   make(map[string]string),
	}
}

// Tag returns the lower-cased tag name.
func (e *Element) Tag() string { return e.tag }

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// SetID sets the element id used by "#id" selectors.
func (e *Element) SetID(id string) { e.id = id }

// Text returns the text content of the element itself.
func (e *Element) Text() string { return e.text }

// SetText replaces the text content.
func (e *Element) SetText(text string) { e.text = text }

// Data returns a data attribute.
func (e *Element) Data(key string) string { return e.data[key] }

// SetData sets a data attribute. Data attributes survive Clone.
func (e *Element) SetData(key, value string) { e.data[key] = value }

// SetNaturalWidth sets the content width used when no inline width is set.
func (e *Element) SetNaturalWidth(px float64) { e.natural = px }

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element { return e.parent }

// ChildElements returns the children as concrete elements.
func (e *Element) ChildElements() []*Element {
	return slices.Clone(e.children)
}

func (e *Element) Children() []slider.Element {
	out := make([]slider.Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *Element) Append(children ...slider.Element) {
	for _, c := range children {
		child := asElement(c)
		if child == nil {
			continue
		}
		child.detach()
		child.parent = e
		e.children = append(e.children, child)
	}
}

func (e *Element) Prepend(children ...slider.Element) {
	moved := make([]*Element, 0, len(children))
	for _, c := range children {
		child := asElement(c)
		if child == nil {
			continue
		}
		child.detach()
		child.parent = e
		moved = append(moved, child)
	}
	e.children = append(moved, e.children...)
}

func (e *Element) After(sibling slider.Element) {
	s := asElement(sibling)
	if s == nil || e.parent == nil || s == e {
		return
	}
	s.detach()
	p := e.parent
	i := slices.Index(p.children, e)
	p.children = slices.Insert(p.children, i+1, s)
	s.parent = p
}

func (e *Element) Remove() { e.detach() }

func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	if i := slices.Index(p.children, e); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	e.parent = nil
}

// Clone returns a deep copy without parent or listeners.
func (e *Element) Clone() slider.Element {
	return e.clone()
}

func (e *Element) clone() *Element {
	c := newElement(e.doc, e.tag)
	c.id = e.id
	c.text = e.text
	c.natural = e.natural
	c.classes = slices.Clone(e.classes)
	for k, v := range e.styles {
		c.styles[k] = v
	}
	for k, v := range e.data {
		c.data[k] = v
	}
	for _, child := range e.children {
		cc := child.clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

func (e *Element) AddClass(name string) {
	if !e.HasClass(name) {
		e.classes = append(e.classes, name)
	}
}

func (e *Element) RemoveClass(name string) {
	if i := slices.Index(e.classes, name); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
	}
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Classes returns the class list in insertion order.
func (e *Element) Classes() []string { return slices.Clone(e.classes) }

// SetStyle sets an inline style property; an empty value removes it.
func (e *Element) SetStyle(prop, value string) {
	prop = strings.ToLower(strings.TrimSpace(prop))
	if value == "" {
		delete(e.styles, prop)
		return
	}
	e.styles[prop] = value
}

func (e *Element) Style(prop string) string {
	return e.styles[strings.ToLower(prop)]
}

// ComputedStyle resolves longhand box properties from their shorthands. Any
// other property reads the inline value.
func (e *Element) ComputedStyle(prop string) string {
	prop = strings.ToLower(prop)
	if v, ok := e.styles[prop]; ok {
		return v
	}
	switch prop {
	case "padding-top", "padding-right", "padding-bottom", "padding-left":
		return formatPx(boxSide(e.styles["padding"], strings.TrimPrefix(prop, "padding-")))
	case "margin-top", "margin-right", "margin-bottom", "margin-left":
		return formatPx(boxSide(e.styles["margin"], strings.TrimPrefix(prop, "margin-")))
	case "border-top-width", "border-right-width", "border-bottom-width", "border-left-width":
		side := strings.TrimSuffix(strings.TrimPrefix(prop, "border-"), "-width")
		return formatPx(e.borderWidth(side))
	}
	return ""
}

func (e *Element) borderWidth(side string) float64 {
	if v, ok := e.styles["border-"+side]; ok {
		return borderShorthandWidth(v)
	}
	if v, ok := e.styles["border-width"]; ok {
		return boxSide(v, side)
	}
	return borderShorthandWidth(e.styles["border"])
}

func (e *Element) px(prop string) float64 {
	return ParsePx(e.ComputedStyle(prop))
}

// OffsetWidth is the border-box width: the inline width (or, without one,
// the natural width) plus horizontal padding and borders. Block elements
// without either fill their parent's content box.
func (e *Element) OffsetWidth() float64 {
	content := e.natural
	switch {
	case e.styles["width"] != "":
		content = ParsePx(e.styles["width"])
	case e.natural == 0 && e.styles["float"] == "" && e.parent != nil:
		return e.parent.contentWidth() - e.px("margin-left") - e.px("margin-right")
	case e.natural == 0 && e.parent == nil && e.doc != nil && e == e.doc.body:
		content = e.doc.viewport
	}
	return content + e.px("padding-left") + e.px("padding-right") +
		e.px("border-left-width") + e.px("border-right-width")
}

func (e *Element) contentWidth() float64 {
	return e.OffsetWidth() - e.px("padding-left") - e.px("padding-right") -
		e.px("border-left-width") - e.px("border-right-width")
}

// OffsetLeft is the distance from the parent's border edge to the element's
// border edge. Floated siblings are laid out left to right.
func (e *Element) OffsetLeft() float64 {
	if e.parent == nil {
		return 0
	}
	left := e.parent.px("padding-left")
	if e.styles["float"] == "left" {
		for _, sib := range e.parent.children {
			if sib == e {
				break
			}
			if sib.styles["float"] != "left" {
				continue
			}
			left += sib.px("margin-left") + sib.OffsetWidth() + sib.px("margin-right")
		}
	}
	return left + e.px("margin-left")
}

// PageLeft returns the element's left border edge in viewport coordinates,
// including translateX transforms and relative offsets of the element and
// its ancestors.
func (e *Element) PageLeft() float64 {
	x := 0.0
	for cur := e; cur != nil; cur = cur.parent {
		x += cur.OffsetLeft() + ParseTranslateX(cur.styles["transform"])
		if cur.styles["position"] == "relative" {
			x += ParsePx(cur.styles["left"]) - ParsePx(cur.styles["right"])
		}
		if cur.parent != nil {
			x += cur.parent.px("border-left-width")
		}
	}
	return x
}

func (e *Element) Listen(t slider.EventType, l slider.Listener, opts slider.ListenOptions) func() {
	return e.handlers.add(t, l, opts)
}

// ListenerCount returns the number of attached listeners.
func (e *Element) ListenerCount() int { return e.handlers.len() }

func (e *Element) matches(sel string) bool {
	switch {
	case strings.HasPrefix(sel, "#"):
		return e.id == sel[1:]
	case strings.HasPrefix(sel, "."):
		return e.HasClass(sel[1:])
	default:
		return e.tag == strings.ToLower(sel)
	}
}

func (e *Element) find(sel string) *Element {
	if e.matches(sel) {
		return e
	}
	for _, c := range e.children {
		if m := c.find(sel); m != nil {
			return m
		}
	}
	return nil
}

// Closest returns the nearest inclusive ancestor carrying class, or nil.
func (e *Element) Closest(class string) *Element {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.HasClass(class) {
			return cur
		}
	}
	return nil
}

func asElement(el slider.Element) *Element {
	e, _ := el.(*Element)
	return e
}
