package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/glide/internal/slider"
)

// handleMouse translates terminal mouse reports into document events:
// a press over the slides becomes mousedown on the slide under the cursor,
// motion becomes a document mousemove, and a release becomes mouseup
// followed by click. Presses on the dot row click the dot element.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.stage == nil || m.modal != nil || m.showHelp {
		return m, nil
	}
	st := m.stage
	r := m.regions()
	inSlides := msg.Y >= r.slidesTop && msg.Y < r.slidesTop+r.slidesHeight
	x := float64(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		if tea.MouseEvent(msg).IsWheel() {
			return m, nil
		}
		switch {
		case inSlides:
			m.pressed = true
			target := st.hit(msg.X)
			if target == nil {
				target = st.track
			}
			st.doc.Dispatch(target, &slider.Event{Type: slider.EventMouseDown, X: x, Button: domButton(msg.Button)})
		case msg.Y == r.dotsRow:
			if i := st.dotAt(msg.X, m.width); i >= 0 {
				if dot := asDomElement(st.slider.Dots()[i]); dot != nil {
					st.doc.Dispatch(dot, &slider.Event{Type: slider.EventClick, X: x})
				}
			}
		}

	case tea.MouseActionMotion:
		st.doc.Dispatch(nil, &slider.Event{Type: slider.EventMouseMove, X: x, Button: domButton(msg.Button)})

	case tea.MouseActionRelease:
		st.doc.Dispatch(nil, &slider.Event{Type: slider.EventMouseUp, X: x, Button: domButton(msg.Button)})
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		if !inSlides {
			return m, nil
		}
		target := st.hit(msg.X)
		if target == nil {
			return m, nil
		}
		if st.doc.Dispatch(target, &slider.Event{Type: slider.EventClick, X: x}) {
			m.openSlide(slideIndex(target))
		}
	}
	return m, nil
}

// domButton maps terminal buttons to DOM MouseEvent.button numbering.
func domButton(b tea.MouseButton) int {
	switch b {
	case tea.MouseButtonMiddle:
		return 1
	case tea.MouseButtonRight:
		return 2
	case tea.MouseButtonBackward:
		return 3
	case tea.MouseButtonForward:
		return 4
	default:
		return 0
	}
}
