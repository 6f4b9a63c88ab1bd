package slider

// Metrics are the measured box dimensions of the slider container.
type Metrics struct {
	Width        float64 // offset width, including padding and border
	PaddingLeft  float64
	PaddingRight float64
	BorderLeft   float64
	BorderRight  float64
}

// Layout is the derived track geometry.
type Layout struct {
	VisibleWidth float64
	SlideWidth   float64 // zero in keep-natural-size mode
	TrackWidth   float64
	// SlideWidths holds natural widths (without margins) in
	// keep-natural-size mode.
	SlideWidths []float64
	Margin      float64
}

// ComputeLayout derives slide and track widths. natural is only consulted in
// keep-natural-size mode and holds the intrinsic width of every arranged
// slide.
func ComputeLayout(m Metrics, s Settings, slideCount int, natural []float64) Layout {
	visible := m.Width - m.PaddingLeft - m.PaddingRight - m.BorderLeft - m.BorderRight
	if s.NoOuterMargin {
		visible += 2 * s.Margin
	}
	if visible < 0 {
		visible = 0
	}

	l := Layout{VisibleWidth: visible, Margin: s.Margin}
	if s.KeepSlideSize {
		l.SlideWidths = make([]float64, len(natural))
		copy(l.SlideWidths, natural)
		for _, w := range natural {
			l.TrackWidth += w + 2*s.Margin
		}
		return l
	}

	perPage := s.SlidesPerPage
	if perPage < 1 {
		perPage = 1
	}
	l.SlideWidth = visible / float64(perPage)
	l.TrackWidth = l.SlideWidth * float64(slideCount)
	return l
}

// Natural reports whether the layout uses per-slide widths.
func (l Layout) Natural() bool {
	return l.SlideWidths != nil
}

// Edge returns the left edge of slide i (its margin box) within the track.
func (l Layout) Edge(i int) float64 {
	if !l.Natural() {
		return float64(i) * l.SlideWidth
	}
	edge := 0.0
	for j := 0; j < i && j < len(l.SlideWidths); j++ {
		edge += l.SlideWidths[j] + 2*l.Margin
	}
	return edge
}

// PageOffset returns the track translation that aligns page with the
// viewport's left edge.
func (l Layout) PageOffset(page int) float64 {
	return 0 - l.Edge(page)
}

// MinOffset is the most negative translation that still keeps the track's end
// inside the viewport.
func (l Layout) MinOffset() float64 {
	overflow := l.TrackWidth - l.VisibleWidth
	if overflow < 0 {
		return 0
	}
	return -overflow
}
