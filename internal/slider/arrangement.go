package slider

const (
	classTrack      = classPrefix + "__track"
	classSlide      = classPrefix + "__slide"
	classSlideClone = classPrefix + "__slide--clone"
	classDotNav     = classPrefix + "__dot-nav"
)

// Arrangement is the ordered set of slides placed in the track.
type Arrangement struct {
	Slides  []Element
	Real    int // slides that came from the container
	Padding int // clones on each side; zero unless infinite
}

// Count returns the number of arranged slides, clones included.
func (a Arrangement) Count() int {
	return len(a.Slides)
}

// BuildArrangement moves children into track in order and, in infinite mode,
// surrounds them with deep clones: the last slidesPerPage slides are cloned
// in front and the first slidesPerPage behind.
func BuildArrangement(children []Element, s Settings, track Element) Arrangement {
	real := make([]Element, 0, len(children))
	for _, child := range children {
		child.AddClass(classSlide)
		track.Append(child)
		real = append(real, child)
	}

	a := Arrangement{Real: len(real)}
	if !s.Infinite || len(real) == 0 {
		a.Slides = real
		return a
	}

	padding := s.SlidesPerPage
	if padding > len(real) {
		padding = len(real)
	}
	a.Padding = padding

	leading := make([]Element, 0, padding)
	for i := len(real) - padding; i < len(real); i++ {
		leading = append(leading, cloneSlide(real[i]))
	}
	trailing := make([]Element, 0, padding)
	for i := 0; i < padding; i++ {
		trailing = append(trailing, cloneSlide(real[i]))
	}

	track.Prepend(leading...)
	track.Append(trailing...)

	a.Slides = make([]Element, 0, len(real)+2*padding)
	a.Slides = append(a.Slides, leading...)
	a.Slides = append(a.Slides, real...)
	a.Slides = append(a.Slides, trailing...)
	return a
}

func cloneSlide(el Element) Element {
	clone := el.Clone()
	clone.AddClass(classSlideClone)
	return clone
}
