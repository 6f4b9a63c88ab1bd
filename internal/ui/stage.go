package ui

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/glide/internal/deck"
	"github.com/five82/glide/internal/dom"
	"github.com/five82/glide/internal/slider"
)

const (
	deckElementID = "deck"

	minNaturalWidth = 12
	dotCells        = 2 // rendered dot plus trailing space
)

// stage owns the document and slider built for one deck revision. Terminal
// cells are used as pixels.
type stage struct {
	doc      *dom.Document
	track    *dom.Element
	slider   *slider.Slider
	deck     *deck.Deck
	revision int
}

type stageConfig struct {
	width    int
	options  slider.Options
	sched    slider.Scheduler
	logger   *slog.Logger
	warnings bool
}

func newStage(d *deck.Deck, revision int, cfg stageConfig) *stage {
	doc := dom.New(float64(cfg.width), dom.WithScheduler(cfg.sched))
	container := doc.NewElement("div")
	container.SetID(deckElementID)
	for i, slide := range d.Slides {
		el := doc.NewElement("section")
		el.SetData("index", strconv.Itoa(i))
		el.SetText(slide.Title)
		el.SetNaturalWidth(naturalWidth(slide))
		container.Append(el)
	}
	doc.Body().Append(container)

	s := slider.New(doc, "#"+deckElementID, cfg.options,
		slider.WithLogger(cfg.logger),
		slider.WithWarnings(cfg.warnings),
	)
	st := &stage{doc: doc, slider: s, deck: d, revision: revision}
	if track, ok := s.Track().(*dom.Element); ok {
		st.track = track
	}
	return st
}

// naturalWidth is the intrinsic width used in keep-slide-size mode: the
// explicit width when set, otherwise the widest rendered line plus the box
// border and padding.
func naturalWidth(slide deck.Slide) float64 {
	if slide.Width > 0 {
		return float64(slide.Width)
	}
	w := lipgloss.Width(slide.Title)
	if body := lipgloss.Width(slide.Body); body > w {
		w = body
	}
	return float64(max(w+4, minNaturalWidth))
}

func (st *stage) dispose() {
	if st != nil && st.slider != nil {
		st.slider.Dispose()
	}
}

// currentSlide returns the deck index of the slide aligned with the
// viewport, or -1.
func (st *stage) currentSlide() int {
	slides := st.slider.Slides()
	page := st.slider.Page()
	if page < 0 || page >= len(slides) {
		return -1
	}
	return slideIndex(slides[page])
}

func asDomElement(el slider.Element) *dom.Element {
	e, _ := el.(*dom.Element)
	return e
}

func slideIndex(el slider.Element) int {
	e := asDomElement(el)
	if e == nil {
		return -1
	}
	i, err := strconv.Atoi(e.Data("index"))
	if err != nil {
		return -1
	}
	return i
}

// hit returns the slide under column x, or nil over a margin gap.
func (st *stage) hit(x int) *dom.Element {
	if st.track == nil {
		return nil
	}
	return st.doc.ElementAt(st.track, float64(x))
}

// renderSlides draws the visible part of the track into a width×height block.
func (st *stage) renderSlides(styles Styles, width, height int) string {
	blank := strings.Repeat(" ", width)
	rows := make([]strings.Builder, height)
	cursor := 0

	page := st.slider.Page()
	for i, el := range st.slider.Slides() {
		e, ok := el.(*dom.Element)
		if !ok {
			continue
		}
		left := int(math.Round(e.PageLeft()))
		w := int(math.Round(e.OffsetWidth()))
		from, to := max(left, cursor, 0), min(left+w, width)
		if from >= to {
			continue
		}
		lines := st.renderSlide(styles, e, w, height, i == page)
		for r := range rows {
			rows[r].WriteString(blank[:from-cursor])
			line := ""
			if r < len(lines) {
				line = lines[r]
			}
			seg := ansi.Cut(line, from-left, to-left)
			rows[r].WriteString(seg)
			if pad := (to - from) - ansi.StringWidth(seg); pad > 0 {
				rows[r].WriteString(blank[:pad])
			}
		}
		cursor = to
	}

	out := make([]string, height)
	for r := range rows {
		out[r] = rows[r].String() + blank[:width-cursor]
	}
	return strings.Join(out, "\n")
}

func (st *stage) renderSlide(styles Styles, el *dom.Element, width, height int, current bool) []string {
	if width < 4 || height < 2 {
		return nil
	}
	idx := slideIndex(el)
	if idx < 0 || idx >= len(st.deck.Slides) {
		return nil
	}
	slide := st.deck.Slides[idx]

	content := styles.SlideTitle.Render(slide.Title)
	if slide.Body != "" {
		content += "\n\n" + slide.Body
	}
	box := styles.SlideStyle(current).
		Width(width - 2).
		Height(height - 2).
		MaxWidth(width).
		MaxHeight(height).
		Render(content)
	return strings.Split(box, "\n")
}

// dotState reads the dot row from the document: the number of dots, the one
// carrying the active class, and whether the row is centered.
func (st *stage) dotState() (count, active int, centered bool) {
	dots := st.slider.Dots()
	active = -1
	activeClass := st.slider.Settings().DotStyle.ClassName + "--active"
	for i, d := range dots {
		if d.HasClass(activeClass) {
			active = i
		}
	}
	if len(dots) > 0 {
		if e := asDomElement(dots[0]); e != nil && e.Parent() != nil {
			centered = e.Parent().Style("text-align") == "center"
		}
	}
	return len(dots), active, centered
}

// dotRowStart returns the column of the first dot.
func (st *stage) dotRowStart(width int) int {
	count, _, centered := st.dotState()
	if !centered {
		return 0
	}
	return max((width-count*dotCells)/2, 0)
}

func (st *stage) renderDots(styles Styles, width int) string {
	count, active, _ := st.dotState()
	if count == 0 {
		return strings.Repeat(" ", width)
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.TotalPages = count
	p.Page = active
	p.ActiveDot = styles.ActiveDot.Render("●") + " "
	p.InactiveDot = styles.InactiveDot.Render("○") + " "

	row := strings.Repeat(" ", st.dotRowStart(width)) + p.View()
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(row)
}

// dotAt maps a column on the dot row to a dot index, or -1.
func (st *stage) dotAt(x, width int) int {
	count, _, _ := st.dotState()
	start := st.dotRowStart(width)
	if x < start || x >= start+count*dotCells {
		return -1
	}
	return (x - start) / dotCells
}
