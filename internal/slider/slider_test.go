package slider_test

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/glide/internal/dom"
	"github.com/five82/glide/internal/slider"
)

type fixture struct {
	doc       *dom.Document
	sched     *slider.ManualScheduler
	container *dom.Element
	slider    *slider.Slider
}

func newFixture(t *testing.T, slides int, opts slider.Options, options ...slider.Option) *fixture {
	t.Helper()
	return newFixtureWidths(t, make([]float64, slides), 1200, opts, options...)
}

func newFixtureWidths(t *testing.T, widths []float64, viewport float64, opts slider.Options, options ...slider.Option) *fixture {
	t.Helper()
	sched := slider.NewManualScheduler(time.Unix(0, 0))
	doc := dom.New(viewport, dom.WithScheduler(sched))
	container := doc.NewElement("div")
	container.SetID("slider")
	container.SetStyle("width", "500px")
	for i, w := range widths {
		el := doc.NewElement("div")
		el.SetData("index", strconv.Itoa(i))
		el.SetNaturalWidth(w)
		container.Append(el)
	}
	doc.Body().Append(container)

	s := slider.New(doc, "#slider", opts, options...)
	require.False(t, s.Inert())
	t.Cleanup(s.Dispose)
	return &fixture{doc: doc, sched: sched, container: container, slider: s}
}

func (f *fixture) slide(i int) *dom.Element {
	return f.slider.Slides()[i].(*dom.Element)
}

// visibleIndex returns the data index of the slide aligned with the viewport.
func (f *fixture) visibleIndex() string {
	return f.slide(f.slider.Page()).Data("index")
}

func (f *fixture) drag(target *dom.Element, from, to float64, hold time.Duration) {
	f.doc.Dispatch(target, &slider.Event{Type: slider.EventMouseDown, X: from})
	f.sched.Advance(hold)
	f.doc.Dispatch(nil, &slider.Event{Type: slider.EventMouseMove, X: to})
	f.doc.Dispatch(nil, &slider.Event{Type: slider.EventMouseUp, X: to})
}

type recorder struct {
	before []int
	after  []int
}

func (r *recorder) attach(s *slider.Slider) {
	s.OnBeforeChange(func(p int) { r.before = append(r.before, p) })
	s.OnAfterChange(func(p int) { r.after = append(r.after, p) })
}

func TestMountBuildsTrack(t *testing.T) {
	f := newFixture(t, 4, slider.Options{Margin: slider.Ptr(10.0)})

	track := f.slider.Track().(*dom.Element)
	assert.True(t, track.HasClass("glide__track"))
	assert.Same(t, f.container, track.Parent())
	assert.Equal(t, "hidden", f.container.Style("overflow"))
	assert.Len(t, track.ChildElements(), 4)

	assert.Equal(t, 500.0, f.slider.Layout().SlideWidth)
	assert.Equal(t, "2000px", track.Style("width"))
	assert.Equal(t, "480px", f.slide(0).Style("width"))
	assert.Equal(t, "0 10px", f.slide(0).Style("margin"))
	assert.True(t, f.slide(0).HasClass("glide__slide"))
	assert.Equal(t, "translate(0px, 0)", track.Style("transform"))
	assert.Equal(t, "all 200ms ease-out", track.Style("transition"))
}

func TestGotoPageClamps(t *testing.T) {
	f := newFixture(t, 5, slider.Options{SlidesPerPage: slider.Ptr(2.0)})
	require.Equal(t, 3, f.slider.MaxPage())

	for target := -2; target <= 8; target++ {
		f.slider.GotoPage(target)
		want := min(max(target, 0), 3)
		assert.Equal(t, want, f.slider.Page(), "target %d", target)
		assert.Equal(t, -float64(want)*250, f.slider.Offset(), "target %d", target)
	}
}

func TestGotoPageCallbacks(t *testing.T) {
	f := newFixture(t, 5, slider.Options{})
	var rec recorder
	rec.attach(f.slider)

	f.slider.GotoPage(2)
	assert.Equal(t, []int{2}, rec.before)
	assert.Empty(t, rec.after, "afterChange waits for the transition")

	f.sched.Advance(199 * time.Millisecond)
	assert.Empty(t, rec.after)
	f.sched.Advance(time.Millisecond)
	assert.Equal(t, []int{2}, rec.after)

	f.slider.GotoPage(2)
	f.sched.Advance(time.Second)
	assert.Equal(t, []int{2}, rec.before)
	assert.Equal(t, []int{2}, rec.after)

	f.slider.GotoPage(99)
	f.sched.Advance(time.Second)
	assert.Equal(t, 4, f.slider.Page())
	assert.Equal(t, []int{2}, rec.before, "out of range requests stay silent")

	f.slider.GotoPage(1, slider.WithoutCallbacks())
	assert.Equal(t, 1, f.slider.Page())
	assert.Equal(t, []int{2}, rec.before)
}

func TestNextPrevRoundTrip(t *testing.T) {
	f := newFixture(t, 5, slider.Options{})
	f.slider.GotoPage(2)
	page, offset := f.slider.Page(), f.slider.Offset()

	f.slider.GotoNext()
	assert.Equal(t, 3, f.slider.Page())
	f.slider.GotoPrev()
	assert.Equal(t, page, f.slider.Page())
	assert.Equal(t, offset, f.slider.Offset())
}

func TestNextPrevWrap(t *testing.T) {
	f := newFixture(t, 3, slider.Options{})
	var rec recorder
	rec.attach(f.slider)

	f.slider.GotoPrev()
	assert.Equal(t, 2, f.slider.Page())
	f.slider.GotoNext()
	assert.Equal(t, 0, f.slider.Page())
	assert.Equal(t, []int{2, 0}, rec.before)
}

func TestInfiniteArrangement(t *testing.T) {
	f := newFixture(t, 3, slider.Options{
		SlidesPerPage: slider.Ptr(2.0),
		Infinite:      slider.Ptr(true),
	})

	assert.Equal(t, 7, f.slider.SlideCount())
	assert.Equal(t, 3, f.slider.RealCount())
	var order []string
	var clones []bool
	for i := range f.slider.Slides() {
		order = append(order, f.slide(i).Data("index"))
		clones = append(clones, f.slide(i).HasClass("glide__slide--clone"))
	}
	assert.Equal(t, []string{"1", "2", "0", "1", "2", "0", "1"}, order)
	assert.Equal(t, []bool{true, true, false, false, false, true, true}, clones)
	assert.Equal(t, 2, f.slider.Page(), "start lands past the leading clones")
}

func TestInfiniteLoopReturnsToSameContent(t *testing.T) {
	f := newFixture(t, 4, slider.Options{Infinite: slider.Ptr(true)})
	start := f.visibleIndex()
	require.Equal(t, "0", start)

	for i := 0; i < 4; i++ {
		f.slider.GotoNext()
		f.sched.Advance(200 * time.Millisecond)
	}
	assert.Equal(t, start, f.visibleIndex())
	assert.Equal(t, 1, f.slider.Page(), "correction jumps back to the real slide")
}

func TestInfiniteCorrectionBackwards(t *testing.T) {
	f := newFixture(t, 3, slider.Options{Infinite: slider.Ptr(true)})
	var rec recorder
	rec.attach(f.slider)

	f.slider.GotoPrev()
	assert.Equal(t, 0, f.slider.Page())
	assert.Equal(t, "2", f.visibleIndex())

	f.sched.Advance(200 * time.Millisecond)
	assert.Equal(t, 3, f.slider.Page())
	assert.Equal(t, "2", f.visibleIndex())
	assert.Equal(t, "all 0ms ease-out", f.slider.Track().Style("transition"))
	assert.Equal(t, []int{0}, rec.before, "correction is silent")
	assert.Equal(t, []int{0}, rec.after)
}

func TestRapidGotoKeepsOneCorrection(t *testing.T) {
	f := newFixture(t, 3, slider.Options{Infinite: slider.Ptr(true)})

	f.slider.GotoPage(0)
	f.sched.Advance(100 * time.Millisecond)
	f.slider.GotoPage(2)
	f.sched.Advance(time.Second)

	assert.Equal(t, 2, f.slider.Page(), "superseded correction never fires")
}

func TestDotCount(t *testing.T) {
	plain := newFixture(t, 10, slider.Options{
		SlidesPerPage: slider.Ptr(2.0),
		DotNavigation: slider.Ptr(true),
	})
	assert.Equal(t, 5, plain.slider.DotCount())
	assert.Len(t, plain.slider.Dots(), 5)

	infinite := newFixture(t, 10, slider.Options{
		SlidesPerPage: slider.Ptr(2.0),
		DotNavigation: slider.Ptr(true),
		Infinite:      slider.Ptr(true),
	})
	assert.Equal(t, 14, infinite.slider.SlideCount())
	assert.Equal(t, 5, infinite.slider.DotCount())
}

func TestDotNavigation(t *testing.T) {
	f := newFixture(t, 5, slider.Options{
		SlidesPerPage: slider.Ptr(2.0),
		DotNavigation: slider.Ptr(true),
	})
	dots := f.slider.Dots()
	require.Len(t, dots, 3)

	nav := dots[0].(*dom.Element).Parent()
	assert.True(t, nav.HasClass("glide__dot-nav"))
	assert.Equal(t, "center", nav.Style("text-align"))
	assert.Equal(t, "10px", dots[0].Style("width"))
	assert.Equal(t, "#fff", dots[0].Style("background-color"))
	assert.True(t, dots[0].HasClass("glide__dot--active"))

	f.doc.Dispatch(dots[1].(*dom.Element), &slider.Event{Type: slider.EventClick})
	assert.Equal(t, 2, f.slider.Page())
	assert.Equal(t, 1, f.slider.ActiveDot())
	assert.Equal(t, "transparent", dots[0].Style("background-color"))

	// The last page starts mid-group and belongs to the last dot.
	f.slider.GotoPage(3)
	assert.Equal(t, 2, f.slider.ActiveDot())
	assert.True(t, dots[2].HasClass("glide__dot--active"))
	assert.False(t, dots[1].HasClass("glide__dot--active"))
}

func TestDotNavigationInfinite(t *testing.T) {
	f := newFixture(t, 6, slider.Options{
		SlidesPerPage: slider.Ptr(2.0),
		DotNavigation: slider.Ptr(true),
		Infinite:      slider.Ptr(true),
	})
	assert.Equal(t, 0, f.slider.ActiveDot())

	f.slider.GotoDot(2)
	assert.Equal(t, 6, f.slider.Page())
	assert.Equal(t, 2, f.slider.ActiveDot())
}

func TestDotsOwnStyle(t *testing.T) {
	f := newFixture(t, 3, slider.Options{
		DotNavigation: slider.Ptr(true),
		DotStyle:      &slider.DotStyleOptions{OwnStyle: slider.Ptr(true), ClassName: slider.Ptr("pip")},
	})
	dot := f.slider.Dots()[0]
	assert.True(t, dot.HasClass("pip"))
	assert.True(t, dot.HasClass("pip--active"))
	assert.Empty(t, dot.Style("width"))
	assert.Empty(t, dot.Style("background-color"))
}

func TestDragPastThresholdGoesNext(t *testing.T) {
	f := newFixture(t, 5, slider.Options{Threshold: slider.Ptr(20.0)})
	var rec recorder
	rec.attach(f.slider)
	started, ended := 0, 0
	var moves []float64
	f.slider.OnBeforeDragging(func() { started++ })
	f.slider.OnDragging(func(dx float64) { moves = append(moves, dx) })
	f.slider.OnAfterDragging(func() { ended++ })

	f.drag(f.slide(0), 300, 275, 50*time.Millisecond)

	assert.Equal(t, 1, f.slider.Page())
	assert.Equal(t, []int{1}, rec.before)
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, ended)
	assert.Equal(t, []float64{-25}, moves)
	assert.False(t, f.slider.Dragging())
}

func TestDragBelowThresholdSnapsBack(t *testing.T) {
	f := newFixture(t, 5, slider.Options{Threshold: slider.Ptr(20.0)})
	var rec recorder
	rec.attach(f.slider)

	f.drag(f.slide(0), 300, 295, 50*time.Millisecond)
	f.sched.Advance(time.Second)

	assert.Equal(t, 0, f.slider.Page())
	assert.Equal(t, 0.0, f.slider.Offset())
	assert.Empty(t, rec.before)
	assert.Empty(t, rec.after)
}

func TestDragRightGoesPrev(t *testing.T) {
	f := newFixture(t, 5, slider.Options{})
	f.slider.GotoPage(2, slider.WithoutCallbacks())

	f.drag(f.slide(2), 100, 150, 0)
	assert.Equal(t, 1, f.slider.Page())
}

func TestLongDragSnapsToNearest(t *testing.T) {
	f := newFixture(t, 5, slider.Options{})

	f.drag(f.slide(0), 1000, 0, 0)
	assert.Equal(t, 2, f.slider.Page())
	assert.Equal(t, -1000.0, f.slider.Offset())
}

func TestDragTracksPointer(t *testing.T) {
	f := newFixture(t, 5, slider.Options{})
	track := f.slider.Track()

	f.doc.Dispatch(f.slide(0), &slider.Event{Type: slider.EventMouseDown, X: 200})
	assert.True(t, f.slider.Dragging())
	assert.Equal(t, "all 0ms ease-out", track.Style("transition"))

	f.doc.Dispatch(nil, &slider.Event{Type: slider.EventMouseMove, X: 140})
	assert.Equal(t, "translate(-60px, 0)", track.Style("transform"))
	assert.Equal(t, 0, f.slider.Page(), "nothing commits before release")
}

func TestDragIgnored(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	f := newFixture(t, 5, slider.Options{Draggable: slider.Ptr(false)},
		slider.WithWarnings(true), slider.WithLogger(logger))
	f.drag(f.slide(0), 300, 200, 0)
	assert.Equal(t, 0, f.slider.Page())
	assert.Contains(t, buf.String(), "dragging is disabled")

	buf.Reset()
	g := newFixture(t, 5, slider.Options{MouseButton: slider.Ptr(0)},
		slider.WithWarnings(true), slider.WithLogger(logger))
	g.doc.Dispatch(g.slide(0), &slider.Event{Type: slider.EventMouseDown, X: 300, Button: 2})
	assert.False(t, g.slider.Dragging())
	assert.Contains(t, buf.String(), "mouse button")
}

func TestDragOnOtherContainerIgnored(t *testing.T) {
	f := newFixture(t, 5, slider.Options{})
	other := f.doc.NewElement("div")
	f.doc.Body().Append(other)

	f.drag(other, 300, 100, 0)
	assert.Equal(t, 0, f.slider.Page())
	assert.Equal(t, 0.0, f.slider.Offset())
}

func TestClickSuppressedAfterDrag(t *testing.T) {
	f := newFixture(t, 5, slider.Options{PreventClickDistance: slider.Ptr(50.0)})
	clicks := 0
	f.slide(1).Listen(slider.EventClick, func(*slider.Event) { clicks++ }, slider.ListenOptions{})

	f.drag(f.slide(0), 300, 240, 0)
	assert.Equal(t, -60.0, f.slider.LastDragDelta())

	click := &slider.Event{Type: slider.EventClick}
	ok := f.doc.Dispatch(f.slide(1), click)
	assert.False(t, ok)
	assert.True(t, click.PropagationStopped())
	assert.Zero(t, clicks)
	assert.Zero(t, f.slider.LastDragDelta())

	f.doc.Dispatch(f.slide(1), &slider.Event{Type: slider.EventClick})
	assert.Equal(t, 1, clicks, "only the click ending the drag is swallowed")
}

func TestShortDragKeepsClick(t *testing.T) {
	f := newFixture(t, 5, slider.Options{PreventClickDistance: slider.Ptr(50.0)})
	clicks := 0
	f.slide(0).Listen(slider.EventClick, func(*slider.Event) { clicks++ }, slider.ListenOptions{})

	f.drag(f.slide(0), 300, 270, 0)
	f.doc.Dispatch(f.slide(0), &slider.Event{Type: slider.EventClick})
	assert.Equal(t, 1, clicks)
}

func TestTouchEndClearsDelta(t *testing.T) {
	f := newFixture(t, 5, slider.Options{})
	f.doc.Dispatch(f.slide(0), &slider.Event{Type: slider.EventTouchStart, X: 300})
	f.doc.Dispatch(nil, &slider.Event{Type: slider.EventTouchMove, X: 200})
	end := &slider.Event{Type: slider.EventTouchEnd, X: 200}
	f.doc.Dispatch(nil, end)

	assert.Equal(t, 1, f.slider.Page())
	assert.True(t, end.PropagationStopped())
	assert.False(t, end.DefaultPrevented())
	assert.Zero(t, f.slider.LastDragDelta())
}

func TestBreakpointTransitions(t *testing.T) {
	f := newFixtureWidths(t, make([]float64, 6), 1200, slider.Options{
		SlidesPerPage: slider.Ptr(3.0),
		Responsive: []slider.Breakpoint{
			{Width: 1024, Settings: slider.Options{SlidesPerPage: slider.Ptr(1.0)}},
		},
	})
	var changes []int
	f.slider.OnBreakpointChange(func(i int) { changes = append(changes, i) })
	require.Equal(t, -1, f.slider.Breakpoint())

	f.doc.SetViewportWidth(800)
	assert.Equal(t, 1, f.slider.Settings().SlidesPerPage)
	assert.Equal(t, 500.0, f.slider.Layout().SlideWidth)
	assert.Equal(t, []int{0}, changes)

	f.doc.SetViewportWidth(700)
	assert.Equal(t, []int{0}, changes, "same bracket does not fire again")

	f.doc.SetViewportWidth(1100)
	assert.Equal(t, 3, f.slider.Settings().SlidesPerPage)
	assert.Equal(t, []int{0, -1}, changes)
}

func TestResizeClampsPage(t *testing.T) {
	f := newFixtureWidths(t, make([]float64, 6), 500, slider.Options{
		Responsive: []slider.Breakpoint{
			{Width: 1000, Settings: slider.Options{SlidesPerPage: slider.Ptr(1.0)}},
			{Width: 600, Settings: slider.Options{SlidesPerPage: slider.Ptr(1.0)}},
		},
		SlidesPerPage: slider.Ptr(4.0),
	})
	require.Equal(t, 1, f.slider.Breakpoint())
	f.slider.GotoPage(5)
	var rec recorder
	rec.attach(f.slider)

	f.doc.SetViewportWidth(1200)
	assert.Equal(t, 4, f.slider.Settings().SlidesPerPage)
	assert.Equal(t, 2, f.slider.Page())
	assert.Equal(t, -250.0, f.slider.Offset())
	assert.Empty(t, rec.before)
}

func TestBreakpointRestartsAutoplay(t *testing.T) {
	f := newFixtureWidths(t, make([]float64, 4), 1200, slider.Options{
		Autoplay: slider.Ptr(1000),
		Responsive: []slider.Breakpoint{
			{Width: 1024, Settings: slider.Options{Autoplay: slider.Ptr(0)}},
		},
	})
	require.True(t, f.slider.AutoplayRunning())

	f.doc.SetViewportWidth(800)
	assert.False(t, f.slider.AutoplayRunning())
	f.sched.Advance(5 * time.Second)
	assert.Equal(t, 0, f.slider.Page())
}

func TestAutoplay(t *testing.T) {
	f := newFixture(t, 3, slider.Options{Autoplay: slider.Ptr(1000)})

	f.sched.Advance(time.Second)
	assert.Equal(t, 1, f.slider.Page())
	f.sched.Advance(2 * time.Second)
	assert.Equal(t, 0, f.slider.Page(), "wraps after the last page")

	f.doc.Dispatch(f.slide(0), &slider.Event{Type: slider.EventMouseDown, X: 10})
	assert.False(t, f.slider.AutoplayRunning())
	f.sched.Advance(3 * time.Second)
	assert.Equal(t, 0, f.slider.Page())
	f.doc.Dispatch(nil, &slider.Event{Type: slider.EventMouseUp, X: 10})
	assert.True(t, f.slider.AutoplayRunning())

	f.slider.SetAutoplay(false)
	f.sched.Advance(3 * time.Second)
	assert.Equal(t, 0, f.slider.Page())
}

func TestArrowControls(t *testing.T) {
	f := newFixture(t, 3, slider.Options{ArrowControls: slider.Ptr(true)})

	f.doc.Dispatch(nil, &slider.Event{Type: slider.EventKeyDown, Key: "ArrowRight"})
	assert.Equal(t, 1, f.slider.Page())
	f.doc.Dispatch(nil, &slider.Event{Type: slider.EventKeyDown, Key: "Left"})
	assert.Equal(t, 0, f.slider.Page())

	g := newFixture(t, 3, slider.Options{})
	g.doc.Dispatch(nil, &slider.Event{Type: slider.EventKeyDown, Key: "ArrowRight"})
	assert.Equal(t, 0, g.slider.Page())
}

func TestNaturalWidthCurrentPage(t *testing.T) {
	f := newFixtureWidths(t, []float64{100, 200, 150, 120}, 1200, slider.Options{
		KeepSlideSize: slider.Ptr(true),
		FreeScroll:    slider.Ptr(true),
	})
	f.container.SetStyle("width", "300px")
	f.slider.Resize()
	require.True(t, f.slider.Layout().Natural())
	assert.Equal(t, 570.0, f.slider.Layout().TrackWidth)

	f.slider.GotoPage(2)
	assert.Equal(t, -300.0, f.slider.Offset())
	assert.Equal(t, 2, f.slider.CurrentPage())

	f.slider.GotoPage(0, slider.WithoutCallbacks())
	f.drag(f.slide(0), 200, 70, time.Second)
	assert.Equal(t, -130.0, f.slider.Offset(), "free scroll does not snap")
	assert.Equal(t, 1, f.slider.CurrentPage())

	f.slider.GotoPage(0, slider.WithoutCallbacks())
	f.drag(f.slide(0), 200, 150, time.Second)
	assert.Equal(t, -50.0, f.slider.Offset())
	assert.Equal(t, 1, f.slider.CurrentPage(), "ties prefer the slide right of the origin")
}

func TestFreeScrollMomentum(t *testing.T) {
	f := newFixtureWidths(t, []float64{100, 200, 150, 120}, 1200, slider.Options{
		KeepSlideSize: slider.Ptr(true),
		FreeScroll:    slider.Ptr(true),
	})
	f.container.SetStyle("width", "300px")
	f.slider.Resize()

	f.drag(f.slide(0), 200, 150, 100*time.Millisecond)
	assert.Equal(t, -250.0, f.slider.Offset())

	f.slider.GotoPage(0, slider.WithoutCallbacks())
	f.drag(f.slide(0), 400, 200, 0)
	require.Equal(t, -270.0, f.slider.Layout().MinOffset())
	assert.Equal(t, f.slider.Layout().MinOffset(), f.slider.Offset(), "clamped to the track end")

	f.drag(f.slide(0), 0, 500, 0)
	assert.Equal(t, 0.0, f.slider.Offset(), "clamped to the track start")
}

func TestNoOuterMargin(t *testing.T) {
	f := newFixture(t, 3, slider.Options{
		Margin:        slider.Ptr(10.0),
		NoOuterMargin: slider.Ptr(true),
	})
	assert.Equal(t, 520.0, f.slider.Layout().VisibleWidth)
	assert.Equal(t, "relative", f.container.Style("position"))
	assert.Equal(t, "10px", f.container.Style("right"))
}

func TestContainerPaddingAndBorder(t *testing.T) {
	sched := slider.NewManualScheduler(time.Unix(0, 0))
	doc := dom.New(1200, dom.WithScheduler(sched))
	container := doc.NewElement("div")
	container.AddClass("deck")
	container.SetStyle("width", "400px")
	container.SetStyle("padding", "0 20px")
	container.SetStyle("border", "5px solid #000")
	container.Append(doc.NewElement("div"), doc.NewElement("div"))
	doc.Body().Append(container)

	s := slider.New(doc, container, slider.Options{})
	defer s.Dispose()
	assert.Equal(t, 400.0, s.Layout().VisibleWidth)
}

func TestStartAtPage(t *testing.T) {
	f := newFixture(t, 5, slider.Options{StartAtPage: slider.Ptr(3)})
	assert.Equal(t, 3, f.slider.Page())
	assert.Equal(t, -1500.0, f.slider.Offset())

	g := newFixture(t, 5, slider.Options{StartAtPage: slider.Ptr(1), Infinite: slider.Ptr(true)})
	assert.Equal(t, 2, g.slider.Page())
	assert.Equal(t, "1", g.visibleIndex())
}

func TestInertSlider(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	doc := dom.New(800)

	s := slider.New(doc, "#missing", slider.Options{}, slider.WithWarnings(true), slider.WithLogger(logger))
	assert.True(t, s.Inert())
	assert.Contains(t, buf.String(), "no element found")

	assert.NotPanics(t, func() {
		s.GotoNext()
		s.GotoPrev()
		s.GotoPage(3)
		s.Resize()
		s.Dispose()
	})
	assert.Zero(t, s.DotCount())
	assert.Nil(t, s.Track())
	assert.Zero(t, doc.ListenerCount())
}

func TestWarningsSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := slider.New(dom.New(800), "#missing", slider.Options{}, slider.WithLogger(logger))
	assert.True(t, s.Inert())
	assert.Empty(t, buf.String())
}

func TestDisposeDetachesEverything(t *testing.T) {
	f := newFixture(t, 4, slider.Options{
		Autoplay:      slider.Ptr(1000),
		Infinite:      slider.Ptr(true),
		DotNavigation: slider.Ptr(true),
		ArrowControls: slider.Ptr(true),
	})
	require.NotZero(t, f.doc.ListenerCount())
	f.slider.GotoPage(0)
	require.NotZero(t, f.sched.Pending())

	f.slider.Dispose()
	f.slider.Dispose()

	assert.Zero(t, f.doc.ListenerCount())
	assert.Zero(t, f.container.ListenerCount())
	assert.Zero(t, f.sched.Pending())
	for _, dot := range f.slider.Dots() {
		assert.Zero(t, dot.(*dom.Element).ListenerCount())
	}

	page := f.slider.Page()
	f.slider.GotoNext()
	f.doc.Dispatch(nil, &slider.Event{Type: slider.EventKeyDown, Key: "ArrowRight"})
	assert.Equal(t, page, f.slider.Page())
}

func TestInstancesDoNotInterfere(t *testing.T) {
	sched := slider.NewManualScheduler(time.Unix(0, 0))
	doc := dom.New(1200, dom.WithScheduler(sched))
	var containers []*dom.Element
	for _, id := range []string{"a", "b"} {
		c := doc.NewElement("div")
		c.SetID(id)
		c.SetStyle("width", "500px")
		for i := 0; i < 3; i++ {
			c.Append(doc.NewElement("div"))
		}
		doc.Body().Append(c)
		containers = append(containers, c)
	}
	a := slider.New(doc, "#a", slider.Options{})
	b := slider.New(doc, "#b", slider.Options{})
	defer a.Dispose()
	defer b.Dispose()

	slide := a.Slides()[0].(*dom.Element)
	doc.Dispatch(slide, &slider.Event{Type: slider.EventMouseDown, X: 300})
	doc.Dispatch(nil, &slider.Event{Type: slider.EventMouseMove, X: 250})
	doc.Dispatch(nil, &slider.Event{Type: slider.EventMouseUp, X: 250})

	assert.Equal(t, 1, a.Page())
	assert.Equal(t, 0, b.Page())
	assert.NotEqual(t, a.ID(), b.ID())
}
