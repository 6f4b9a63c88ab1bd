package app

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/five82/glide/internal/dom"
	"github.com/five82/glide/internal/slider"
)

// Summary describes how a deck mounts at one viewport width.
type Summary struct {
	Title      string
	Slides     int
	Pages      int // track positions, clones included
	Dots       int
	Breakpoint int
	SlideWidth float64
	Infinite   bool
}

// Inspect loads the deck at source and mounts it on a headless document of
// the given width. Slider warnings go to logger.
func Inspect(ctx context.Context, source string, opts slider.Options, width float64, logger *slog.Logger) (Summary, error) {
	d, err := Loader(source)(ctx)
	if err != nil {
		return Summary{}, err
	}

	doc := dom.New(width)
	container := doc.NewElement("div")
	container.SetID("deck")
	for i, slide := range d.Slides {
		el := doc.NewElement("section")
		el.SetData("index", strconv.Itoa(i))
		el.SetText(slide.Title)
		el.SetNaturalWidth(float64(slide.Width))
		container.Append(el)
	}
	doc.Body().Append(container)

	s := slider.New(doc, "#deck", opts.Merge(d.Slider), slider.WithLogger(logger), slider.WithWarnings(true))
	defer s.Dispose()

	return Summary{
		Title:      d.Title,
		Slides:     len(d.Slides),
		Pages:      s.MaxPage() + 1,
		Dots:       s.DotCount(),
		Breakpoint: s.Breakpoint(),
		SlideWidth: s.Layout().SlideWidth,
		Infinite:   s.Settings().Infinite,
	}, nil
}
