package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/glide/internal/slider"
)

// Deck is a titled sequence of slides plus the slider options it prefers.
type Deck struct {
	Title  string         `toml:"title" yaml:"title"`
	Slides []Slide        `toml:"slides" yaml:"slides"`
	Slider slider.Options `toml:"slider" yaml:"slider"`
}

// Slide is one page of content. Width, when positive, is the slide's natural
// width in cells and is used in keep-slide-size mode.
type Slide struct {
	Title string `toml:"title" yaml:"title"`
	Body  string `toml:"body" yaml:"body"`
	Width int    `toml:"width,omitempty" yaml:"width,omitempty"`
}

// Format identifies a deck encoding.
type Format string

const (
	FormatTOML     Format = "toml"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ErrEmpty is returned for decks without slides.
var ErrEmpty = errors.New("deck has no slides")

// FormatFor picks a format from a file name or URL path.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported deck format %q", filepath.Ext(name))
	}
}

// Load reads and parses the deck at path.
func Load(path string) (*Deck, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Deck, error) {
	var d Deck
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse deck: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("parse deck: %w", err)
		}
	case FormatMarkdown:
		md, err := parseMarkdown(data)
		if err != nil {
			return nil, fmt.Errorf("parse deck: %w", err)
		}
		d = *md
	default:
		return nil, fmt.Errorf("unsupported deck format %q", format)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate reports structural problems that would leave nothing to show.
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return ErrEmpty
	}
	for i, s := range d.Slides {
		if s.Width < 0 {
			return fmt.Errorf("slide %d: negative width %d", i+1, s.Width)
		}
	}
	return nil
}

// Clone returns a deep copy of the slide list. Options are shared; they are
// never mutated after loading.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}
	dup := *d
	dup.Slides = append([]Slide(nil), d.Slides...)
	return &dup
}
