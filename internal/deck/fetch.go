package deck

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Fetcher downloads decks over HTTP.
type Fetcher struct {
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "glide/0.1"
	requestTimeout   = 5 * time.Second
	maxDeckBytes     = 4 << 20
)

// NewFetcher returns a Fetcher with the default timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
}

// IsRemote reports whether source names an http(s) URL rather than a file.
func IsRemote(source string) bool {
	u, err := url.Parse(strings.TrimSpace(source))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetch retrieves and parses the deck at rawURL. The format comes from the
// response content type, falling back to the URL path extension.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Deck, error) {
	if f == nil {
		return nil, fmt.Errorf("fetcher is nil")
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse deck url %q: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/toml, application/yaml, text/markdown;q=0.9, */*;q=0.5")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("deck %s returned status %d", u.Path, resp.StatusCode)
	}

	format, err := formatForResponse(resp.Header.Get("Content-Type"), u.Path)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDeckBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	if d.Title == "" {
		d.Title = strings.TrimSuffix(path.Base(u.Path), path.Ext(u.Path))
	}
	return d, nil
}

func formatForResponse(contentType, urlPath string) (Format, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch mediaType {
	case "application/toml":
		return FormatTOML, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return FormatYAML, nil
	case "text/markdown", "text/x-markdown":
		return FormatMarkdown, nil
	}
	return FormatFor(urlPath)
}
