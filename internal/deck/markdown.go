package deck

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// parseMarkdown splits a Markdown document into slides. A thematic break or an
// H1/H2 heading starts a new slide; the heading text becomes its title.
func parseMarkdown(content []byte) (*Deck, error) {
	d, remaining, err := extractFrontmatter(content)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(remaining))

	var cur *Slide
	var body []string
	flush := func() {
		if cur == nil {
			return
		}
		cur.Body = strings.TrimSpace(strings.Join(body, "\n\n"))
		if cur.Title != "" || cur.Body != "" {
			d.Slides = append(d.Slides, *cur)
		}
		cur, body = nil, nil
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.ThematicBreak:
			flush()
		case *ast.Heading:
			if node.Level <= 2 {
				flush()
				cur = &Slide{Title: inlineText(node, remaining)}
				continue
			}
			if cur == nil {
				cur = &Slide{}
			}
			body = append(body, inlineText(node, remaining))
		default:
			if cur == nil {
				cur = &Slide{}
			}
			if block := blockText(n, remaining); block != "" {
				body = append(body, block)
			}
		}
	}
	flush()
	return d, nil
}

// extractFrontmatter reads an optional YAML header delimited by "---" lines.
// It carries the deck title and slider options.
func extractFrontmatter(content []byte) (*Deck, []byte, error) {
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return &Deck{}, content, nil
	}
	end := bytes.Index(content[4:], []byte("\n---\n"))
	if end == -1 {
		return nil, nil, fmt.Errorf("unclosed frontmatter")
	}
	var d Deck
	if err := yaml.Unmarshal(content[4:4+end], &d); err != nil {
		return nil, nil, fmt.Errorf("frontmatter: %w", err)
	}
	d.Slides = nil
	return &d, content[4+end+5:], nil
}

func blockText(n ast.Node, src []byte) string {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return inlineText(node, src)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return rawLines(node, src)
	case *ast.List:
		var items []string
		i := node.Start
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "•"
			if node.IsOrdered() {
				marker = fmt.Sprintf("%d.", i)
				i++
			}
			items = append(items, marker+" "+childText(item, src))
		}
		return strings.Join(items, "\n")
	case *ast.Blockquote:
		lines := strings.Split(childText(node, src), "\n")
		for i, l := range lines {
			lines[i] = "│ " + l
		}
		return strings.Join(lines, "\n")
	case *ast.HTMLBlock:
		return ""
	default:
		if n.Type() == ast.TypeInline {
			return inlineText(n, src)
		}
		return childText(n, src)
	}
}

func childText(n ast.Node, src []byte) string {
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := blockText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

func rawLines(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.TrimRight(b.String(), "\n")
}

// inlineText concatenates the text leaves below n, keeping soft line breaks.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.CodeSpan:
			for cc := t.FirstChild(); cc != nil; cc = cc.NextSibling() {
				if txt, ok := cc.(*ast.Text); ok {
					b.Write(txt.Segment.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
