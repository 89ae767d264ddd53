package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion reports a goldmark conversion failure.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// MarkdownOptions is the immutable per-conversion grammar configuration.
// A zero value means plain GitHub-flavored parsing without emoji.
type MarkdownOptions struct {
	// Emoji enables :shortcode: substitution (GitHub emoji table). Callers
	// can disable it because the substitution may corrupt literal
	// colon-delimited text that resembles a shortcode.
	Emoji bool
}

// HTMLConverter is the Markdown to HTML stage of the pipeline.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
// Each converter carries its own grammar built from MarkdownOptions at
// construction time; nothing is shared or mutated across instances, so
// concurrent conversions with different options cannot contaminate each
// other.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter for the given options.
// The grammar is GitHub-flavored with footnotes, GitHub-compatible heading
// IDs, and class-based syntax highlighting for fenced code blocks.
func NewGoldmarkConverter(opts MarkdownOptions) *GoldmarkConverter {
	extensions := []goldmark.Extender{
		extension.GFM,      // tables, task lists, strikethrough, autolinks
		extension.Footnote, // [^ref] footnotes
		highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes so the stylesheet stays external
			),
		),
	}
	if opts.Emoji {
		extensions = append(extensions, emoji.Emoji)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // GitHub-compatible heading IDs
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // self-closing void elements
			// Note: WithUnsafe() intentionally NOT used; raw HTML in the
			// source is filtered as goldmark does by default.
			// Note: WithHardWraps() intentionally NOT used; GitHub renders
			// single newlines in files as soft breaks.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment. goldmark has no
// context support, so the conversion runs in a goroutine and is abandoned
// on cancellation; the buffered channel lets an abandoned worker finish
// its send and be collected.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Don't spawn a worker for a context that is already dead.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	out := make(chan result, 1)
	go func() {
		var buf bytes.Buffer
		err := c.md.Convert([]byte(content), &buf)
		out <- result{html: buf.String(), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-out:
		if r.err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, r.err)
		}
		return r.html, nil
	}
}
