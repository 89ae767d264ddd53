package assets

import (
	"bytes"
	"fmt"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyleName selects the chroma color scheme for fenced code blocks.
// It must stay visually consistent with the github base stylesheet.
const highlightStyleName = "github"

// highlightOnce generates the stylesheet a single time per process.
// WriteCSS output is deterministic for a fixed chroma version and style, so
// repeated conversions see byte-identical CSS.
var highlightOnce = sync.OnceValues(generateHighlightCSS)

// HighlightCSS returns the syntax-highlighting stylesheet matching the
// class-based output produced by the Markdown converter.
func HighlightCSS() (string, error) {
	return highlightOnce()
}

func generateHighlightCSS() (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	style := styles.Get(highlightStyleName) // falls back to a default style, never nil

	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlightCSS, err)
	}

	return buf.String(), nil
}
