package mdpdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/nvell/mdpdf/internal/assets"
	"github.com/nvell/mdpdf/internal/fileutil"
)

// composeStyles builds the ordered CSS for a request. Bundled styles come
// first and user stylesheets last, so user rules win under normal cascade
// rules. The returned string is a sequence of <style> blocks ready to be
// bound into the document template.
//
// Order: GitHub base (optional), syntax highlighting, default typography
// (optional), then each user stylesheet in request order.
func (c *Converter) composeStyles(req Request) (string, error) {
	var blocks []string

	if req.GithubStyle {
		css, err := c.loader.LoadStyle(assets.StyleGithub)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadStylesheet, err)
		}
		blocks = append(blocks, css)
	}

	// Highlighting classes are referenced by every fenced code block the
	// converter emits, so they ship regardless of style flags.
	highlight, err := assets.HighlightCSS()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadStylesheet, err)
	}
	blocks = append(blocks, highlight)

	if req.DefaultStyle {
		css, err := c.loader.LoadStyle(assets.StyleDefault)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadStylesheet, err)
		}
		blocks = append(blocks, css)
	}

	for _, entry := range req.Stylesheets {
		css, err := c.resolveStylesheet(entry)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, css)
	}

	return wrapStyleBlocks(blocks), nil
}

// resolveStylesheet turns one Stylesheets entry into CSS text. An entry is
// either a file path, inline CSS, or the name of a loadable style, decided
// in that order:
//
//   - http:// and https:// references are rejected; remote fetching is out
//     of scope and failing loudly beats silently unstyled output.
//   - anything that looks like a path (contains a separator or ends in
//     .css) is read from disk.
//   - anything containing a CSS declaration block is used verbatim.
//   - everything else is treated as a style name for the asset loader, so
//     custom asset directories can supply named styles.
func (c *Converter) resolveStylesheet(entry string) (string, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return "", nil
	}

	if fileutil.IsURL(entry) {
		return "", fmt.Errorf("%w: %q", ErrRemoteStylesheet, entry)
	}

	if fileutil.IsFilePath(entry) || strings.HasSuffix(entry, ".css") {
		content, err := os.ReadFile(entry)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrReadStylesheet, entry, err)
		}
		return string(content), nil
	}

	if fileutil.IsCSS(entry) {
		return entry, nil
	}

	css, err := c.loader.LoadStyle(entry)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrReadStylesheet, entry, err)
	}
	return css, nil
}

// wrapStyleBlocks wraps each CSS block in its own <style> element. Separate
// elements keep one malformed block from eating the rules that follow it.
func wrapStyleBlocks(blocks []string) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("<style>\n")
		b.WriteString(block)
		if !strings.HasSuffix(block, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("</style>")
	}
	return b.String()
}
