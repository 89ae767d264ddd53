package pipeline

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Sentinel errors for template composition.
var (
	ErrTemplateParse  = errors.New("layout template parse failed")
	ErrTemplateRender = errors.New("layout template rendering failed")
)

// Chrome wrapper classes for per-page header and footer markup.
const (
	ChromeHeaderClass = "mdpdf-header"
	ChromeFooterClass = "mdpdf-footer"
)

// Composer binds style blocks and content fragments into complete HTML
// documents using the bundled layout templates. Fragments and style blocks
// are bound as raw markup: the output renders the actual tags, never their
// escaped text representation.
//
// Templates are parsed once at construction and never mutated, so a single
// Composer is safe for concurrent use.
type Composer struct {
	document *template.Template
	chrome   *template.Template
}

// NewComposer parses the document and chrome layout templates.
// documentHTML lays out the body document; chromeHTML wraps per-page
// header/footer fragments for the render engine.
func NewComposer(documentHTML, chromeHTML string) (*Composer, error) {
	doc, err := template.New("document").Parse(documentHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: document: %v", ErrTemplateParse, err)
	}

	chrome, err := template.New("chrome").Parse(chromeHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: chrome: %v", ErrTemplateParse, err)
	}

	return &Composer{document: doc, chrome: chrome}, nil
}

// documentData binds raw markup into the document layout template.
type documentData struct {
	Styles template.HTML // composed <style> blocks, inserted verbatim
	Body   template.HTML // resolved content fragment, inserted verbatim
}

// ComposeDocument produces the complete body document from the composed
// style blocks and the resolved body fragment.
func (c *Composer) ComposeDocument(styles, body string) (string, error) {
	var sb strings.Builder
	data := documentData{
		Styles: template.HTML(styles), // #nosec G203 -- composed upstream, intentionally raw
		Body:   template.HTML(body),   // #nosec G203 -- resolved upstream, intentionally raw
	}
	if err := c.document.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: document: %v", ErrTemplateRender, err)
	}
	return sb.String(), nil
}

// chromeData binds raw markup into the chrome layout template.
type chromeData struct {
	Class   string        // wrapper class (header or footer)
	Height  template.CSS  // optional fixed height, e.g. "45mm"
	Styles  template.HTML // composed <style> blocks, inserted verbatim
	Content template.HTML // resolved fragment, inserted verbatim
}

// ComposeChrome produces the per-page header or footer document the render
// engine stamps onto every page. class selects the wrapper (use
// ChromeHeaderClass or ChromeFooterClass); height is an optional CSS size
// ("" for natural height).
func (c *Composer) ComposeChrome(class, styles, content, height string) (string, error) {
	var sb strings.Builder
	data := chromeData{
		Class:   class,
		Height:  template.CSS(height),   // #nosec G203 -- validated size string
		Styles:  template.HTML(styles),  // #nosec G203 -- composed upstream, intentionally raw
		Content: template.HTML(content), // #nosec G203 -- resolved upstream, intentionally raw
	}
	if err := c.chrome.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: chrome: %v", ErrTemplateRender, err)
	}
	return sb.String(), nil
}
