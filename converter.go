package mdpdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvell/mdpdf/internal/assets"
	"github.com/nvell/mdpdf/internal/pipeline"
)

// Interface conformance pins. A drifted signature fails the build here
// instead of at the first call site.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ assets.AssetLoader     = (*assets.AssetResolver)(nil)
	_ renderer               = (*rodRenderer)(nil)
)

// Converter turns Markdown files into PDFs.
// Create with NewConverter, call Convert per document. A Converter is safe
// for sequential reuse; for concurrent batches use a ConverterPool.
type Converter struct {
	cfg      converterConfig
	loader   assets.AssetLoader
	composer *pipeline.Composer
	renderer renderer
}

// NewConverter builds a Converter from the defaults plus any options
// (WithTimeout, WithAssetDir, and friends). It fails when the asset source
// cannot be opened or a bundled template does not parse.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:    converterConfig{timeout: defaultTimeout},
		loader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetDir: custom directory with embedded fallback.
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.loader = resolver
	}

	docTmpl, err := c.loader.LoadTemplate(assets.TemplateDocument)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	chromeTmpl, err := c.loader.LoadTemplate(assets.TemplateChrome)
	if err != nil {
		return nil, fmt.Errorf("loading chrome template: %w", err)
	}
	c.composer, err = pipeline.NewComposer(docTmpl, chromeTmpl)
	if err != nil {
		return nil, err
	}

	// Create the render engine if not injected (e.g., by tests).
	if c.renderer == nil {
		c.renderer = newRodRenderer(c.cfg.timeout)
	}

	return c, nil
}

// Document holds the composed HTML for one conversion: the complete page
// document plus the optional header and footer chrome documents. Header and
// Footer are empty when the request configured none.
type Document struct {
	Body   string
	Header string
	Footer string
}

// Convert runs the full pipeline: compose the HTML documents, then render
// them to a PDF at req.Destination. Returns the destination path on success.
// The context cancels in-flight work at the next stage boundary; cleanup
// still runs. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (c *Converter) Convert(ctx context.Context, req Request) (dest string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	doc, err := c.Compose(ctx, req)
	if err != nil {
		return "", err
	}

	// Persist the composed body before rendering so it survives engine
	// failures. Rendering proceeds normally afterwards.
	if req.DebugHTML != "" {
		// #nosec G306 -- debug HTML is meant to be readable
		if werr := os.WriteFile(req.DebugHTML, []byte(doc.Body), 0o644); werr != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrWriteDebugHTML, req.DebugHTML, werr)
		}
	}

	job := &pdfJob{
		doc:         doc,
		destination: req.Destination,
		layout:      req.PDF,
	}
	if err := c.renderer.Render(ctx, job); err != nil {
		return "", err
	}

	return req.Destination, nil
}

// Compose runs the pipeline up to (not including) rendering and returns the
// composed HTML documents. This is the surface behind debug tooling and
// HTML-only conversion.
func (c *Converter) Compose(ctx context.Context, req Request) (*Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	srcPath, err := filepath.Abs(req.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadSource, req.Source, err)
	}
	// Relative asset references in the body, header, and footer all resolve
	// against the source file's directory.
	baseDir := filepath.Dir(srcPath)

	mdContent, err := os.ReadFile(srcPath) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadSource, req.Source, err)
	}

	conv := pipeline.NewGoldmarkConverter(pipeline.MarkdownOptions{Emoji: req.ConvertEmoji})
	body, err := conv.ToHTML(ctx, string(mdContent))
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	body, err = pipeline.RewriteImagePaths(body, baseDir)
	if err != nil {
		return nil, fmt.Errorf("rewriting image paths: %w", err)
	}

	styles, err := c.composeStyles(req)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc := &Document{}
	doc.Body, err = c.composer.ComposeDocument(styles, body)
	if err != nil {
		return nil, err
	}

	doc.Header, err = c.composeChrome(req.Header, pipeline.ChromeHeaderClass, styles, baseDir, req.PDF.HeaderHeight, ErrReadHeader)
	if err != nil {
		return nil, err
	}
	doc.Footer, err = c.composeChrome(req.Footer, pipeline.ChromeFooterClass, styles, baseDir, req.PDF.FooterHeight, ErrReadFooter)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// composeChrome builds one header or footer chrome document from an HTML
// fragment file. An empty path means the chrome is absent and yields "".
func (c *Converter) composeChrome(path, class, styles, baseDir, height string, readErr error) (string, error) {
	if path == "" {
		return "", nil
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", readErr, path, err)
	}

	fragment, err := pipeline.RewriteImagePaths(string(content), baseDir)
	if err != nil {
		return "", fmt.Errorf("rewriting image paths: %w", err)
	}

	return c.composer.ComposeChrome(class, styles, fragment, height)
}

// Convert converts a single Markdown file with a throwaway default
// Converter. Library users doing repeated conversions should construct a
// Converter once and reuse it.
func Convert(ctx context.Context, req Request) (string, error) {
	c, err := NewConverter()
	if err != nil {
		return "", err
	}
	return c.Convert(ctx, req)
}
