package mdpdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/nvell/mdpdf/internal/fileutil"
	"github.com/nvell/mdpdf/internal/process"
)

// renderer abstracts PDF rendering to enable testing the pipeline without a
// browser.
type renderer interface {
	Render(ctx context.Context, job *pdfJob) error
}

// pdfJob carries one render: the composed documents, the destination path,
// and the page layout. Created per Convert call and discarded after.
type pdfJob struct {
	doc         *Document
	destination string
	layout      PDFOptions
}

// networkIdleWindow is how long the network must stay near-idle after page
// load before printing. Covers images and webfonts that start loading late.
const networkIdleWindow = 500 * time.Millisecond

// rodRenderer renders via headless Chrome using go-rod. Each job launches
// its own browser and closes it before returning, so concurrent jobs never
// share engine state. Rod automatically downloads Chromium on first run if
// not found.
type rodRenderer struct {
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given per-job timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// Render stages the body HTML next to the destination, prints it through
// the engine, and writes the PDF. The staged file is removed on success and
// on failure.
func (r *rodRenderer) Render(ctx context.Context, job *pdfJob) error {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return err
	}

	// Build print parameters first so layout problems surface before any
	// file or engine work.
	params, err := buildPrintParams(job.doc, job.layout)
	if err != nil {
		return err
	}

	tempPath, err := filepath.Abs(fileutil.TempHTMLPath(job.destination))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTempHTML, err)
	}
	if err := os.WriteFile(tempPath, []byte(job.doc.Body), 0o600); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteTempHTML, tempPath, err)
	}
	defer os.Remove(tempPath)

	return r.printFile(ctx, tempPath, job.destination, params)
}

// printFile opens the staged HTML file in a freshly launched headless
// Chrome and prints it to the destination.
func (r *rodRenderer) printFile(ctx context.Context, tempPath, destination string, params *proto.PagePrintToPDF) error {
	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		killEngine(l)
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	defer shutdownEngine(browser, l)

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Honor whichever is nearer: the configured timeout or the context
	// deadline.
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return context.DeadlineExceeded
		}
		if remaining < timeout {
			timeout = remaining
		}
	}
	page = page.Timeout(timeout)

	// Arm the idle watcher before navigating so requests fired during load
	// are counted.
	wait := page.WaitRequestIdle(networkIdleWindow, nil, nil, nil)
	if err := page.Navigate(fileutil.FileURL(tempPath)); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	wait()

	reader, err := page.PDF(params)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(destination, pdfBuf, 0o644); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWritePDF, destination, err)
	}
	return nil
}

// shutdownEngine closes the browser, falling back to a hard kill when the
// graceful close fails (connection already gone, context cancelled).
func shutdownEngine(browser *rod.Browser, l *launcher.Launcher) {
	if err := browser.Close(); err != nil {
		killEngine(l)
	}
}

// killEngine force-kills the launched browser process tree so no orphaned
// Chrome survives the conversion.
func killEngine(l *launcher.Launcher) {
	if pid := l.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	l.Kill()
}

// buildPrintParams maps the page layout onto engine print parameters. Sizes
// arrive as CSS length strings and leave as inches, which is what the
// protocol speaks. Header/footer display is requested only when at least
// one chrome document exists.
func buildPrintParams(doc *Document, layout PDFOptions) (*proto.PagePrintToPDF, error) {
	width, height, err := formatSize(layout.Format, layout.Orientation)
	if err != nil {
		return nil, err
	}

	edges := []string{layout.Border.Top, layout.Border.Right, layout.Border.Bottom, layout.Border.Left}
	var margins [4]float64
	for i, edge := range edges {
		if edge == "" {
			edge = DefaultBorder
		}
		margins[i], err = parseCSSSize(edge)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMargin, edge)
		}
	}

	params := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margins[0]),
		MarginRight:     floatPtr(margins[1]),
		MarginBottom:    floatPtr(margins[2]),
		MarginLeft:      floatPtr(margins[3]),
		PrintBackground: true,
	}

	if doc.Header != "" || doc.Footer != "" {
		params.DisplayHeaderFooter = true
		params.HeaderTemplate = orEmptyChrome(doc.Header)
		params.FooterTemplate = orEmptyChrome(doc.Footer)
	}

	return params, nil
}

// orEmptyChrome substitutes an explicit empty template for absent chrome so
// the engine never falls back to its built-in header/footer text.
func orEmptyChrome(chrome string) string {
	if chrome == "" {
		return "<span></span>"
	}
	return chrome
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
