// Package mdpdf converts Markdown files to paginated PDF using headless
// Chrome.
//
// # Basic Usage
//
// Create a converter and convert a file:
//
//	conv, err := mdpdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dest, err := conv.Convert(ctx, mdpdf.DefaultRequest("notes.md", "notes.pdf"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", dest)
//
// DefaultRequest enables GitHub styling, the default typography stylesheet,
// and emoji conversion. Build a Request by hand for full control. For a
// one-shot conversion the package-level Convert constructs a throwaway
// default converter.
//
// # Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown to HTML conversion via Goldmark (GFM, footnotes, syntax
//     highlighting, optional emoji)
//  2. Relative image paths resolved against the source directory and
//     rewritten as file:// URIs
//  3. Stylesheet composition (GitHub base, highlight CSS, default
//     typography, user stylesheets last)
//  4. Layout templating into complete HTML documents (body plus optional
//     header and footer chrome)
//  5. PDF rendering via headless Chrome (go-rod)
//
// Compose runs stages 1-4 and returns the HTML documents without rendering.
//
// # Options
//
// Use functional options to customize the converter:
//
//	conv, err := mdpdf.NewConverter(
//	    mdpdf.WithTimeout(2 * time.Minute),
//	    mdpdf.WithAssetDir("/path/to/custom/assets"),
//	)
//
// Per-conversion options are passed via Request:
//
//	dest, err := conv.Convert(ctx, mdpdf.Request{
//	    Source:      "report.md",
//	    Destination: "report.pdf",
//	    Header:      "header.html",
//	    Stylesheets: []string{"brand.css"},
//	    GithubStyle: true,
//	    PDF: mdpdf.PDFOptions{
//	        Format:       "letter",
//	        Orientation:  mdpdf.OrientationLandscape,
//	        Border:       mdpdf.Margins{Top: "30mm"},
//	        HeaderHeight: "25mm",
//	    },
//	})
//
// # Batch Conversion
//
// For batch conversion, use ConverterPool to bound concurrent browser
// launches:
//
//	pool := mdpdf.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Release(conv)
//	dest, err := conv.Convert(ctx, req)
//
// # Asset Overrides
//
// Point the converter at a directory of overrides with WithAssetDir. Assets
// missing from the directory fall back to the bundled ones.
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   ├── github.css
//	│   └── brand.css
//	└── templates/
//	    ├── document.html
//	    └── chrome.html
//
// # Chrome
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Each conversion launches its own browser and closes it before returning.
//
// For containers and CI environments, use ROD_BROWSER_BIN to point at a
// pre-installed Chrome binary; the sandbox is disabled automatically when
// ROD_BROWSER_BIN or CI=true is set.
package mdpdf
