package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nvell/mdpdf/internal/fileutil"
)

// RewriteImagePaths rewrites relative img[src] references to absolute
// file:// URLs resolved against baseDir, so the render engine can load them
// without further path resolution. If baseDir is empty, returns the HTML
// unchanged.
//
// Pass-through policy (each covered by tests):
//   - any reference that parses to a URI with a scheme (http, https, file,
//     data, ...) is considered qualified and left byte-identical
//   - protocol-relative (//host/...) and fragment-only (#anchor) references
//     are left unchanged
//   - absolute filesystem paths are left unchanged
//   - unparseable references are left unchanged, so a single malformed src
//     fails one image rather than the whole document
//
// Only img elements are touched. Serialization is lossless for everything
// except rewritten src values: no reordering or stripping of other markup.
func RewriteImagePaths(htmlContent, baseDir string) (string, error) {
	if baseDir == "" {
		return htmlContent, nil
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	root, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}
	rewriteImages(root, absBase)

	var buf strings.Builder
	if err := html.Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// parseHTML returns a node whose rendering reproduces content: the document
// node itself for full documents, or a synthetic document node holding the
// fragment's top-level nodes. The html package renders a document node as
// its children, so either form serializes back without a wrapper being
// added.
func parseHTML(content string) (*html.Node, error) {
	if isFullDocument(content) {
		return html.Parse(strings.NewReader(content))
	}

	bodyCtx := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyCtx)
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// isFullDocument reports whether the content carries its own document
// envelope. Anything else is parsed as a body fragment.
func isFullDocument(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

// rewriteImages walks the tree and qualifies every relative img src.
func rewriteImages(n *html.Node, baseDir string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		for i, attr := range n.Attr {
			if attr.Key == "src" && needsRewrite(attr.Val) {
				n.Attr[i].Val = fileutil.FileURL(filepath.Join(baseDir, attr.Val))
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteImages(c, baseDir)
	}
}

// needsRewrite reports whether the reference is a relative filesystem path
// that must be qualified against the base directory.
func needsRewrite(ref string) bool {
	if ref == "" {
		return false
	}

	// Fragment-only references and protocol-relative URLs stay as-is.
	if strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}

	// Absolute filesystem paths are already loadable. Checked before URI
	// parsing so Windows drive letters aren't mistaken for schemes.
	if filepath.IsAbs(ref) {
		return false
	}

	u, err := url.Parse(ref)
	if err != nil {
		// Unparseable: leave unqualified rather than fail the document.
		return false
	}

	// Any scheme (http, https, file, data, cid, ...) means qualified.
	return u.Scheme == ""
}
