package assets

import (
	"embed"
	"fmt"
	"strings"
)

// Assets compiled into the binary: stylesheets under styles/, layout
// templates under templates/.
//
//go:embed styles templates
var bundled embed.FS

// Names of the assets shipped with the binary.
const (
	// StyleGithub is the GitHub-flavored Markdown stylesheet.
	StyleGithub = "github"

	// StyleDefault carries print typography and page margin rules.
	StyleDefault = "default"

	// TemplateDocument is the layout for the document body.
	TemplateDocument = "document"

	// TemplateChrome is the layout for per-page header and footer bands.
	TemplateChrome = "chrome"
)

// EmbeddedLoader serves styles and templates from the compiled-in bundle.
type EmbeddedLoader struct{}

// NewEmbeddedLoader returns a loader backed by the bundled assets.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

var _ AssetLoader = (*EmbeddedLoader)(nil)

// LoadStyle returns the bundled stylesheet for name. The name carries no
// .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return readBundled(name, "styles", ".css", ErrStyleNotFound)
}

// LoadTemplate returns the bundled layout template for name. The name
// carries no .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readBundled(name, "templates", ".html", ErrTemplateNotFound)
}

func readBundled(name, dir, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := bundled.ReadFile(dir + "/" + name + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}
	return string(content), nil
}

// BundledStyles lists the stylesheet names shipped in the binary, sorted by
// name. Entries carry no extension, matching what LoadStyle expects.
func BundledStyles() []string {
	entries, err := bundled.ReadDir("styles")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".css"))
	}
	return names
}
