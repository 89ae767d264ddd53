package pipeline

// Notes:
// - Tests RewriteImagePaths through its public API only
// - Coverage gaps on the parse and render error branches are acceptable:
//   well-formed input never drives the html package into them
// - The pass-through policy (schemes, protocol-relative, anchors, absolute
//   paths, unparseable refs) is contract, so every branch has a case here
// - Exact file:// expectations are unix-only; windows runs assert the prefix

import (
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRewriteImagePaths - rewrite and pass-through policy
// ---------------------------------------------------------------------------

func TestRewriteImagePaths(t *testing.T) {
	t.Parallel()

	// Platform-appropriate absolute base so filepath.Join stays absolute.
	baseDir := "/docs"
	if runtime.GOOS == "windows" {
		baseDir = `C:\docs`
	}

	tests := []struct {
		name         string
		html         string
		baseDir      string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "relative path with leading dot",
			html:         `<img src="./figures/chart.png">`,
			baseDir:      baseDir,
			wantContains: []string{`src="file://`, "figures/chart.png"},
		},
		{
			name:         "bare relative path",
			html:         `<img src="img/banner.jpg">`,
			baseDir:      baseDir,
			wantContains: []string{`src="file://`, "img/banner.jpg"},
		},
		{
			name:         "parent directory reference resolves",
			html:         `<img src="../shared/icon.svg">`,
			baseDir:      baseDir,
			wantContains: []string{`src="file://`, "shared/icon.svg"},
			wantExcludes: []string{".."},
		},
		{
			name:         "absolute path passes through",
			html:         `<img src="/srv/static/hero.png">`,
			baseDir:      baseDir,
			wantContains: []string{`src="/srv/static/hero.png"`},
		},
		{
			name:         "https URL passes through",
			html:         `<img src="https://assets.example.org/hero.png">`,
			baseDir:      baseDir,
			wantContains: []string{`src="https://assets.example.org/hero.png"`},
		},
		{
			name:         "http URL passes through",
			html:         `<img src="http://mirror.example.net/badge.gif">`,
			baseDir:      baseDir,
			wantContains: []string{`src="http://mirror.example.net/badge.gif"`},
		},
		{
			name:         "data URI passes through",
			html:         `<img src="data:image/gif;base64,R0lGODlhAQ==">`,
			baseDir:      baseDir,
			wantContains: []string{`src="data:image/gif;base64,R0lGODlhAQ=="`},
		},
		{
			name:         "file URL passes through",
			html:         `<img src="file:///opt/share/diagram.png">`,
			baseDir:      baseDir,
			wantContains: []string{`src="file:///opt/share/diagram.png"`},
		},
		{
			name:         "protocol-relative URL passes through",
			html:         `<img src="//static.example.com/badge.svg">`,
			baseDir:      baseDir,
			wantContains: []string{`src="//static.example.com/badge.svg"`},
		},
		{
			name:         "fragment reference passes through",
			html:         `<img src="#diagram-2">`,
			baseDir:      baseDir,
			wantContains: []string{`src="#diagram-2"`},
		},
		{
			name:         "unparseable src left unqualified",
			html:         `<img src="://bad">`,
			baseDir:      baseDir,
			wantContains: []string{`src="://bad"`},
		},
		{
			name:         "invalid escape left unqualified",
			html:         `<img src="%zz.png">`,
			baseDir:      baseDir,
			wantContains: []string{`src="%zz.png"`},
		},
		{
			name:         "empty src passes through",
			html:         `<img src="">`,
			baseDir:      baseDir,
			wantContains: []string{`src=""`},
		},
		{
			name:         "empty baseDir returns input unchanged",
			html:         `<img src="./chart.png">`,
			baseDir:      "",
			wantContains: []string{`src="./chart.png"`},
			wantExcludes: []string{"file://"},
		},
		{
			name:         "anchor href never touched",
			html:         `<a href="./appendix.md">appendix</a>`,
			baseDir:      baseDir,
			wantContains: []string{`href="./appendix.md"`},
			wantExcludes: []string{"file://"},
		},
		{
			name:         "mixed sources rewritten independently",
			html:         `<p><img src="local.png"> and <img src="https://assets.example.org/remote.png"></p>`,
			baseDir:      baseDir,
			wantContains: []string{`src="file://`, `src="https://assets.example.org/remote.png"`},
		},
		{
			name:         "image nested inside list markup",
			html:         `<ul><li>item <img src="deep/nested.png"></li></ul>`,
			baseDir:      baseDir,
			wantContains: []string{"<ul>", "<li>", `src="file://`},
		},
		{
			name:         "space in filename percent encoded",
			html:         `<img src="release notes.png">`,
			baseDir:      baseDir,
			wantContains: []string{"release%20notes.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteImagePaths(tt.html, tt.baseDir)
			if err != nil {
				t.Fatalf("RewriteImagePaths() error = %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("RewriteImagePaths() missing %q in:\n%s", want, got)
				}
			}
			for _, excl := range tt.wantExcludes {
				if strings.Contains(got, excl) {
					t.Errorf("RewriteImagePaths() should not contain %q in:\n%s", excl, got)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRewriteImagePaths - exact resolution (unix paths)
// ---------------------------------------------------------------------------

func TestRewriteImagePathsExactURI(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("unix path expectations")
	}

	got, err := RewriteImagePaths(`<img src="./a.png">`, "/docs")
	if err != nil {
		t.Fatalf("RewriteImagePaths() error = %v", err)
	}

	want := `<img src="file:///docs/a.png"/>`
	if got != want {
		t.Errorf("RewriteImagePaths() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestRewriteImagePaths - lossless pass-through
// ---------------------------------------------------------------------------

func TestRewriteImagePathsNoImagesIsNoOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
	}{
		{
			name: "plain paragraph",
			html: "<p>no images here</p>",
		},
		{
			name: "headings and code",
			html: `<h1 id="t">T</h1><pre class="chroma"><code>x := 1</code></pre>`,
		},
		{
			name: "links and emphasis",
			html: `<p><a href="./rel.md">rel</a> and <em>emph</em></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteImagePaths(tt.html, "/docs")
			if err != nil {
				t.Fatalf("RewriteImagePaths() error = %v", err)
			}
			if got != tt.html {
				t.Errorf("no-op expected:\n got: %s\nwant: %s", got, tt.html)
			}
		})
	}
}

func TestRewriteImagePathsPreservesSurroundingMarkup(t *testing.T) {
	t.Parallel()

	in := `<h2 id="pics">Pics</h2><p>before <img src="https://example.com/x.png" alt="x"> after</p><blockquote><p>quoted</p></blockquote>`

	got, err := RewriteImagePaths(in, "/docs")
	if err != nil {
		t.Fatalf("RewriteImagePaths() error = %v", err)
	}

	for _, want := range []string{`<h2 id="pics">Pics</h2>`, "before ", " after", "<blockquote><p>quoted</p></blockquote>", `alt="x"`} {
		if !strings.Contains(got, want) {
			t.Errorf("surrounding markup lost: missing %q in:\n%s", want, got)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRewriteImagePaths - full documents
// ---------------------------------------------------------------------------

func TestRewriteImagePathsFullDocument(t *testing.T) {
	t.Parallel()

	in := `<!DOCTYPE html>
<html>
<head><title>T</title></head>
<body><img src="pic.png"></body>
</html>`

	got, err := RewriteImagePaths(in, "/docs")
	if err != nil {
		t.Fatalf("RewriteImagePaths() error = %v", err)
	}

	if !strings.Contains(got, `src="file://`) {
		t.Errorf("image in full document not rewritten:\n%s", got)
	}
	if !strings.Contains(got, "<title>T</title>") {
		t.Errorf("document head lost:\n%s", got)
	}
}

func TestRewriteImagePathsIdempotent(t *testing.T) {
	t.Parallel()

	once, err := RewriteImagePaths(`<p><img src="a.png"> text</p>`, "/docs")
	if err != nil {
		t.Fatalf("first pass error = %v", err)
	}

	twice, err := RewriteImagePaths(once, "/docs")
	if err != nil {
		t.Fatalf("second pass error = %v", err)
	}

	if once != twice {
		t.Errorf("second pass changed output:\n once: %s\ntwice: %s", once, twice)
	}
}
