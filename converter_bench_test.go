//go:build bench

package mdpdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// benchConverter creates a Converter for benchmarking. Compose never touches
// the render engine, so no browser is involved.
func benchConverter(b *testing.B) *Converter {
	b.Helper()

	c, err := NewConverter()
	if err != nil {
		b.Fatal(err)
	}
	return c
}

// writeBenchFile writes content to dir/name and returns the full path.
func writeBenchFile(b *testing.B, dir, name, content string) string {
	b.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		b.Fatal(err)
	}
	return path
}

// BenchmarkCompose benchmarks the full composition pipeline: read, convert,
// style, and bind into the layout templates.
func BenchmarkCompose(b *testing.B) {
	converter := benchConverter(b)
	ctx := context.Background()
	dir := b.TempDir()

	minimal := writeBenchFile(b, dir, "minimal.md", "# Hello\n\nWorld")
	sections := writeBenchFile(b, dir, "sections.md", generateBenchmarkMarkdown(10))
	emojiDoc := writeBenchFile(b, dir, "emoji.md", "# Status :rocket:\n\nShipping :tada: today.")
	header := writeBenchFile(b, dir, "header.html", `<div style="text-align:center">Report</div>`)
	footer := writeBenchFile(b, dir, "footer.html",
		`<div><span class="pageNumber"></span>/<span class="totalPages"></span></div>`)
	dest := filepath.Join(dir, "out.pdf")

	requests := []struct {
		name string
		req  Request
	}{
		{
			name: "minimal",
			req:  Request{Source: minimal, Destination: dest},
		},
		{
			name: "bundled_styles",
			req: Request{
				Source:       sections,
				Destination:  dest,
				GithubStyle:  true,
				DefaultStyle: true,
			},
		},
		{
			name: "inline_stylesheet",
			req: Request{
				Source:      sections,
				Destination: dest,
				Stylesheets: []string{strings.Repeat("p { color: #333; }\n", 50)},
			},
		},
		{
			name: "emoji",
			req: Request{
				Source:       emojiDoc,
				Destination:  dest,
				ConvertEmoji: true,
			},
		},
		{
			name: "header_footer",
			req: Request{
				Source:      sections,
				Destination: dest,
				Header:      header,
				Footer:      footer,
				PDF:         PDFOptions{HeaderHeight: "30mm", FooterHeight: "20mm"},
			},
		},
		{
			name: "full_features",
			req: Request{
				Source:       sections,
				Destination:  dest,
				Header:       header,
				Footer:       footer,
				Stylesheets:  []string{strings.Repeat("p { color: #333; }\n", 20)},
				GithubStyle:  true,
				DefaultStyle: true,
				ConvertEmoji: true,
				PDF: PDFOptions{
					Format:      "a4",
					Orientation: "portrait",
					Border: Margins{
						Top:    "20mm",
						Right:  "20mm",
						Bottom: "20mm",
						Left:   "20mm",
					},
					HeaderHeight: "30mm",
					FooterHeight: "20mm",
				},
			},
		},
	}

	for _, bench := range requests {
		b.Run(bench.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				doc, err := converter.Compose(ctx, bench.req)
				if err != nil {
					b.Fatal(err)
				}
				_ = doc
			}
		})
	}
}

// BenchmarkComposeBySize benchmarks composition scaling with document size.
func BenchmarkComposeBySize(b *testing.B) {
	converter := benchConverter(b)
	ctx := context.Background()
	dir := b.TempDir()
	sizes := []int{5, 10, 25, 50, 100}

	for _, size := range sizes {
		source := writeBenchFile(b, dir, fmt.Sprintf("doc_%d.md", size), generateBenchmarkMarkdown(size))
		req := Request{
			Source:       source,
			Destination:  filepath.Join(dir, "out.pdf"),
			GithubStyle:  true,
			DefaultStyle: true,
		}

		b.Run(fmt.Sprintf("sections_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				doc, err := converter.Compose(ctx, req)
				if err != nil {
					b.Fatal(err)
				}
				_ = doc
			}
		})
	}
}

// BenchmarkComposeParallel benchmarks concurrent composition on one Converter.
func BenchmarkComposeParallel(b *testing.B) {
	converter := benchConverter(b)
	ctx := context.Background()
	dir := b.TempDir()

	source := writeBenchFile(b, dir, "doc.md", generateBenchmarkMarkdown(20))
	req := Request{
		Source:       source,
		Destination:  filepath.Join(dir, "out.pdf"),
		GithubStyle:  true,
		DefaultStyle: true,
		ConvertEmoji: true,
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			doc, err := converter.Compose(ctx, req)
			if err != nil {
				b.Fatal(err)
			}
			_ = doc
		}
	})
}

// BenchmarkRequestValidate benchmarks request validation.
func BenchmarkRequestValidate(b *testing.B) {
	requests := []struct {
		name string
		req  Request
	}{
		{"minimal", Request{Source: "in.md", Destination: "out.pdf"}},
		{"with_geometry", Request{
			Source:      "in.md",
			Destination: "out.pdf",
			PDF:         PDFOptions{Format: "letter", Orientation: "landscape"},
		}},
		{"with_borders", Request{
			Source:      "in.md",
			Destination: "out.pdf",
			PDF: PDFOptions{
				Border: Margins{Top: "20mm", Right: "15mm", Bottom: "20mm", Left: "15mm"},
			},
		}},
		{"full", DefaultRequest("in.md", "out.pdf")},
	}

	for _, bench := range requests {
		b.Run(bench.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				err := bench.req.Validate()
				_ = err
			}
		})
	}
}

// BenchmarkResolveStylesheet benchmarks stylesheet entry classification.
func BenchmarkResolveStylesheet(b *testing.B) {
	converter := benchConverter(b)
	dir := b.TempDir()
	cssFile := writeBenchFile(b, dir, "custom.css", "body { margin: 0; }\n")

	entries := []struct {
		name  string
		entry string
	}{
		{"inline_css", "h1 { color: #333; }"},
		{"bundled_name", "github"},
		{"file_path", cssFile},
	}

	for _, bench := range entries {
		b.Run(bench.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				css, err := converter.resolveStylesheet(bench.entry)
				if err != nil {
					b.Fatal(err)
				}
				_ = css
			}
		})
	}
}

// generateBenchmarkMarkdown builds a document mixing the constructs the
// converter handles: headings, lists, links, code blocks, and tables.
func generateBenchmarkMarkdown(sections int) string {
	var sb strings.Builder
	sb.WriteString("# Operations Handbook\n\n")
	sb.WriteString("Procedures below are **mandatory**; deviations need *written* signoff.\n\n")

	for i := 0; i < sections; i++ {
		depth := i%3 + 2
		sb.WriteString(strings.Repeat("#", depth))
		fmt.Fprintf(&sb, " Procedure %c\n\n", 'A'+rune(i%26))
		sb.WriteString("Run the checklist before every deploy. ")
		sb.WriteString("The [runbook](https://wiki.example.org/deploy) covers rollback via `ctl undo`.\n\n")

		sb.WriteString("1. freeze the queue\n")
		sb.WriteString("2. snapshot the state\n")
		sb.WriteString("3. ship the build\n\n")

		if i%3 == 0 {
			sb.WriteString("```sh\nctl deploy --stage prod --wait\n```\n\n")
		}
		if i%5 == 0 {
			sb.WriteString("| stage | owner |\n|-------|-------|\n| prod  | ops   |\n\n")
		}
	}

	return sb.String()
}
