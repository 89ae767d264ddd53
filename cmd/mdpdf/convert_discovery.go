package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	mdpdf "github.com/nvell/mdpdf"
)

// Input discovery failures.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrBatchSingleOutput  = errors.New("multiple inputs cannot share a single .pdf output")
)

// FileToConvert pairs a markdown source with its PDF destination.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands the input arguments into the files to convert.
// Each argument is a markdown file, a directory (walked recursively), or a
// glob pattern with ** support. Duplicates reached through multiple
// arguments are converted once. A .pdf output path is only valid when
// discovery yields exactly one file.
func discoverFiles(inputs []string, outputDir string) ([]FileToConvert, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	var files []FileToConvert
	seen := make(map[string]bool)

	add := func(inputPath, baseDir string) {
		if seen[inputPath] {
			return
		}
		seen[inputPath] = true
		files = append(files, FileToConvert{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, baseDir),
		})
	}

	for _, input := range inputs {
		if hasGlobMeta(input) {
			matches, err := doublestar.FilepathGlob(input)
			if err != nil {
				return nil, fmt.Errorf("invalid glob %q: %w", input, err)
			}
			for _, match := range matches {
				if isMarkdownFile(match) {
					add(match, globBase(input))
				}
			}
			continue
		}

		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := validateMarkdownExtension(input); err != nil {
				return nil, err
			}
			add(input, "")
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() {
				return nil
			}
			if isMarkdownFile(path) {
				add(path, input)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(files) > 1 && strings.HasSuffix(outputDir, ".pdf") {
		return nil, fmt.Errorf("%w: %d files matched, output is %q", ErrBatchSingleOutput, len(files), outputDir)
	}

	return files, nil
}

// resolveOutputPath picks the PDF destination for one markdown source.
// No output directory puts the PDF next to its source; an output ending in
// .pdf names the destination exactly; otherwise the source's position under
// its discovery root is mirrored below outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	pdfName := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".pdf"

	switch {
	case outputDir == "":
		return filepath.Join(filepath.Dir(inputPath), pdfName)
	case strings.HasSuffix(outputDir, ".pdf"):
		return outputDir
	}

	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(rel), pdfName)
		}
	}
	return filepath.Join(outputDir, pdfName)
}

// hasGlobMeta reports whether the path contains glob metacharacters.
func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// globBase returns the literal directory prefix of a glob pattern, used as
// the discovery root for relative output paths. "docs/**/*.md" yields "docs".
func globBase(pattern string) string {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if base == "." {
		return ""
	}
	return filepath.FromSlash(base)
}

// isMarkdownFile reports whether the path has a markdown extension.
func isMarkdownFile(path string) bool {
	switch filepath.Ext(path) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// validateMarkdownExtension rejects explicit inputs that are not markdown.
// Directory walks and globs filter silently instead.
func validateMarkdownExtension(path string) error {
	if !isMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers bounds the worker count. Zero delegates sizing to the pool.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d is negative (0 selects auto)", ErrInvalidWorkerCount, n)
	}
	if n > mdpdf.MaxPoolSize {
		return fmt.Errorf("%w: %d exceeds the maximum of %d", ErrInvalidWorkerCount, n, mdpdf.MaxPoolSize)
	}
	return nil
}

// htmlOutputPath swaps a .pdf destination for the matching .html one.
func htmlOutputPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, ".pdf") + ".html"
}
