package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	mdpdf "github.com/nvell/mdpdf"
)

// Permissions for created output directories and files. Rendered HTML and
// PDF stay world-readable.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// Failure classes the exit-code mapping tells apart.
var (
	ErrConverterInit   = errors.New("failed to initialize converter")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrWriteHTML       = errors.New("failed to write HTML file")
)

// converterClient is the surface of mdpdf.Converter the CLI uses.
type converterClient interface {
	Convert(ctx context.Context, req mdpdf.Request) (string, error)
	Compose(ctx context.Context, req mdpdf.Request) (*mdpdf.Document, error)
}

var _ converterClient = (*mdpdf.Converter)(nil)

// converterPool abstracts pool operations so batch tests can run without
// launching browsers.
type converterPool interface {
	Acquire() (converterClient, error)
	Release(converterClient)
	Size() int
	Close() error
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch fans files out over the converter pool. Results are indexed
// like files. A worker that cannot acquire a converter fails its share of
// the jobs instead of blocking the batch.
func convertBatch(ctx context.Context, pool converterPool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	// The jobs channel holds every index up front, so workers can start in
	// any order and drain whatever is left.
	jobs := make(chan int, len(files))
	for j := range files {
		jobs <- j
	}
	close(jobs)

	results := make([]ConversionResult, len(files))
	workers := min(pool.Size(), len(files))

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			conv, err := pool.Acquire()
			if err != nil {
				err = fmt.Errorf("%w: %v", ErrConverterInit, err)
				for i := range jobs {
					results[i] = ConversionResult{InputPath: files[i].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(conv)

			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i] = ConversionResult{InputPath: files[i].InputPath, Err: err}
					continue
				}
				results[i] = convertFile(ctx, conv, files[i], params)
			}
		})
	}
	wg.Wait()

	return results
}

// convertFile processes a single file and returns the result.
// The named return lets the deferred duration stamp cover every exit path.
func convertFile(ctx context.Context, conv converterClient, f FileToConvert, params *conversionParams) (result ConversionResult) {
	start := time.Now()
	result = ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	defer func() { result.Duration = time.Since(start) }()

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
		return result
	}

	req := params.request
	req.Source = f.InputPath
	req.Destination = f.OutputPath
	req.DebugHTML = params.debugHTML

	if params.htmlOnly {
		doc, err := conv.Compose(ctx, req)
		if err != nil {
			result.Err = err
			return result
		}
		out := htmlOutputPath(f.OutputPath)
		// #nosec G306 -- HTML output is meant to be readable
		if err := os.WriteFile(out, []byte(doc.Body), filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
			return result
		}
		result.OutputPath = out
		return result
	}

	dest, err := conv.Convert(ctx, req)
	if err != nil {
		result.Err = err
		return result
	}
	result.OutputPath = dest
	return result
}

// ResultSummary counts conversion outcomes across a batch.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var s ResultSummary
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
		} else {
			s.Succeeded++
		}
	}
	return s
}

// printResults reports per-file outcomes. Failures go to stderr with an
// actionable hint where one exists; quiet suppresses success lines; verbose
// adds per-file timing. Returns the number of failures.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
		case quiet:
			// success lines suppressed
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	summary := countResults(results)
	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}
	return summary.Failed
}

// firstError returns the first non-nil error in the results, in input order.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
