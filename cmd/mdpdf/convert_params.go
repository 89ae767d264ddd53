package main

import (
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	mdpdf "github.com/nvell/mdpdf"
	"github.com/nvell/mdpdf/internal/config"
)

// Sentinel errors for parameter resolution.
var (
	ErrInvalidTimeout   = errors.New("invalid timeout")
	ErrDebugSingleInput = errors.New("--debug requires a single input file")
)

// conversionParams holds everything a batch run needs beyond the per-file
// source and destination: the request template, pool sizing, and output
// control. Built once by buildParams, shared read-only across workers.
type conversionParams struct {
	request   mdpdf.Request // Source/Destination filled per file
	timeout   time.Duration // 0 = library default
	workers   int
	outputDir string
	assetDir  string
	htmlOnly  bool
	debugHTML string
	quiet     bool
	verbose   bool
}

// buildParams merges CLI flags over the loaded config into conversion
// parameters. String flags win when non-empty; boolean flags consult
// fs.Changed so an explicit --gh-style can override a config that disabled
// it. Disable flags (--no-*) always win over their enable counterparts.
func buildParams(flags *convertFlags, fs *flag.FlagSet, envCfg *envConfig, cfg *config.Config) (*conversionParams, error) {
	p := &conversionParams{
		outputDir: firstNonEmpty(flags.outputDir, cfg.Output.Dir),
		assetDir:  firstNonEmpty(flags.style.assetDir, cfg.Assets.Dir),
		htmlOnly:  flags.mode.htmlOnly,
		debugHTML: flags.mode.debugHTML,
		quiet:     flags.mode.quiet,
		verbose:   flags.mode.verbose,
	}

	gh := cfg.Styles.Github
	switch {
	case flags.style.noGh:
		gh = false
	case fs.Changed("gh-style"):
		gh = flags.style.gh
	}

	def := cfg.Styles.Default
	switch {
	case flags.style.noDef:
		def = false
	case fs.Changed("default-style"):
		def = flags.style.def
	}

	emoji := cfg.Emoji
	if flags.style.noEmoji {
		emoji = false
	}

	// Stylesheet order is the cascade order: config first, then the
	// environment entry, then CLI entries, so CLI rules win.
	var styles []string
	styles = append(styles, cfg.Styles.Extra...)
	if envCfg.Style != "" {
		styles = append(styles, envCfg.Style)
	}
	styles = append(styles, flags.style.extra...)

	p.request = mdpdf.Request{
		Header:       firstNonEmpty(flags.chrome.header, cfg.Header.Path),
		Footer:       firstNonEmpty(flags.chrome.footer, cfg.Footer.Path),
		Stylesheets:  styles,
		GithubStyle:  gh,
		DefaultStyle: def,
		ConvertEmoji: emoji,
		PDF: mdpdf.PDFOptions{
			Format:       firstNonEmpty(flags.page.format, cfg.PDF.Format),
			Orientation:  firstNonEmpty(flags.page.orientation, cfg.PDF.Orientation),
			Border:       resolveBorders(flags.page, cfg.PDF),
			HeaderHeight: firstNonEmpty(flags.chrome.headerHeight, cfg.Header.Height),
			FooterHeight: firstNonEmpty(flags.chrome.footerHeight, cfg.Footer.Height),
		},
	}

	// Fail on bad geometry now, before any browser work.
	if err := p.request.PDF.Validate(); err != nil {
		return nil, err
	}

	workers := cfg.Convert.Workers
	if fs.Changed("workers") {
		workers = flags.workers
	}
	if err := validateWorkers(workers); err != nil {
		return nil, err
	}
	p.workers = workers

	timeout, err := resolveTimeout(flags.mode.timeout, envCfg.Timeout, cfg.Convert.Timeout)
	if err != nil {
		return nil, err
	}
	p.timeout = timeout

	return p, nil
}

// resolveBorders computes per-edge margins with two layers: each layer fills
// its edges from its own shorthand, then CLI edges overlay config edges.
// Empty final edges fall back to the library default at print time.
func resolveBorders(pf pageFlags, pc config.PDFConfig) mdpdf.Margins {
	cliLayer := mdpdf.Margins{
		Top:    firstNonEmpty(pf.borderTop, pf.border),
		Right:  firstNonEmpty(pf.borderRight, pf.border),
		Bottom: firstNonEmpty(pf.borderBottom, pf.border),
		Left:   firstNonEmpty(pf.borderLeft, pf.border),
	}
	cfgLayer := mdpdf.Margins{
		Top:    firstNonEmpty(pc.BorderTop, pc.Border),
		Right:  firstNonEmpty(pc.BorderRight, pc.Border),
		Bottom: firstNonEmpty(pc.BorderBottom, pc.Border),
		Left:   firstNonEmpty(pc.BorderLeft, pc.Border),
	}
	return mdpdf.Margins{
		Top:    firstNonEmpty(cliLayer.Top, cfgLayer.Top),
		Right:  firstNonEmpty(cliLayer.Right, cfgLayer.Right),
		Bottom: firstNonEmpty(cliLayer.Bottom, cfgLayer.Bottom),
		Left:   firstNonEmpty(cliLayer.Left, cfgLayer.Left),
	}
}

// resolveTimeout picks the per-conversion deadline.
// Priority: flag > environment > config file. Zero means "library default".
// An explicitly set value must parse and be positive.
func resolveTimeout(flagValue string, envValue time.Duration, configValue string) (time.Duration, error) {
	if flagValue != "" {
		return parseTimeout(flagValue)
	}
	if envValue > 0 {
		return envValue, nil
	}
	if configValue != "" {
		return parseTimeout(configValue)
	}
	return 0, nil
}

// parseTimeout parses a duration string and rejects non-positive values.
func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (use Go duration syntax, e.g. 45s, 2m)", ErrInvalidTimeout, s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, s)
	}
	return d, nil
}

// converterOptions translates resolved parameters into library options.
func converterOptions(p *conversionParams) []mdpdf.Option {
	var opts []mdpdf.Option
	if p.timeout > 0 {
		opts = append(opts, mdpdf.WithTimeout(p.timeout))
	}
	if p.assetDir != "" {
		opts = append(opts, mdpdf.WithAssetDir(p.assetDir))
	}
	return opts
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
