package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"

	mdpdf "github.com/nvell/mdpdf"
	"github.com/nvell/mdpdf/internal/assets"
	"github.com/nvell/mdpdf/internal/config"
	"github.com/nvell/mdpdf/internal/hints"
)

// runConvert drives a conversion run end to end: parse flags, resolve
// configuration, discover inputs, convert through a worker pool, report.
func runConvert(args []string, env *Environment) int {
	flags, inputs, fs, err := parseConvertFlags(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		// pflag already printed the problem and the usage text.
		return ExitUsage
	}

	if !flags.mode.quiet {
		warnUnknownEnvVars(env)
	}
	envCfg := loadEnvConfig(env)

	cfg, err := resolveConfig(flags.config, envCfg)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%v%s\n", err, configHint(err, firstNonEmpty(flags.config, envCfg.ConfigPath)))
		return exitCodeFor(err)
	}
	applyEnvConfig(envCfg, cfg)

	params, err := buildParams(flags, fs, envCfg, cfg)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	files, err := discoverFiles(inputs, params.outputDir)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	if len(files) == 0 {
		fmt.Fprintln(env.Stderr, "no markdown files found")
		return ExitUsage
	}
	if params.debugHTML != "" && len(files) > 1 {
		fmt.Fprintf(env.Stderr, "%v: %d files matched\n", ErrDebugSingleInput, len(files))
		return ExitUsage
	}

	// SIGTERM is registered on Windows too; it is never delivered there but
	// listing it is harmless, so one path serves both platforms.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poolSize := mdpdf.ResolvePoolSize(params.workers)
	if params.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := newConverterPool(poolSize, converterOptions(params)...)
	defer pool.Close()

	results := convertBatch(ctx, pool, files, params)
	if failed := printResults(results, params.quiet, params.verbose, env); failed > 0 {
		return exitCodeFor(firstError(results))
	}
	return ExitSuccess
}

// resolveConfig loads the named config file, or returns defaults when no
// config is named. Priority for the name: --config flag > MDPDF_CONFIG.
func resolveConfig(flagName string, envCfg *envConfig) (*config.Config, error) {
	name := firstNonEmpty(flagName, envCfg.ConfigPath)
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// configHint suggests a fix for config resolution failures. For a bare name
// it also names the user config path where the file could be created.
func configHint(err error, name string) string {
	if !errors.Is(err, config.ErrConfigNotFound) {
		return ""
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return hints.ForConfigNotFound(nil)
	}
	return hints.ForConfigNotFound([]string{filepath.Join("~", ".config", "mdpdf", name+".yaml")})
}

// hintFor returns an actionable hint for common failure classes, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, mdpdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, ErrCreateOutputDir), errors.Is(err, mdpdf.ErrWritePDF):
		return hints.ForOutputDirectory()
	case errors.Is(err, mdpdf.ErrReadStylesheet):
		return hints.ForStyleNotFound(assets.BundledStyles())
	}
	return ""
}
