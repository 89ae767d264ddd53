package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nvell/mdpdf/internal/config"
)

// envConfig carries the MDPDF_* environment overrides. CI pipelines set
// these instead of shipping a YAML file alongside the sources.
type envConfig struct {
	ConfigPath string        // MDPDF_CONFIG: config file name or path
	Style      string        // MDPDF_STYLE: extra stylesheet entry
	Timeout    time.Duration // MDPDF_TIMEOUT: per-conversion deadline
	OutputDir  string        // MDPDF_OUTPUT_DIR: default output directory
	AssetDir   string        // MDPDF_ASSETS: custom asset directory
	Workers    int           // MDPDF_WORKERS: parallel conversions
}

// knownEnvVars is the complete MDPDF_* namespace. Anything else under the
// prefix draws a typo warning.
var knownEnvVars = map[string]bool{
	"MDPDF_CONFIG":     true,
	"MDPDF_STYLE":      true,
	"MDPDF_TIMEOUT":    true,
	"MDPDF_OUTPUT_DIR": true,
	"MDPDF_ASSETS":     true,
	"MDPDF_WORKERS":    true,
	"MDPDF_CONTAINER":  true, // doctor: force container detection
}

// loadEnvConfig snapshots the MDPDF_* variables into an envConfig.
// Malformed numeric values are ignored rather than fatal: an invalid
// MDPDF_TIMEOUT behaves like an unset one.
func loadEnvConfig(env *Environment) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.Getenv("MDPDF_CONFIG"),
		Style:      env.Getenv("MDPDF_STYLE"),
		OutputDir:  env.Getenv("MDPDF_OUTPUT_DIR"),
		AssetDir:   env.Getenv("MDPDF_ASSETS"),
	}

	if timeout := env.Getenv("MDPDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := env.Getenv("MDPDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars flags MDPDF_* variables outside the known set, so a
// misspelled MDPDF_OUPUT_DIR does not get silently ignored.
func warnUnknownEnvVars(env *Environment) {
	for _, entry := range env.Environ() {
		if !strings.HasPrefix(entry, "MDPDF_") {
			continue
		}
		name := strings.SplitN(entry, "=", 2)[0]
		if !knownEnvVars[name] {
			fmt.Fprintf(env.Stderr, "warning: %s is not a recognized environment variable (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment values to the loaded config.
// Only fills values the config left empty, so the precedence holds:
// CLI flags > environment > config file > defaults. The style entry is
// additive (ordered stylesheets, not a scalar) and the timeout is resolved
// separately in resolveTimeout, where the flag can still override it.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.AssetDir != "" && cfg.Assets.Dir == "" {
		cfg.Assets.Dir = env.AssetDir
	}
	if env.Workers > 0 && cfg.Convert.Workers == 0 {
		cfg.Convert.Workers = env.Workers
	}
}
