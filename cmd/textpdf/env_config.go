package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-textpdf/internal/config"
)

const envPrefix = "TEXTPDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // TEXTPDF_CONFIG: config file name or path
	Engine     string        // TEXTPDF_ENGINE: fpdf, chrome
	Style      string        // TEXTPDF_STYLE: style sheet name or path
	Timeout    time.Duration // TEXTPDF_TIMEOUT: chrome page load timeout
	OutputDir  string        // TEXTPDF_OUTPUT_DIR: default output directory
	AssetPath  string        // TEXTPDF_ASSET_PATH: custom style sheet directory
	Author     string        // TEXTPDF_AUTHOR: PDF author

	Margin      float64 // TEXTPDF_MARGIN: inches
	BorderWidth float64 // TEXTPDF_BORDER_WIDTH: points
	LineSpacing float64 // TEXTPDF_LINE_SPACING: multiple of font size
	Workers     int     // TEXTPDF_WORKERS: parallel workers
}

// knownEnvVars lists valid TEXTPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = []string{
	"TEXTPDF_CONFIG",
	"TEXTPDF_ENGINE",
	"TEXTPDF_STYLE",
	"TEXTPDF_TIMEOUT",
	"TEXTPDF_OUTPUT_DIR",
	"TEXTPDF_ASSET_PATH",
	"TEXTPDF_AUTHOR",
	"TEXTPDF_MARGIN",
	"TEXTPDF_BORDER_WIDTH",
	"TEXTPDF_LINE_SPACING",
	"TEXTPDF_WORKERS",
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and durations are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TEXTPDF_CONFIG"),
		Engine:     os.Getenv("TEXTPDF_ENGINE"),
		Style:      os.Getenv("TEXTPDF_STYLE"),
		OutputDir:  os.Getenv("TEXTPDF_OUTPUT_DIR"),
		AssetPath:  os.Getenv("TEXTPDF_ASSET_PATH"),
		Author:     os.Getenv("TEXTPDF_AUTHOR"),
	}

	if timeout := os.Getenv("TEXTPDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if workers := os.Getenv("TEXTPDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	cfg.Margin = envFloat("TEXTPDF_MARGIN")
	cfg.BorderWidth = envFloat("TEXTPDF_BORDER_WIDTH")
	cfg.LineSpacing = envFloat("TEXTPDF_LINE_SPACING")

	return cfg
}

// envFloat parses a positive float variable; anything else yields zero.
func envFloat(key string) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

// warnUnknownEnvVars writes a warning for every unrecognized TEXTPDF_*
// variable, e.g. TEXTPDF_MARGN.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !slices.Contains(knownEnvVars, name) {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment values to cfg where cfg is unset.
// Precedence is: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setString := func(dst *string, v string) {
		if v != "" && *dst == "" {
			*dst = v
		}
	}
	setFloat := func(dst *float64, v float64) {
		if v > 0 && *dst == 0 {
			*dst = v
		}
	}

	setString(&cfg.Render.Engine, env.Engine)
	setString(&cfg.Render.Style, env.Style)
	setString(&cfg.Output.DefaultDir, env.OutputDir)
	setString(&cfg.Assets.BasePath, env.AssetPath)
	setString(&cfg.Metadata.Author, env.Author)
	setFloat(&cfg.Render.Margin, env.Margin)
	setFloat(&cfg.Render.BorderWidth, env.BorderWidth)
	setFloat(&cfg.Render.LineSpacing, env.LineSpacing)

	if env.Timeout > 0 && cfg.Render.Timeout == "" {
		cfg.Render.Timeout = env.Timeout.String()
	}
	if env.Workers > 0 && cfg.Render.Workers == 0 {
		cfg.Render.Workers = env.Workers
	}
}

// loadConfig resolves the config file from the flag, then TEXTPDF_CONFIG,
// applies the environment and validates the result. Without either, the
// defaults are used.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		if cfg, err = config.LoadConfig(name); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
