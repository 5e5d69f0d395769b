// Package config loads the CLI's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-textpdf/internal/fileutil"
	"github.com/alnah/go-textpdf/internal/yamlutil"
)

var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory under os.UserConfigDir searched for config files.
const AppDir = "go-textpdf"

// Field length limits.
const (
	MaxNameLength    = 100  // style and engine names
	MaxAuthorLength  = 200  // PDF author
	MaxSubjectLength = 500  // PDF subject
	MaxPathLength    = 4096 // directories
	MaxWorkers       = 8    // matches the renderer pool cap
)

// Config is the on-disk configuration. Zero values mean "use the default".
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Output   OutputConfig   `yaml:"output"`
	Assets   AssetsConfig   `yaml:"assets"`
	Metadata MetadataConfig `yaml:"metadata"`
}

// RenderConfig holds layout and engine settings.
type RenderConfig struct {
	Engine      string  `yaml:"engine"`      // "fpdf" or "chrome"
	Style       string  `yaml:"style"`       // style sheet name or path
	Margin      float64 `yaml:"margin"`      // inches
	BorderWidth float64 `yaml:"borderWidth"` // points
	LineSpacing float64 `yaml:"lineSpacing"` // multiple of font size
	Timeout     string  `yaml:"timeout"`     // Go duration, chrome engine only
	Workers     int     `yaml:"workers"`     // batch parallelism, 0 = auto
	Compress    *bool   `yaml:"compress"`    // nil = compressed
}

type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
}

type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded style sheets only
}

// MetadataConfig fills the PDF document information dictionary.
type MetadataConfig struct {
	Author  string `yaml:"author"`
	Subject string `yaml:"subject"`
	Creator string `yaml:"creator"`
}

// DefaultConfig returns a config where every field defers to library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// TimeoutDuration parses Render.Timeout; empty yields zero.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Render.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Render.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout: %v", ErrInvalidValue, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: render.timeout: must not be negative", ErrInvalidValue)
	}
	return d, nil
}

// Validate checks enums, signs and field lengths. Layout ranges are checked
// again by the renderer, which owns them.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Render.Engine) {
	case "", "fpdf", "chrome":
	default:
		return fmt.Errorf("%w: render.engine: %q (must be fpdf or chrome)", ErrInvalidValue, c.Render.Engine)
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"render.margin", c.Render.Margin},
		{"render.borderWidth", c.Render.BorderWidth},
		{"render.lineSpacing", c.Render.LineSpacing},
	} {
		if f.value < 0 {
			return fmt.Errorf("%w: %s: must not be negative, got %g", ErrInvalidValue, f.name, f.value)
		}
	}

	if c.Render.Workers < 0 || c.Render.Workers > MaxWorkers {
		return fmt.Errorf("%w: render.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Render.Workers)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	for _, f := range []struct {
		name, value string
		max         int
	}{
		{"render.engine", c.Render.Engine, MaxNameLength},
		{"render.style", c.Render.Style, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"metadata.author", c.Metadata.Author, MaxAuthorLength},
		{"metadata.subject", c.Metadata.Subject, MaxSubjectLength},
		{"metadata.creator", c.Metadata.Creator, MaxNameLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

func validateFieldLength(field, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, field, len(value), maxLength)
	}
	return nil
}

// LoadConfig reads a config by path, or by name searched as <name>.yaml and
// <name>.yml in the working directory, then in the user config directory.
// A missing file is an error; there is no silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if path, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	exts := []string{".yaml", ".yml"}
	paths := make([]string, 0, 2*len(exts))
	for _, ext := range exts {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range exts {
			paths = append(paths, filepath.Join(dir, AppDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
