package textpdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Invocation defaults.
const (
	DefaultOutputPath  = "proposal_document_for_user.pdf"
	DefaultMargin      = 0.75 // inches
	DefaultBorderWidth = 1.0  // points
	DefaultLineSpacing = 1.25
)

// Accepted ranges for the layout parameters.
const (
	MinMargin      = 0.25
	MaxMargin      = 3.0
	MaxBorderWidth = 10.0
	MinLineSpacing = 0.5
	MaxLineSpacing = 4.0
)

// Input is one document to render. Zero numeric fields and an empty
// OutputPath take the defaults above; Input itself is never modified.
type Input struct {
	Text        string
	OutputPath  string
	Margin      float64 // inches from every page edge to the border
	BorderWidth float64 // border stroke, points
	LineSpacing float64 // leading as a multiple of the font size

	// Metadata overrides the renderer-level metadata field by field.
	Metadata *Metadata
}

// withDefaults returns a copy with zero fields filled in.
func (in Input) withDefaults() Input {
	if in.OutputPath == "" {
		in.OutputPath = DefaultOutputPath
	}
	if in.Margin == 0 {
		in.Margin = DefaultMargin
	}
	if in.BorderWidth == 0 {
		in.BorderWidth = DefaultBorderWidth
	}
	if in.LineSpacing == 0 {
		in.LineSpacing = DefaultLineSpacing
	}
	return in
}

// Validate checks the layout parameters after defaults are applied.
func (in Input) Validate() error {
	in = in.withDefaults()

	if strings.TrimSpace(in.OutputPath) == "" {
		return ErrEmptyOutputPath
	}
	if in.Margin < MinMargin || in.Margin > MaxMargin {
		return fmt.Errorf("%w: %g in (must be between %g and %g)", ErrInvalidMargin, in.Margin, MinMargin, MaxMargin)
	}
	if in.BorderWidth <= 0 || in.BorderWidth > MaxBorderWidth {
		return fmt.Errorf("%w: %g pt (must be greater than 0 and at most %g)", ErrInvalidBorderWidth, in.BorderWidth, MaxBorderWidth)
	}
	if in.LineSpacing < MinLineSpacing || in.LineSpacing > MaxLineSpacing {
		return fmt.Errorf("%w: %g (must be between %g and %g)", ErrInvalidLineSpacing, in.LineSpacing, MinLineSpacing, MaxLineSpacing)
	}
	return nil
}

// Metadata fills the PDF document information dictionary.
// An empty Title is replaced by the first heading of the document.
type Metadata struct {
	Title   string
	Author  string
	Subject string
	Creator string
}

// merge returns m with the non-empty fields of override applied.
func (m Metadata) merge(override *Metadata) Metadata {
	if override == nil {
		return m
	}
	if override.Title != "" {
		m.Title = override.Title
	}
	if override.Author != "" {
		m.Author = override.Author
	}
	if override.Subject != "" {
		m.Subject = override.Subject
	}
	if override.Creator != "" {
		m.Creator = override.Creator
	}
	return m
}

// RenderResult describes a written PDF.
type RenderResult struct {
	Path   string // absolute path of the written file
	Pages  int
	Blocks int // content blocks, page breaks excluded
	Bytes  int64
}

// Message returns the confirmation handed back to tool callers.
func (r *RenderResult) Message() string {
	return "PDF saved to " + r.Path
}

// Engine names.
const (
	EngineFPDF   = "fpdf"
	EngineChrome = "chrome"
)

// Engines lists the supported engine names.
func Engines() []string {
	return []string{EngineFPDF, EngineChrome}
}

const defaultTimeout = 30 * time.Second

const defaultCreator = "go-textpdf"

// Option configures a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	engine    string
	sheet     *StyleSheet
	styleName string
	assetPath string
	timeout   time.Duration
	logger    zerolog.Logger
	compress  bool
	metadata  Metadata
}

func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		engine:   EngineFPDF,
		timeout:  defaultTimeout,
		logger:   zerolog.Nop(),
		compress: true,
		metadata: Metadata{Creator: defaultCreator},
	}
}

// WithEngine selects the rendering engine by name (EngineFPDF or
// EngineChrome). Unknown names fail in NewRenderer.
func WithEngine(name string) Option {
	return func(c *rendererConfig) {
		c.engine = strings.ToLower(strings.TrimSpace(name))
	}
}

// WithStyleSheet uses sheet as is. It takes precedence over WithStyleName.
func WithStyleSheet(sheet *StyleSheet) Option {
	return func(c *rendererConfig) {
		c.sheet = sheet
	}
}

// WithStyleName selects a style sheet by name, looked up in the asset
// directory first and the built-in sheets second, or by YAML file path.
func WithStyleName(nameOrPath string) Option {
	return func(c *rendererConfig) {
		c.styleName = nameOrPath
	}
}

// WithAssetPath sets a directory holding custom sheets in styles/.
func WithAssetPath(dir string) Option {
	return func(c *rendererConfig) {
		c.assetPath = dir
	}
}

// WithTimeout bounds page loading in the chrome engine.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("textpdf: WithTimeout duration must be positive")
	}
	return func(c *rendererConfig) {
		c.timeout = d
	}
}

// WithLogger sets the logger for render state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(c *rendererConfig) {
		c.logger = l
	}
}

// WithCompression toggles content stream compression in the fpdf engine.
// Uncompressed output is larger but readable in a text editor.
func WithCompression(on bool) Option {
	return func(c *rendererConfig) {
		c.compress = on
	}
}

// WithMetadata sets metadata applied to every rendered document.
func WithMetadata(m Metadata) Option {
	return func(c *rendererConfig) {
		if m.Creator == "" {
			m.Creator = defaultCreator
		}
		c.metadata = m
	}
}
