package textpdf

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-textpdf/internal/assets"
	"github.com/alnah/go-textpdf/internal/fileutil"
	"github.com/alnah/go-textpdf/internal/markup"
)

// Renderer turns text into PDF files. Create with NewRenderer and Close
// when done. A Renderer may be shared by goroutines that write to
// different paths.
type Renderer struct {
	cfg    rendererConfig
	sheet  *StyleSheet
	engine engine
	log    zerolog.Logger
}

// NewRenderer resolves the style sheet and the engine. Style sheet and
// asset errors are reported here rather than on the first render.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := defaultRendererConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sheet, err := resolveStyleSheet(cfg)
	if err != nil {
		return nil, err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		cfg:    cfg,
		sheet:  sheet,
		engine: eng,
		log:    cfg.logger.With().Str("component", "renderer").Str("engine", engineName(cfg)).Logger(),
	}, nil
}

func engineName(cfg rendererConfig) string {
	if cfg.engine == "" {
		return EngineFPDF
	}
	return cfg.engine
}

func resolveStyleSheet(cfg rendererConfig) (*StyleSheet, error) {
	if cfg.sheet != nil {
		sheet := *cfg.sheet
		sheet.inherit()
		if err := sheet.Validate(); err != nil {
			return nil, err
		}
		return &sheet, nil
	}

	var loader assets.Loader = assets.NewEmbeddedLoader()
	if cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		loader = resolver
	}
	return loadStyleSheet(loader, cfg.styleName)
}

// StyleSheet returns the resolved style sheet. Callers must not modify it.
func (r *Renderer) StyleSheet() *StyleSheet {
	return r.sheet
}

// Render normalizes in.Text, lays it out and writes the PDF to
// in.OutputPath, replacing any existing file. Nothing is written when
// validation, layout or the context fails before the write.
func (r *Renderer) Render(ctx context.Context, in Input) (result *RenderResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrPDFGeneration, rec)
		}
	}()

	if err := in.Validate(); err != nil {
		return nil, err
	}
	in = in.withDefaults()

	path, err := filepath.Abs(in.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritePDF, err)
	}

	start := time.Now()
	log := r.log.With().Str("path", path).Logger()

	blocks := markup.Normalize(in.Text)
	log.Debug().Str("state", "styling").Int("blocks", len(blocks)).Str("style", r.sheet.Name).Msg("resolving styles")

	doc := &document{
		blocks:   blocks,
		layout:   newPageLayout(in),
		sheet:    r.sheet,
		meta:     r.metadata(in, blocks, path),
		compress: r.cfg.compress,
	}

	log.Debug().Str("state", "flowing").Float64("margin_pt", doc.layout.margin).Msg("flowing blocks")
	data, pages, err := r.engine.render(ctx, doc)
	if err != nil {
		return nil, err
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritePDF, err)
	}

	result = &RenderResult{
		Path:   path,
		Pages:  pages,
		Blocks: markup.CountContent(blocks),
		Bytes:  int64(len(data)),
	}
	log.Debug().Str("state", "built").Int("pages", pages).Int64("bytes", result.Bytes).
		Dur("elapsed", time.Since(start)).Msg("PDF written")
	return result, nil
}

// metadata merges renderer and input metadata. The title falls back to the
// first heading, then to the file name.
func (r *Renderer) metadata(in Input, blocks []markup.Block, path string) Metadata {
	m := r.cfg.metadata.merge(in.Metadata)
	if m.Title == "" {
		m.Title = markup.FirstHeading(blocks)
	}
	if m.Title == "" {
		m.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m
}

// Store renders in and returns the confirmation message for tool callers.
func (r *Renderer) Store(ctx context.Context, in Input) (string, error) {
	res, err := r.Render(ctx, in)
	if err != nil {
		return "", err
	}
	return res.Message(), nil
}

// Close releases engine resources such as a browser process.
func (r *Renderer) Close() error {
	return r.engine.Close()
}

// StorePDF renders one document with a temporary Renderer and returns
// "PDF saved to <absolute path>".
func StorePDF(ctx context.Context, in Input, opts ...Option) (msg string, err error) {
	r, err := NewRenderer(opts...)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := r.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return r.Store(ctx, in)
}
