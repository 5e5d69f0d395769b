package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	textpdf "github.com/alnah/go-textpdf"
	"github.com/alnah/go-textpdf/internal/config"
)

// runRender renders the inputs named in args.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}
	cfg, err := loadConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	if err := mergeEngineFlags(flags.engine, cfg); err != nil {
		return err
	}
	mergeRenderFlags(flags, cfg)

	if len(inputs) == 0 {
		return ErrNoInput
	}
	output := flags.output
	if output == "" {
		output = cfg.Output.DefaultDir
	}
	files, err := discoverFiles(inputs, output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no text files found in %v", ErrNoInput, inputs)
	}

	params := &renderParams{
		layout: layoutInput(cfg),
	}
	if flags.metadata.title != "" {
		params.metadata = &textpdf.Metadata{Title: flags.metadata.title}
	}
	for _, f := range files {
		if f.InputPath == stdinArg {
			data, err := io.ReadAll(env.Stdin)
			if err != nil {
				return fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
			}
			params.stdinText = string(data)
			break
		}
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	opts, err := rendererOptions(cfg, logger)
	if err != nil {
		return err
	}

	// Style sheet and engine errors surface before any file is read.
	probe, err := textpdf.NewRenderer(opts...)
	if err != nil {
		return err
	}
	_ = probe.Close()

	size := textpdf.ResolvePoolSize(cfg.Render.Workers)
	logger.Debug().Int("files", len(files)).Int("workers", size).Str("engine", engineOrDefault(cfg)).Msg("starting batch")

	pool := textpdf.NewRendererPool(size, opts...)
	defer func() {
		if cerr := pool.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("closing renderers")
		}
	}()

	results := renderBatch(ctx, &poolAdapter{pool: pool}, files, params)
	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		if len(results) == 1 {
			// Surface the cause so the exit code reflects it.
			return fmt.Errorf("%w: %w", ErrRenderFailed, results[0].Err)
		}
		return fmt.Errorf("%w: %d of %d file(s)", ErrRenderFailed, failed, len(results))
	}
	return nil
}

// mergeEngineFlags applies engine flags over cfg. CLI values win.
func mergeEngineFlags(f engineFlags, cfg *config.Config) error {
	if f.engine != "" {
		cfg.Render.Engine = f.engine
	}
	if f.style != "" {
		cfg.Render.Style = f.style
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.timeout != "" {
		d, err := time.ParseDuration(f.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q (use a positive duration such as 30s or 2m)", ErrInvalidTimeout, f.timeout)
		}
		cfg.Render.Timeout = f.timeout
	}
	if f.noCompress {
		off := false
		cfg.Render.Compress = &off
	}
	return nil
}

// mergeRenderFlags applies layout, worker and metadata flags over cfg.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	if f.layout.margin != 0 {
		cfg.Render.Margin = f.layout.margin
	}
	if f.layout.borderWidth != 0 {
		cfg.Render.BorderWidth = f.layout.borderWidth
	}
	if f.layout.lineSpacing != 0 {
		cfg.Render.LineSpacing = f.layout.lineSpacing
	}
	if f.workers != 0 {
		cfg.Render.Workers = f.workers
	}
	if f.metadata.author != "" {
		cfg.Metadata.Author = f.metadata.author
	}
	if f.metadata.subject != "" {
		cfg.Metadata.Subject = f.metadata.subject
	}
}

// layoutInput carries the configured layout. Zero values take the
// renderer defaults.
func layoutInput(cfg *config.Config) textpdf.Input {
	return textpdf.Input{
		Margin:      cfg.Render.Margin,
		BorderWidth: cfg.Render.BorderWidth,
		LineSpacing: cfg.Render.LineSpacing,
	}
}

// rendererOptions converts cfg into renderer options.
func rendererOptions(cfg *config.Config, logger zerolog.Logger) ([]textpdf.Option, error) {
	opts := []textpdf.Option{
		textpdf.WithLogger(logger),
		textpdf.WithMetadata(textpdf.Metadata{
			Author:  cfg.Metadata.Author,
			Subject: cfg.Metadata.Subject,
			Creator: cfg.Metadata.Creator,
		}),
	}
	if cfg.Render.Engine != "" {
		opts = append(opts, textpdf.WithEngine(cfg.Render.Engine))
	}
	if cfg.Render.Style != "" {
		opts = append(opts, textpdf.WithStyleName(cfg.Render.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, textpdf.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Render.Compress != nil {
		opts = append(opts, textpdf.WithCompression(*cfg.Render.Compress))
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, textpdf.WithTimeout(timeout))
	}
	return opts, nil
}

func engineOrDefault(cfg *config.Config) string {
	if cfg.Render.Engine == "" {
		return textpdf.EngineFPDF
	}
	return cfg.Render.Engine
}
