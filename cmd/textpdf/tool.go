package main

import (
	"context"
	"fmt"
	"io"
	"os"

	textpdf "github.com/alnah/go-textpdf"
	"github.com/alnah/go-textpdf/internal/yamlutil"
)

// toolPayload is the argument object of a store-PDF tool call. JSON is
// accepted as well, since JSON is valid YAML.
type toolPayload struct {
	PDFText     *string `yaml:"pdf_text"`
	FilePath    string  `yaml:"file_path"`
	MarginIn    float64 `yaml:"margin_in"`
	BorderWidth float64 `yaml:"border_width"`
	LineSpacing float64 `yaml:"line_spacing"`
}

// input converts the payload. Missing numbers take the renderer defaults.
func (p *toolPayload) input() textpdf.Input {
	return textpdf.Input{
		Text:        *p.PDFText,
		OutputPath:  p.FilePath,
		Margin:      p.MarginIn,
		BorderWidth: p.BorderWidth,
		LineSpacing: p.LineSpacing,
	}
}

// parseToolPayload decodes and checks a payload. Unknown fields are errors.
func parseToolPayload(data []byte) (*toolPayload, error) {
	var p toolPayload
	if err := yamlutil.UnmarshalStrict(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolPayload, err)
	}
	if p.PDFText == nil {
		return nil, fmt.Errorf("%w: pdf_text is required", ErrToolPayload)
	}
	return &p, nil
}

// runTool executes one tool call and prints the confirmation message.
func runTool(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseToolFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	data, err := readPayload(flags.file, env.Stdin)
	if err != nil {
		return err
	}
	payload, err := parseToolPayload(data)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	if err := mergeEngineFlags(flags.engine, cfg); err != nil {
		return err
	}
	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	opts, err := rendererOptions(cfg, logger)
	if err != nil {
		return err
	}

	in := payload.input()
	// Layout fields left out of the payload fall back to the config.
	layout := layoutInput(cfg)
	if in.Margin == 0 {
		in.Margin = layout.Margin
	}
	if in.BorderWidth == 0 {
		in.BorderWidth = layout.BorderWidth
	}
	if in.LineSpacing == 0 {
		in.LineSpacing = layout.LineSpacing
	}

	msg, err := textpdf.StorePDF(ctx, in, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, msg)
	return nil
}

func readPayload(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided payload path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}
