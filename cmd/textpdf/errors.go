package main

import (
	"context"
	"errors"

	textpdf "github.com/alnah/go-textpdf"
	"github.com/alnah/go-textpdf/internal/config"
	"github.com/alnah/go-textpdf/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read input file")
	ErrInvalidExtension   = errors.New("file must have .txt, .text, .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrToolPayload        = errors.New("invalid tool payload")
	ErrUnknownFormat      = errors.New("unknown output format")
	ErrOutputConflict     = errors.New("output path conflict")
	ErrRenderFailed       = errors.New("render failed")
)

// hintFor returns a "\n  hint: ..." suffix for errors users can act on,
// or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, textpdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, textpdf.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths("textpdf"))
	case errors.Is(err, textpdf.ErrWritePDF):
		return hints.ForOutputDirectory()
	case errors.Is(err, textpdf.ErrStyleNotFound):
		return hints.ForStyleNotFound(textpdf.BuiltinStyleSheetNames())
	case errors.Is(err, textpdf.ErrInvalidMargin),
		errors.Is(err, textpdf.ErrInvalidBorderWidth),
		errors.Is(err, textpdf.ErrInvalidLineSpacing):
		return hints.ForLayout(textpdf.MinMargin, textpdf.MaxMargin, textpdf.MaxBorderWidth,
			textpdf.MinLineSpacing, textpdf.MaxLineSpacing)
	case errors.Is(err, ErrToolPayload):
		return hints.ForToolPayload()
	}
	return ""
}
