package textpdf

import "errors"

var (
	ErrWritePDF       = errors.New("failed to write PDF file")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Layout validation errors.
	ErrInvalidMargin      = errors.New("invalid margin")
	ErrInvalidBorderWidth = errors.New("invalid border width")
	ErrInvalidLineSpacing = errors.New("invalid line spacing")
	ErrEmptyOutputPath    = errors.New("output path cannot be empty")

	ErrUnknownEngine     = errors.New("unknown engine")
	ErrInvalidStyleSheet = errors.New("invalid style sheet")
	ErrStyleNotFound     = errors.New("style sheet not found")
	ErrInvalidAssetPath  = errors.New("invalid asset path")
	ErrPoolClosed        = errors.New("renderer pool is closed")
)
