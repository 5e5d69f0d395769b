package main

import (
	"errors"
	"os"

	textpdf "github.com/alnah/go-textpdf"
	"github.com/alnah/go-textpdf/internal/config"
)

// Exit codes for the textpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, payload or layout values
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, textpdf.ErrBrowserConnect) ||
		errors.Is(err, textpdf.ErrPageCreate) ||
		errors.Is(err, textpdf.ErrPageLoad) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, textpdf.ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, textpdf.ErrInvalidMargin) ||
		errors.Is(err, textpdf.ErrInvalidBorderWidth) ||
		errors.Is(err, textpdf.ErrInvalidLineSpacing) ||
		errors.Is(err, textpdf.ErrEmptyOutputPath) ||
		errors.Is(err, textpdf.ErrUnknownEngine) ||
		errors.Is(err, textpdf.ErrInvalidStyleSheet) ||
		errors.Is(err, textpdf.ErrStyleNotFound) ||
		errors.Is(err, textpdf.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputConflict) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrToolPayload) ||
		errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
