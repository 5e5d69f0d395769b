package main

// Notes:
// - exitCodeFor: every sentinel from the textpdf, config and CLI packages is
//   mapped, plus wrapped errors to verify the errors.Is() chain.
// - ErrPDFGeneration maps to the general code: it covers engine failures
//   that are neither browser nor I/O problems.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"testing"

	textpdf "github.com/alnah/go-textpdf"
	"github.com/alnah/go-textpdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", textpdf.ErrBrowserConnect, ExitBrowser},
		{"page create", textpdf.ErrPageCreate, ExitBrowser},
		{"page load", textpdf.ErrPageLoad, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("failed: %w", textpdf.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"write pdf", textpdf.ErrWritePDF, ExitIO},
		{"path error", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, ExitIO},
		{"render failed wrapping write", fmt.Errorf("%w: %w", ErrRenderFailed, textpdf.ErrWritePDF), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"invalid margin", textpdf.ErrInvalidMargin, ExitUsage},
		{"invalid border width", textpdf.ErrInvalidBorderWidth, ExitUsage},
		{"invalid line spacing", textpdf.ErrInvalidLineSpacing, ExitUsage},
		{"empty output path", textpdf.ErrEmptyOutputPath, ExitUsage},
		{"unknown engine", textpdf.ErrUnknownEngine, ExitUsage},
		{"invalid style sheet", textpdf.ErrInvalidStyleSheet, ExitUsage},
		{"style not found", textpdf.ErrStyleNotFound, ExitUsage},
		{"invalid asset path", textpdf.ErrInvalidAssetPath, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"output conflict", ErrOutputConflict, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"tool payload", ErrToolPayload, ExitUsage},
		{"unknown format", ErrUnknownFormat, ExitUsage},
		{"unsupported shell", fmt.Errorf("%w: \"tcsh\"", ErrUnsupportedShell), ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"pdf generation", textpdf.ErrPDFGeneration, ExitGeneral},
		{"batch failure", fmt.Errorf("%w: 2 of 3 file(s)", ErrRenderFailed), ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix convention compliance
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()
	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("standard codes = %d/%d/%d, want 0/1/2", ExitSuccess, ExitGeneral, ExitUsage)
	}
	for name, code := range map[string]int{"ExitIO": ExitIO, "ExitBrowser": ExitBrowser} {
		if code >= 126 {
			t.Errorf("%s = %d, should be < 126", name, code)
		}
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Hint selection
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint bool
		contains string
	}{
		{"browser connect", textpdf.ErrBrowserConnect, true, "--engine fpdf"},
		{"page load", textpdf.ErrPageLoad, true, "hint:"},
		{"write pdf", fmt.Errorf("%w: x", textpdf.ErrWritePDF), true, "hint:"},
		{"style not found", textpdf.ErrStyleNotFound, true, "default"},
		{"margin", textpdf.ErrInvalidMargin, true, "0.25"},
		{"tool payload", ErrToolPayload, true, "pdf_text"},
		{"no hint", errors.New("boom"), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if !tt.wantHint {
				if got != "" {
					t.Errorf("hintFor(%v) = %q, want empty", tt.err, got)
				}
				return
			}
			if !strings.HasPrefix(got, "\n  hint: ") || !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor(%v) = %q, want hint containing %q", tt.err, got, tt.contains)
			}
		})
	}
}
