//go:build integration

package textpdf

// Notes:
// - Chrome output is compressed, so borders are not counted here; page
//   counts and validity are checked with pdfcpu.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestChromeRender - End-to-end rendering through headless Chrome
// ---------------------------------------------------------------------------

func TestChromeRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantPages int
	}{
		{"empty text", "", 1},
		{"short document", "# Proposal\n\nScope and **budget**.\n\n- one\n- two", 1},
		{"page break", "first\fsecond", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := acquireRenderer(t)

			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()
			path := filepath.Join(t.TempDir(), "out.pdf")
			res, err := r.Render(ctx, Input{Text: tt.text, OutputPath: path})
			if err != nil {
				t.Fatalf("Render: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := ValidatePDF(data); err != nil {
				t.Errorf("ValidatePDF: %v", err)
			}
			if res.Pages != tt.wantPages {
				t.Errorf("Pages = %d, want %d", res.Pages, tt.wantPages)
			}
		})
	}
}

func TestChromeRender_Overflow(t *testing.T) {
	t.Parallel()
	r := acquireRenderer(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	res, err := r.Render(ctx, Input{Text: longText(120), OutputPath: filepath.Join(t.TempDir(), "long.pdf")})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Pages < 3 {
		t.Errorf("Pages = %d, want overflow onto several pages", res.Pages)
	}
}

func TestChromeRender_CanceledContext(t *testing.T) {
	t.Parallel()
	r := acquireRenderer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Render(ctx, Input{Text: "x", OutputPath: filepath.Join(t.TempDir(), "out.pdf")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
