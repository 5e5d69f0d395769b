package yamlutil_test

// Notes:
// - Marshal failures need unencodable values (channels, funcs) and are not
//   exercised; only the happy path is covered.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-textpdf/internal/yamlutil"
)

type payload struct {
	Text    string  `yaml:"pdf_text"`
	Margin  float64 `yaml:"margin_in"`
	Enabled bool    `yaml:"enabled"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		dest    any
		wantErr error
		want    payload
	}{
		{
			name: "yaml document",
			data: "pdf_text: hello\nmargin_in: 0.5\nenabled: true",
			dest: &payload{},
			want: payload{Text: "hello", Margin: 0.5, Enabled: true},
		},
		{
			name: "json document",
			data: `{"pdf_text": "hi", "margin_in": 1}`,
			dest: &payload{},
			want: payload{Text: "hi", Margin: 1},
		},
		{
			name: "unknown fields ignored",
			data: "pdf_text: x\nextra: 1",
			dest: &payload{},
			want: payload{Text: "x"},
		},
		{
			name:    "empty input",
			data:    "",
			dest:    &payload{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "whitespace input",
			data:    "  \n\t",
			dest:    &payload{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "nil destination",
			data:    "pdf_text: x",
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "syntax error",
			data:    "pdf_text: [unclosed",
			dest:    &payload{},
			wantErr: yamlutil.ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal([]byte(tt.data), tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := *tt.dest.(*payload); got != tt.want {
				t.Errorf("decoded = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Unknown fields rejected
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var p payload
	if err := yamlutil.UnmarshalStrict([]byte("pdf_text: ok"), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text != "ok" {
		t.Errorf("Text = %q, want %q", p.Text, "ok")
	}

	err := yamlutil.UnmarshalStrict([]byte("pdf_txt: typo"), &p)
	if !errors.Is(err, yamlutil.ErrSyntax) {
		t.Fatalf("error = %v, want ErrSyntax", err)
	}
	if !strings.Contains(err.Error(), "pdf_txt") {
		t.Errorf("error %q should name the unknown field", err)
	}
}

// ---------------------------------------------------------------------------
// TestInputTooLarge - Size limit
// ---------------------------------------------------------------------------

func TestInputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("pdf_text: " + strings.Repeat("x", yamlutil.MaxInputSize))
	var p payload
	if err := yamlutil.Unmarshal(data, &p); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Round trip through decode
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(payload{Text: "body", Margin: 0.75})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "pdf_text: body") {
		t.Errorf("Marshal output %q missing pdf_text", out)
	}
}
