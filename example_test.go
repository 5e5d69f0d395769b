package textpdf_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-textpdf"
)

// Example renders a short document with the defaults: 0.75 in margins,
// a 1 pt border and 1.25 line spacing.
func Example() {
	dir, err := os.MkdirTemp("", "textpdf-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	r, err := textpdf.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	res, err := r.Render(context.Background(), textpdf.Input{
		Text:       "# Proposal\n\nScope, **budget** and timeline.\n\f# Appendix\n\n1. Risks\n2. Staffing",
		OutputPath: filepath.Join(dir, "proposal.pdf"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Pages, "pages,", res.Blocks, "blocks")
	// Output: 2 pages, 5 blocks
}

// ExampleStorePDF shows the one-shot entry point used by tool callers.
func ExampleStorePDF() {
	dir, err := os.MkdirTemp("", "textpdf-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "notes.pdf")
	msg, err := textpdf.StorePDF(context.Background(), textpdf.Input{
		Text:        "- first\n- second",
		OutputPath:  path,
		Margin:      1,
		BorderWidth: 2,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(msg == "PDF saved to "+path)
	// Output: true
}

// ExampleWithStyleName selects a built-in style sheet.
func ExampleWithStyleName() {
	r, err := textpdf.NewRenderer(textpdf.WithStyleName("classic"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	fmt.Println(r.StyleSheet().Paragraph.Font)
	// Output: Times
}
