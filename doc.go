// Package textpdf renders lightly marked-up text into a paginated,
// bordered, US Letter PDF.
//
// # Quick Start
//
//	msg, err := textpdf.StorePDF(ctx, textpdf.Input{
//	    Text:       "# Proposal\n\nA **bold** plan.\f# Budget\n\n- one\n- two",
//	    OutputPath: "proposal.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(msg) // PDF saved to /abs/path/proposal.pdf
//
// # Markup
//
// The accepted subset is small: "#" to "####" headings, **bold** and
// *italic* emphasis, bullet ("-", "*", "+", "•") and numbered ("1.") list
// items, blank lines between paragraphs and form feeds ("\f") between pages.
// Anything else is kept as plain text. Parsing never fails.
//
// # Rendering
//
// Every page, including pages created by automatic overflow, carries a
// rectangle inset by the margin on all four sides. Text is laid out inside
// the rectangle with a small padding. Leading is the font size times the
// line spacing, rounded to whole points.
//
// Two engines are available. The default "fpdf" engine is pure Go and needs
// nothing installed. The "chrome" engine prints HTML through headless Chrome
// (go-rod); it honors the same layout but needs a browser:
//
//	r, err := textpdf.NewRenderer(
//	    textpdf.WithEngine(textpdf.EngineChrome),
//	    textpdf.WithTimeout(time.Minute),
//	)
//	defer r.Close()
//
// # Styles
//
// Block kinds map to styles through a StyleSheet. Built-in sheets are
// "default", "classic" and "compact"; custom YAML sheets can be loaded from
// a path or from an asset directory:
//
//	r, err := textpdf.NewRenderer(
//	    textpdf.WithAssetPath("/path/to/assets"), // assets/styles/{name}.yaml
//	    textpdf.WithStyleName("letterhead"),
//	)
//
// # Parallel Processing
//
// A Renderer may serve several goroutines writing to different paths. For
// the chrome engine, RendererPool bounds the number of browsers:
//
//	pool := textpdf.NewRendererPool(4, textpdf.WithEngine(textpdf.EngineChrome))
//	defer pool.Close()
//
//	r, err := pool.Acquire(ctx)
//	defer pool.Release(r)
package textpdf
