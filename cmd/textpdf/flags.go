package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// layoutFlags holds the page layout flags. Zero means "not set".
type layoutFlags struct {
	margin      float64
	borderWidth float64
	lineSpacing float64
}

// engineFlags selects the engine and style sheet.
type engineFlags struct {
	engine     string
	style      string
	assetPath  string
	timeout    string
	noCompress bool
}

// metadataFlags fill the PDF document information.
type metadataFlags struct {
	title   string
	author  string
	subject string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common   commonFlags
	output   string
	workers  int
	layout   layoutFlags
	engine   engineFlags
	metadata metadataFlags
}

// toolFlags holds flags for the tool command.
type toolFlags struct {
	common commonFlags
	file   string
	engine engineFlags
}

// blocksFlags holds flags for the blocks command.
type blocksFlags struct {
	format string
}

// stylesFlags holds flags for the styles command.
type stylesFlags struct {
	assetPath string
	show      string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show render steps and timing")
}

// addLayoutFlags adds page layout flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.Float64VarP(&f.margin, "margin", "m", 0, "margin in inches (0.25-3.0, default 0.75)")
	fs.Float64VarP(&f.borderWidth, "border-width", "b", 0, "border width in points (0-10, default 1)")
	fs.Float64VarP(&f.lineSpacing, "line-spacing", "l", 0, "line spacing multiple (0.5-4.0, default 1.25)")
}

// addEngineFlags adds engine and style flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "rendering engine: fpdf, chrome")
	fs.StringVarP(&f.style, "style", "s", "", "style sheet name or YAML file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom style sheets in styles/")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout for the chrome engine (e.g. 30s, 2m)")
	fs.BoolVar(&f.noCompress, "no-compress", false, "write uncompressed content streams (fpdf)")
}

// addMetadataFlags adds PDF metadata flags to a FlagSet.
func addMetadataFlags(fs *flag.FlagSet, f *metadataFlags) {
	fs.StringVar(&f.title, "title", "", "PDF title (\"\" = first heading, then file name)")
	fs.StringVar(&f.author, "author", "", "PDF author")
	fs.StringVar(&f.subject, "subject", "", "PDF subject")
}

func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// renderFlagSet registers the render flags into f. The completion
// generator reads the same sets, so they stay the single source of truth.
func renderFlagSet(f *renderFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("render", printRenderUsage, stderr)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)
	addEngineFlags(fs, &f.engine)
	addMetadataFlags(fs, &f.metadata)
	return fs
}

func toolFlagSet(f *toolFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("tool", printToolUsage, stderr)
	fs.StringVarP(&f.file, "file", "f", "", "payload file (default: stdin)")
	addCommonFlags(fs, &f.common)
	addEngineFlags(fs, &f.engine)
	return fs
}

func blocksFlagSet(f *blocksFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("blocks", printBlocksUsage, stderr)
	fs.StringVarP(&f.format, "format", "F", formatYAML, "output format: yaml, pp")
	return fs
}

func stylesFlagSet(f *stylesFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("styles", printStylesUsage, stderr)
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom style sheets in styles/")
	fs.StringVar(&f.show, "show", "", "print the resolved style sheet with this name")
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := renderFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseToolFlags parses tool command flags.
func parseToolFlags(args []string, stderr io.Writer) (*toolFlags, error) {
	f := &toolFlags{}
	if err := toolFlagSet(f, stderr).Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseBlocksFlags parses blocks command flags and returns positional args.
func parseBlocksFlags(args []string, stderr io.Writer) (*blocksFlags, []string, error) {
	f := &blocksFlags{}
	fs := blocksFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseStylesFlags parses styles command flags.
func parseStylesFlags(args []string, stderr io.Writer) (*stylesFlags, error) {
	f := &stylesFlags{}
	if err := stylesFlagSet(f, stderr).Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
