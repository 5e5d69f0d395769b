package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: textpdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render text files to bordered PDF pages")
	fmt.Fprintln(w, "  tool       Run a store-PDF tool call from a YAML/JSON payload")
	fmt.Fprintln(w, "  blocks     Print the normalized blocks of a text file")
	fmt.Fprintln(w, "  styles     List style sheets or show one")
	fmt.Fprintln(w, "  doctor     Check the rendering environment")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'textpdf help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: textpdf render <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render text files to US Letter PDF pages with a border.")
	fmt.Fprintln(w, "Form feeds start a new page. Headings (#), lists (-, 1.) and")
	fmt.Fprintln(w, "emphasis (**bold**, *italic*) are recognized.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Text file, directory, or - for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "  -m, --margin <f>          Margin in inches (0.25-3.0, default 0.75)")
	fmt.Fprintln(w, "  -b, --border-width <f>    Border width in points (0-10, default 1)")
	fmt.Fprintln(w, "  -l, --line-spacing <f>    Line spacing multiple (0.5-4.0, default 1.25)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Engine:")
	fmt.Fprintln(w, "  -e, --engine <s>          Rendering engine: fpdf, chrome")
	fmt.Fprintln(w, "  -s, --style <s>           Style sheet name or YAML file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom style sheets")
	fmt.Fprintln(w, "  -t, --timeout <d>         Page load timeout for chrome (e.g. 30s)")
	fmt.Fprintln(w, "      --no-compress         Write uncompressed content streams")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Metadata:")
	fmt.Fprintln(w, "      --title <s>           PDF title (\"\" = first heading, then file name)")
	fmt.Fprintln(w, "      --author <s>          PDF author")
	fmt.Fprintln(w, "      --subject <s>         PDF subject")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show render steps and timing")
}

// printToolUsage prints usage for the tool command.
func printToolUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: textpdf tool [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run one store-PDF tool call and print the confirmation message.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Payload fields:")
	fmt.Fprintln(w, "  pdf_text       Text to render (required)")
	fmt.Fprintln(w, "  file_path      Output path (default proposal_document_for_user.pdf)")
	fmt.Fprintln(w, "  margin_in      Margin in inches")
	fmt.Fprintln(w, "  border_width   Border width in points")
	fmt.Fprintln(w, "  line_spacing   Line spacing multiple")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --file <path>         Payload file (default: stdin)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -e, --engine <s>          Rendering engine: fpdf, chrome")
	fmt.Fprintln(w, "  -s, --style <s>           Style sheet name or YAML file path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show render steps")
}

// printBlocksUsage prints usage for the blocks command.
func printBlocksUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: textpdf blocks [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the block sequence the renderer would lay out.")
	fmt.Fprintln(w, "Reads stdin when no file is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -F, --format <s>          Output format: yaml, pp (default yaml)")
}

// printStylesUsage prints usage for the styles command.
func printStylesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: textpdf styles [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the available style sheets.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom style sheets")
	fmt.Fprintln(w, "      --show <name>         Print a style sheet after inheritance")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "tool":
		printToolUsage(env.Stdout)
	case "blocks":
		printBlocksUsage(env.Stdout)
	case "styles":
		printStylesUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: textpdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Render a sample with fpdf and check for Chrome.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: textpdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: textpdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
