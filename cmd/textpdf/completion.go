package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	textpdf "github.com/alnah/go-textpdf"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagValue flagType = iota // free-form string or number
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob []string // for file flags, e.g. "yaml", "yml"
}

// commandDef describes a command for completion.
type commandDef struct {
	Name      string
	Desc      string
	Flags     []flagDef
	FileExts  []string // extensions of file arguments; nil when none
	ArgValues []string // fixed positional values, e.g. shells
}

// completionMeta holds completion-specific hints for flags. Names, types
// and descriptions come from the FlagSets.
type completionMeta struct {
	Values   []string
	FileGlob []string
	IsDir    bool
}

func flagCompletionMeta() map[string]completionMeta {
	return map[string]completionMeta{
		"engine":     {Values: textpdf.Engines()},
		"format":     {Values: []string{formatYAML, formatPP}},
		"style":      {Values: textpdf.BuiltinStyleSheetNames()},
		"show":       {Values: textpdf.BuiltinStyleSheetNames()},
		"config":     {FileGlob: []string{"yaml", "yml"}},
		"file":       {FileGlob: []string{"yaml", "yml", "json"}},
		"output":     {IsDir: true},
		"asset-path": {IsDir: true},
	}
}

// extractFlags converts a FlagSet into completion definitions.
func extractFlags(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}
		if m, ok := meta[f.Name]; ok {
			switch {
			case len(m.Values) > 0:
				fd.Type, fd.Values = flagEnum, m.Values
			case len(m.FileGlob) > 0:
				fd.Type, fd.FileGlob = flagFile, m.FileGlob
			case m.IsDir:
				fd.Type = flagDir
			}
		}
		flags = append(flags, fd)
	})
	return flags
}

func textFileExts() []string {
	exts := make([]string, len(textExtensions))
	for i, ext := range textExtensions {
		exts[i] = strings.TrimPrefix(ext, ".")
	}
	return exts
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	shells := []string{string(ShellBash), string(ShellZsh), string(ShellFish)}
	names := []string{"render", "tool", "blocks", "styles", "doctor", "version", "help", "completion"}

	return []commandDef{
		{
			Name:     "render",
			Desc:     "Render text files to bordered PDF pages",
			Flags:    extractFlags(renderFlagSet(&renderFlags{}, io.Discard)),
			FileExts: textFileExts(),
		},
		{
			Name:  "tool",
			Desc:  "Run a store-PDF tool call from a YAML/JSON payload",
			Flags: extractFlags(toolFlagSet(&toolFlags{}, io.Discard)),
		},
		{
			Name:     "blocks",
			Desc:     "Print the normalized blocks of a text file",
			Flags:    extractFlags(blocksFlagSet(&blocksFlags{}, io.Discard)),
			FileExts: textFileExts(),
		},
		{
			Name:  "styles",
			Desc:  "List style sheets or show one",
			Flags: extractFlags(stylesFlagSet(&stylesFlags{}, io.Discard)),
		},
		{
			Name:  "doctor",
			Desc:  "Check the rendering environment",
			Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "print the report as JSON"}},
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", ArgValues: names},
		{Name: "completion", Desc: "Generate shell completion script", ArgValues: shells},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()
	var sb strings.Builder
	switch shell {
	case ShellBash:
		writeBash(&sb, cmds)
	case ShellZsh:
		writeZsh(&sb, cmds)
	case ShellFish:
		writeFish(&sb, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func writeBash(sb *strings.Builder, cmds []commandDef) {
	sb.WriteString("# bash completion for textpdf\n")
	sb.WriteString("_textpdf_completions() {\n")
	sb.WriteString("    local cur prev\n")
	sb.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	sb.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	sb.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(sb, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(commandNames(cmds), " "))
	sb.WriteString("        return\n    fi\n\n")
	sb.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(sb, "    %s)\n", c.Name)
		if cases := bashFlagCases(c.Flags); cases != "" {
			sb.WriteString("        case \"$prev\" in\n")
			sb.WriteString(cases)
			sb.WriteString("        esac\n")
		}
		if opts := flagWords(c.Flags); len(opts) > 0 {
			sb.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(sb, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(opts, " "))
			sb.WriteString("            return\n        fi\n")
		}
		switch {
		case len(c.ArgValues) > 0:
			fmt.Fprintf(sb, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(c.ArgValues, " "))
		case len(c.FileExts) > 0:
			fmt.Fprintf(sb, "        COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\") $(compgen -d -- \"$cur\") -)\n",
				strings.Join(c.FileExts, "|"))
		}
		sb.WriteString("        ;;\n")
	}

	sb.WriteString("    esac\n}\n\n")
	sb.WriteString("shopt -s extglob\n")
	sb.WriteString("complete -F _textpdf_completions textpdf\n")
}

func bashFlagCases(flags []flagDef) string {
	var sb strings.Builder
	for _, f := range flags {
		var reply string
		switch f.Type {
		case flagEnum:
			reply = fmt.Sprintf("COMPREPLY=($(compgen -W %q -- \"$cur\"))", strings.Join(f.Values, " "))
		case flagDir:
			reply = "COMPREPLY=($(compgen -d -- \"$cur\"))"
		case flagFile:
			reply = fmt.Sprintf("COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\") $(compgen -d -- \"$cur\"))",
				strings.Join(f.FileGlob, "|"))
		case flagValue:
			reply = "COMPREPLY=()"
		default:
			continue
		}
		fmt.Fprintf(&sb, "        %s) %s; return ;;\n", strings.Join(flagSpellings(f), "|"), reply)
	}
	return sb.String()
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func writeZsh(sb *strings.Builder, cmds []commandDef) {
	sb.WriteString("#compdef textpdf\n\n")
	sb.WriteString("_textpdf() {\n")
	sb.WriteString("    local -a commands\n")
	sb.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(sb, "        '%s:%s'\n", c.Name, zshQuote(c.Desc))
	}
	sb.WriteString("    )\n\n")
	sb.WriteString("    if (( CURRENT == 2 )); then\n")
	sb.WriteString("        _describe 'command' commands\n")
	sb.WriteString("        return\n    fi\n\n")
	sb.WriteString("    local cmd=${words[2]}\n")
	sb.WriteString("    shift 2 words\n")
	sb.WriteString("    (( CURRENT -= 2 ))\n")
	sb.WriteString("    words=(textpdf $words)\n")
	sb.WriteString("    (( CURRENT++ ))\n\n")
	sb.WriteString("    case $cmd in\n")

	for _, c := range cmds {
		fmt.Fprintf(sb, "    %s)\n", c.Name)
		sb.WriteString("        _arguments -s")
		for _, f := range c.Flags {
			fmt.Fprintf(sb, " \\\n            %s", zshFlagSpec(f))
		}
		switch {
		case len(c.ArgValues) > 0:
			fmt.Fprintf(sb, " \\\n            '1:argument:(%s)'", strings.Join(c.ArgValues, " "))
		case len(c.FileExts) > 0:
			fmt.Fprintf(sb, " \\\n            '*:file:_files -g \"*.(%s)\"'", strings.Join(c.FileExts, "|"))
		}
		sb.WriteString("\n        ;;\n")
	}

	sb.WriteString("    esac\n}\n\n")
	sb.WriteString("_textpdf \"$@\"\n")
}

func zshFlagSpec(f flagDef) string {
	desc := zshQuote(f.Desc)
	var action string
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagDir:
		action = ":directory:_files -/"
	case flagFile:
		action = fmt.Sprintf(":file:_files -g \"*.(%s)\"", strings.Join(f.FileGlob, "|"))
	default:
		action = ":" + f.Long + ": "
	}
	if f.Short == "" {
		return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

// zshQuote escapes text placed inside a single-quoted _arguments spec.
func zshQuote(s string) string {
	return strings.NewReplacer(`'`, `'\''`, "[", `\[`, "]", `\]`).Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func writeFish(sb *strings.Builder, cmds []commandDef) {
	sb.WriteString("# fish completion for textpdf\n\n")
	sb.WriteString("function __fish_textpdf_needs_command\n")
	sb.WriteString("    set -l cmd (commandline -opc)\n")
	sb.WriteString("    test (count $cmd) -eq 1\n")
	sb.WriteString("end\n\n")
	sb.WriteString("function __fish_textpdf_using_command\n")
	sb.WriteString("    set -l cmd (commandline -opc)\n")
	sb.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	sb.WriteString("end\n\n")
	sb.WriteString("complete -c textpdf -f\n")

	for _, c := range cmds {
		fmt.Fprintf(sb, "complete -c textpdf -n __fish_textpdf_needs_command -a %s -d '%s'\n", c.Name, fishQuote(c.Desc))
	}
	sb.WriteString("\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("-n '__fish_textpdf_using_command %s'", c.Name)
		for _, f := range c.Flags {
			line := "complete -c textpdf " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagFile:
				line += " -r -F"
			case flagValue:
				line += " -x"
			}
			line += fmt.Sprintf(" -d '%s'\n", fishQuote(f.Desc))
			sb.WriteString(line)
		}
		switch {
		case len(c.ArgValues) > 0:
			fmt.Fprintf(sb, "complete -c textpdf %s -a '%s'\n", cond, strings.Join(c.ArgValues, " "))
		case len(c.FileExts) > 0:
			fmt.Fprintf(sb, "complete -c textpdf %s -F\n", cond)
		}
	}
}

func fishQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

// ---------------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------------

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

func flagSpellings(f flagDef) []string {
	if f.Short == "" {
		return []string{"--" + f.Long}
	}
	return []string{"--" + f.Long, "-" + f.Short}
}

func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, flagSpellings(f)...)
	}
	return words
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: textpdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a shell completion script.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w, "  Bash:  eval \"$(textpdf completion bash)\"      # in ~/.bashrc")
	fmt.Fprintln(w, "  Zsh:   eval \"$(textpdf completion zsh)\"       # in ~/.zshrc, before compinit")
	fmt.Fprintln(w, "  Fish:  textpdf completion fish > ~/.config/fish/completions/textpdf.fish")
}
