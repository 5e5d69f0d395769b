package main

// Notes:
// - GenerateCompletion: scripts are checked for content markers only. Running
//   them inside real shells would need integration tests with those shells.
// - getCommands: the registry is derived from the same FlagSets the parsers
//   use, so these tests double as a check that every flag stays completable.

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	textpdf "github.com/alnah/go-textpdf"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion - Script generation per shell
// ---------------------------------------------------------------------------

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_textpdf_completions()",
				"complete -F _textpdf_completions textpdf",
				"compgen",
				"--border-width|-b)",
				`compgen -W "fpdf chrome"`,
				"!*.@(txt|text|md|markdown)",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef textpdf",
				"_textpdf()",
				"_arguments",
				"_describe 'command' commands",
				"'(-e --engine)'{-e,--engine}'[rendering engine: fpdf, chrome]:engine:(fpdf chrome)'",
				"'--no-compress[",
				`_files -g "*.(yaml|yml)"`,
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c textpdf -f",
				"function __fish_textpdf_needs_command",
				"function __fish_textpdf_using_command",
				"-l output",
				"-s F -l format -x -a 'yaml pp'",
				"__fish_complete_directories",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error: %v", tt.shell, err)
			}
			out := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
			for _, c := range getCommands() {
				if !strings.Contains(out, c.Name) {
					t.Errorf("%s script missing command %q", tt.shell, c.Name)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{"", "powershell", "tcsh", "BASH"} {
		var buf bytes.Buffer
		err := GenerateCompletion(&buf, shell)
		if !errors.Is(err, ErrUnsupportedShell) {
			t.Errorf("GenerateCompletion(%q) error = %v, want ErrUnsupportedShell", shell, err)
		}
		if buf.Len() != 0 {
			t.Errorf("GenerateCompletion(%q) wrote %d bytes, want none", shell, buf.Len())
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion - Command entry point
// ---------------------------------------------------------------------------

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantErr    error
		wantStdout string
	}{
		{"no args prints usage", nil, nil, "Usage: textpdf completion <shell>"},
		{"zsh", []string{"zsh"}, nil, "#compdef textpdf"},
		{"unknown shell", []string{"ksh"}, ErrUnsupportedShell, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv("")
			err := runCompletion(tt.args, env)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("runCompletion(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want substring %q", stdout.String(), tt.wantStdout)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Registry derived from FlagSets
// ---------------------------------------------------------------------------

func TestGetCommands_Names(t *testing.T) {
	t.Parallel()

	want := []string{"render", "tool", "blocks", "styles", "doctor", "version", "help", "completion"}
	got := commandNames(getCommands())
	if !slices.Equal(got, want) {
		t.Errorf("command names = %v, want %v", got, want)
	}
}

func TestGetCommands_FlagTypes(t *testing.T) {
	t.Parallel()

	index := make(map[string]map[string]flagDef)
	for _, c := range getCommands() {
		index[c.Name] = make(map[string]flagDef)
		for _, f := range c.Flags {
			index[c.Name][f.Long] = f
		}
	}

	tests := []struct {
		cmd, flag string
		wantType  flagType
		wantShort string
	}{
		{"render", "output", flagDir, "o"},
		{"render", "workers", flagValue, "w"},
		{"render", "engine", flagEnum, "e"},
		{"render", "style", flagEnum, "s"},
		{"render", "config", flagFile, "c"},
		{"render", "asset-path", flagDir, ""},
		{"render", "no-compress", flagBool, ""},
		{"render", "margin", flagValue, "m"},
		{"tool", "file", flagFile, "f"},
		{"blocks", "format", flagEnum, "F"},
		{"styles", "show", flagEnum, ""},
		{"doctor", "json", flagBool, ""},
	}

	for _, tt := range tests {
		f, ok := index[tt.cmd][tt.flag]
		if !ok {
			t.Errorf("%s: flag --%s not registered", tt.cmd, tt.flag)
			continue
		}
		if f.Type != tt.wantType {
			t.Errorf("%s --%s type = %d, want %d", tt.cmd, tt.flag, f.Type, tt.wantType)
		}
		if f.Short != tt.wantShort {
			t.Errorf("%s --%s short = %q, want %q", tt.cmd, tt.flag, f.Short, tt.wantShort)
		}
	}

	if got := index["render"]["style"].Values; !slices.Equal(got, textpdf.BuiltinStyleSheetNames()) {
		t.Errorf("style values = %v, want built-in names", got)
	}
	if got := index["tool"]["file"].FileGlob; !slices.Equal(got, []string{"yaml", "yml", "json"}) {
		t.Errorf("tool --file globs = %v", got)
	}
}

func TestTextFileExts(t *testing.T) {
	t.Parallel()

	got := textFileExts()
	want := []string{"txt", "text", "md", "markdown"}
	if !slices.Equal(got, want) {
		t.Errorf("textFileExts() = %v, want %v", got, want)
	}
}

func TestZshQuote(t *testing.T) {
	t.Parallel()

	got := zshQuote("it's [a]: b")
	want := `it'\''s \[a\]: b`
	if got != want {
		t.Errorf("zshQuote() = %q, want %q", got, want)
	}
}
