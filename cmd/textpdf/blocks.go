package main

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"

	"github.com/alnah/go-textpdf/internal/markup"
	"github.com/alnah/go-textpdf/internal/yamlutil"
)

const (
	formatYAML = "yaml"
	formatPP   = "pp"
)

// blockView is the printable form of a markup.Block.
type blockView struct {
	Kind   string    `yaml:"kind"`
	Number int       `yaml:"number,omitempty"`
	Runs   []runView `yaml:"runs,omitempty"`
}

type runView struct {
	Text   string `yaml:"text"`
	Bold   bool   `yaml:"bold,omitempty"`
	Italic bool   `yaml:"italic,omitempty"`
}

func toBlockViews(blocks []markup.Block) []blockView {
	views := make([]blockView, 0, len(blocks))
	for _, b := range blocks {
		v := blockView{Kind: b.Kind.String(), Number: b.Number}
		for _, r := range b.Runs {
			v.Runs = append(v.Runs, runView(r))
		}
		views = append(views, v)
	}
	return views
}

// runBlocks prints the normalized block sequence of one input.
func runBlocks(args []string, env *Environment) error {
	flags, positional, err := parseBlocksFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if flags.format != formatYAML && flags.format != formatPP {
		return fmt.Errorf("%w: %q (use yaml or pp)", ErrUnknownFormat, flags.format)
	}

	path := stdinArg
	if len(positional) > 0 {
		path = positional[0]
	}
	text, err := readText(path, env.Stdin)
	if err != nil {
		return err
	}

	views := toBlockViews(markup.Normalize(text))
	return writeBlocks(env.Stdout, views, flags.format)
}

func writeBlocks(w io.Writer, views []blockView, format string) error {
	switch format {
	case formatPP:
		pp.ColoringEnabled = false
		_, err := pp.Fprintln(w, views)
		return err
	default:
		data, err := yamlutil.Marshal(views)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
}

// readText reads a text file, or stdin for "-".
func readText(path string, stdin io.Reader) (string, error) {
	if path == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(data), nil
}
