package main

import (
	"fmt"

	textpdf "github.com/alnah/go-textpdf"
	"github.com/alnah/go-textpdf/internal/assets"
	"github.com/alnah/go-textpdf/internal/yamlutil"
)

// runStyles lists the available style sheets, or prints one with --show.
func runStyles(args []string, env *Environment) error {
	flags, err := parseStylesFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	if flags.show != "" {
		return showStyleSheet(flags, env)
	}

	resolver, err := assets.NewAssetResolver(flags.assetPath)
	if err != nil {
		return fmt.Errorf("%w: %v", textpdf.ErrInvalidAssetPath, err)
	}
	names, err := resolver.StyleSheetNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		if name == textpdf.DefaultStyleName {
			fmt.Fprintf(env.Stdout, "%s (default)\n", name)
			continue
		}
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}

// showStyleSheet prints a sheet after inheritance, as the renderer sees it.
func showStyleSheet(flags *stylesFlags, env *Environment) error {
	opts := []textpdf.Option{textpdf.WithStyleName(flags.show)}
	if flags.assetPath != "" {
		opts = append(opts, textpdf.WithAssetPath(flags.assetPath))
	}
	r, err := textpdf.NewRenderer(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	data, err := yamlutil.Marshal(r.StyleSheet())
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
