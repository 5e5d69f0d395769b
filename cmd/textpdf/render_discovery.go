package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	textpdf "github.com/alnah/go-textpdf"
)

// stdinArg reads the document from standard input.
const stdinArg = "-"

// textExtensions are the files picked up when walking a directory.
var textExtensions = []string{".txt", ".text", ".md", ".markdown"}

// fileToRender is one input and the PDF it produces. InputPath is stdinArg
// for standard input.
type fileToRender struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands inputs (files, directories, or "-") into render
// jobs. A .pdf output names a single file and accepts only one input.
func discoverFiles(inputs []string, output string) ([]fileToRender, error) {
	var files []fileToRender
	for _, in := range inputs {
		found, err := discoverInput(in, output)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	if len(files) > 1 && isPDFPath(output) {
		return nil, fmt.Errorf("%w: %s names one file but %d inputs were found", ErrOutputConflict, output, len(files))
	}
	return files, nil
}

func discoverInput(inputPath, output string) ([]fileToRender, error) {
	if inputPath == stdinArg {
		return []fileToRender{{InputPath: stdinArg, OutputPath: stdinOutputPath(output)}}, nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateTextExtension(inputPath); err != nil {
			return nil, err
		}
		return []fileToRender{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, output, "")}}, nil
	}

	var files []fileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !hasTextExtension(path) {
			return nil
		}
		files = append(files, fileToRender{InputPath: path, OutputPath: resolveOutputPath(path, output, inputPath)})
		return nil
	})
	return files, err
}

// resolveOutputPath determines the PDF path for an input file. Without an
// output, the PDF goes next to the input; directory walks keep their
// relative layout under output.
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".pdf")
	}
	if isPDFPath(output) {
		return output
	}
	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(output, filepath.Dir(rel), base+".pdf")
		}
	}
	return filepath.Join(output, base+".pdf")
}

// stdinOutputPath places a document read from stdin.
func stdinOutputPath(output string) string {
	if isPDFPath(output) {
		return output
	}
	return filepath.Join(output, textpdf.DefaultOutputPath)
}

func isPDFPath(p string) bool {
	return strings.EqualFold(filepath.Ext(p), ".pdf")
}

func hasTextExtension(path string) bool {
	return slices.Contains(textExtensions, strings.ToLower(filepath.Ext(path)))
}

// validateTextExtension checks that an explicitly named file is text.
func validateTextExtension(path string) error {
	if !hasTextExtension(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > textpdf.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, textpdf.MaxPoolSize)
	}
	return nil
}
