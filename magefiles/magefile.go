//go:build mage

// Package main holds the Mage targets for go-textpdf.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "textpdf"
	cmdPkg  = "./cmd/textpdf"
)

// Default runs when mage is called without a target.
var Default = Build

// Build compiles the CLI into bin/, stamping the version from $VERSION.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	return sh.RunV("go", "build", "-ldflags", "-X main.Version="+version, "-o", out, cmdPkg)
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Integration runs the chrome engine tests. Needs Chrome or ROD_BROWSER_BIN.
func Integration() error {
	return sh.RunWithV(map[string]string{"ROD_NO_SANDBOX": "1"},
		"go", "test", "-tags", "integration", "-race", "-timeout", "10m", "./...")
}

// Bench runs the pool and renderer benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-tags", "bench", "-run", "^$", "-bench", ".", "-benchmem", ".")
}

// Lint runs vet, staticcheck and gosec from the module tool block.
func Lint() error {
	mg.Deps(Vet)
	if err := sh.RunV("go", "tool", "staticcheck", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "gosec", "-quiet", "./...")
}

// Vet runs go vet, including the build-tagged files.
func Vet() error {
	return sh.RunV("go", "vet", "-tags", "integration,bench", "./...")
}

// Check runs everything CI runs.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
