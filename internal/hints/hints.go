// Package hints builds the short "hint:" suffixes appended to CLI error
// messages. Every hint is formatted as "\n  hint: <text>".
package hints

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-textpdf/internal/fileutil"
)

// IsInContainer reports whether the process runs inside a container.
// Replaced in tests.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

func inCI() bool {
	for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests the rod environment variables that usually
// fix a browser that fails to start.
func ForBrowserConnect() string {
	var parts []string
	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		parts = append(parts, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		parts = append(parts, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	parts = append(parts, "or use --engine fpdf, which needs no browser")
	return format(strings.Join(parts, "; "))
}

// ForTimeout suggests a longer timeout.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound suggests --config and the user config location.
func ForConfigNotFound(searched []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searched {
		if strings.Contains(slashPath(p), ".config/go-textpdf") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory covers output paths whose parent is missing or read-only.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the embedded style sheets.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForLayout reminds the accepted ranges of the layout parameters.
func ForLayout(minMargin, maxMargin, maxBorder, minSpacing, maxSpacing float64) string {
	return format(fmt.Sprintf("margin %g-%g in, border 0-%g pt, line spacing %g-%g",
		minMargin, maxMargin, maxBorder, minSpacing, maxSpacing))
}

// ForToolPayload describes the JSON/YAML payload the tool command reads.
func ForToolPayload() string {
	return format(`expected fields: pdf_text, file_path, margin_in, border_width, line_spacing`)
}

// slashPath normalizes Windows separators so the config hint matches on
// every platform.
func slashPath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
