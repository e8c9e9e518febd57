// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md0") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownEngine lists the engines that can be selected.
func ForUnknownEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available engines: " + strings.Join(available, ", "))
}

// ForUnknownFormat lists the token output formats.
func ForUnknownFormat(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available formats: " + strings.Join(available, ", "))
}

// ForUnknownStyle lists the built-in styles, and mentions the custom style
// directory when one is configured.
func ForUnknownStyle(builtin []string, hasCustomDir bool) string {
	if len(builtin) == 0 {
		return ""
	}
	hint := "built-in styles: " + strings.Join(builtin, ", ")
	if hasCustomDir {
		hint += "; custom styles are read from {style-dir}/{name}.css"
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForDirectoryOutput explains that directory inputs need an output directory.
func ForDirectoryOutput() string {
	return format("a directory input writes one page per file; pass an output directory")
}

// ForStdinOutput explains how output is chosen when reading from stdin.
func ForStdinOutput() string {
	return format("stdin input writes to stdout unless --output names a file")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
