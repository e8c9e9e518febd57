package main

// Notes:
// - exitCodeFor: we test the sentinel errors of the CLI, md0, assets and
//   config packages, plus wrapped errors to verify the errors.Is() chain.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md0 "github.com/alnah/go-md0"
	"github.com/alnah/go-md0/internal/assets"
	"github.com/alnah/go-md0/internal/config"
	"github.com/alnah/go-md0/internal/logging"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"read css", ErrReadCSS, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"read style", assets.ErrAssetRead, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"invalid flags", ErrInvalidFlags, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"too many args", ErrTooManyArgs, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"unknown format", ErrUnknownFormat, ExitUsage},
		{"tokens engine", ErrTokensEngine, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"unknown engine", md0.ErrUnknownEngine, ExitUsage},
		{"unknown style", assets.ErrStyleNotFound, ExitUsage},
		{"invalid style name", assets.ErrInvalidAssetName, ExitUsage},
		{"invalid style dir", assets.ErrInvalidBasePath, ExitUsage},
		{"style path traversal", assets.ErrPathTraversal, ExitUsage},
		{"invalid log level", logging.ErrInvalidLevel, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config invalid value", config.ErrInvalidValue, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"wrapped config", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"conversion failed", ErrConversionFailed, ExitGeneral},
		{"no markdown files", ErrNoMarkdownFiles, ExitGeneral},
		{"html conversion", md0.ErrHTMLConversion, ExitGeneral},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := map[string]int{
		"ExitSuccess": ExitSuccess,
		"ExitGeneral": ExitGeneral,
		"ExitUsage":   ExitUsage,
		"ExitIO":      ExitIO,
	}
	seen := make(map[int]string)
	for name, code := range codes {
		if code >= 126 {
			t.Errorf("%s = %d, must be below 126", name, code)
		}
		if other, ok := seen[code]; ok {
			t.Errorf("%s and %s share code %d", name, other, code)
		}
		seen[code] = name
	}
	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("success, general and usage codes must be 0, 1 and 2")
	}
}
