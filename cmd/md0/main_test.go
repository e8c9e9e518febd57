package main

// Notes:
// - runMain: we test dispatch and exit codes. File conversion itself is
//   covered by convert_test.go and tokens_test.go.

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "no command prints usage",
			args:       []string{"md0"},
			wantCode:   ExitUsage,
			wantStderr: "Usage: md0 <command>",
		},
		{
			name:       "version",
			args:       []string{"md0", "version"},
			wantCode:   ExitSuccess,
			wantStdout: "md0 dev",
		},
		{
			name:       "--version",
			args:       []string{"md0", "--version"},
			wantCode:   ExitSuccess,
			wantStdout: "md0 dev",
		},
		{
			name:       "help",
			args:       []string{"md0", "help"},
			wantCode:   ExitSuccess,
			wantStdout: "Commands:",
		},
		{
			name:       "help for html",
			args:       []string{"md0", "help", "html"},
			wantCode:   ExitSuccess,
			wantStdout: "Usage: md0 html",
		},
		{
			name:       "completion",
			args:       []string{"md0", "completion", "bash"},
			wantCode:   ExitSuccess,
			wantStdout: "complete -F _md0_completions md0",
		},
		{
			name:       "completion for unknown shell",
			args:       []string{"md0", "completion", "tcsh"},
			wantCode:   ExitUsage,
			wantStderr: "unsupported shell",
		},
		{
			name:       "unknown command",
			args:       []string{"md0", "render"},
			wantCode:   ExitUsage,
			wantStderr: "unknown command",
		},
		{
			name:       "tokens from stdin",
			args:       []string{"md0", "tokens"},
			stdin:      "# Title\n\nHello",
			wantCode:   ExitSuccess,
			wantStdout: "Heading(1, \"Title\")\nParagraph(\"Hello\", [])\n",
		},
		{
			name:       "html from stdin",
			args:       []string{"md0", "html", "-"},
			stdin:      "# Title\n\na < b",
			wantCode:   ExitSuccess,
			wantStdout: "<h1>Title</h1>\n<p>a &lt; b</p>\n",
		},
		{
			name:       "unknown flag",
			args:       []string{"md0", "html", "--nope"},
			wantCode:   ExitUsage,
			wantStderr: "invalid flags",
		},
		{
			name:     "flag help",
			args:     []string{"md0", "tokens", "--help"},
			wantCode: ExitSuccess,
		},
		{
			name:       "missing input file",
			args:       []string{"md0", "tokens", filepath.Join("testdata", "missing.md")},
			wantCode:   ExitIO,
			wantStderr: "failed to read markdown file",
		},
		{
			name:       "unknown engine",
			args:       []string{"md0", "html", "--engine", "pandoc", "-"},
			wantCode:   ExitUsage,
			wantStderr: "available engines: native, goldmark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(tt.stdin)
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
