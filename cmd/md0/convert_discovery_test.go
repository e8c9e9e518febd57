package main

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output path derivation
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		inputPath    string
		outputDir    string
		baseInputDir string
		want         string
	}{
		{
			name:      "next to source",
			inputPath: filepath.Join("docs", "guide.md"),
			want:      filepath.Join("docs", "guide.html"),
		},
		{
			name:      "markdown extension",
			inputPath: filepath.Join("docs", "notes.markdown"),
			want:      filepath.Join("docs", "notes.html"),
		},
		{
			name:      "explicit html file",
			inputPath: filepath.Join("docs", "guide.md"),
			outputDir: filepath.Join("out", "final.html"),
			want:      filepath.Join("out", "final.html"),
		},
		{
			name:      "output directory",
			inputPath: filepath.Join("docs", "guide.md"),
			outputDir: "out",
			want:      filepath.Join("out", "guide.html"),
		},
		{
			name:         "mirrors layout under output directory",
			inputPath:    filepath.Join("docs", "api", "ref.md"),
			outputDir:    "out",
			baseInputDir: "docs",
			want:         filepath.Join("out", "api", "ref.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := resolveOutputPath(tt.inputPath, tt.outputDir, tt.baseInputDir)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Directory walking
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "a.md", "# A")
	writeTestFile(t, dir, "B.MD", "# B")
	writeTestFile(t, dir, "deep/c.markdown", "# C")
	writeTestFile(t, dir, "deep/skip.txt", "x")

	files, err := discoverFiles(dir, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}

	var got []string
	for _, f := range files {
		rel, err := filepath.Rel(dir, f.OutputPath)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, rel)
	}
	sort.Strings(got)

	want := []string{"B.html", "a.html", filepath.Join("deep", "c.html")}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDiscoverFiles_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTestFile(t, dir, "one.md", "x")

	files, err := discoverFiles(input, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 1 || files[0].OutputPath != filepath.Join(dir, "one.html") {
		t.Errorf("files = %+v", files)
	}
}

func TestDiscoverFiles_InvalidExtension(t *testing.T) {
	t.Parallel()

	input := writeTestFile(t, t.TempDir(), "one.txt", "x")
	if _, err := discoverFiles(input, ""); !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("error = %v, want ErrInvalidExtension", err)
	}
}

func TestDiscoverFiles_DirectoryToHTMLFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "a.md", "# A")
	writeTestFile(t, dir, "b.md", "# B")

	files, err := discoverFiles(dir, filepath.Join(t.TempDir(), "out.HTML"))
	if !errors.Is(err, ErrInvalidExtension) {
		t.Fatalf("error = %v, want ErrInvalidExtension", err)
	}
	if !strings.Contains(err.Error(), "hint:") {
		t.Errorf("error should carry a hint, got %q", err)
	}
	if files != nil {
		t.Errorf("files = %+v, want none", files)
	}
}

// ---------------------------------------------------------------------------
// TestSourceDirFor - Relative reference base
// ---------------------------------------------------------------------------

func TestSourceDirFor(t *testing.T) {
	t.Parallel()

	same := FileToConvert{
		InputPath:  filepath.Join("docs", "a.md"),
		OutputPath: filepath.Join("docs", "a.html"),
	}
	if got := sourceDirFor(same); got != "" {
		t.Errorf("same directory: got %q, want empty", got)
	}

	moved := FileToConvert{
		InputPath:  filepath.Join("docs", "a.md"),
		OutputPath: filepath.Join("out", "a.html"),
	}
	got := sourceDirFor(moved)
	if !filepath.IsAbs(got) || filepath.Base(got) != "docs" {
		t.Errorf("moved output: got %q, want absolute docs directory", got)
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{1, false},
		{8, false},
		{9, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
	}
}
