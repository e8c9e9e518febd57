package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md0/internal/config"
	"github.com/alnah/go-md0/internal/fileutil"
	"github.com/alnah/go-md0/internal/hints"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("invalid file extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, outputDir, "")}}, nil
	}

	// Every file of a directory would map to the same page
	if strings.EqualFold(filepath.Ext(outputDir), htmlExtension) {
		return nil, fmt.Errorf("%w: --output %q for directory input%s", ErrInvalidExtension, outputDir, hints.ForDirectoryOutput())
	}

	// WalkDir visits entries in lexical order, so results are deterministic
	var files []FileToConvert
	walkErr := filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return fmt.Errorf("scanning %s: %w", path, err)
		case d.IsDir(), !fileutil.IsMarkdown(path):
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, inputPath),
		})
		return nil
	})
	return files, walkErr
}

// resolveOutputPath determines the HTML output path for a markdown file.
// Without outputDir the file lands next to its source. An outputDir ending
// in .html is used as is. Directory inputs keep their layout under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + htmlExtension

	switch {
	case outputDir == "":
		return filepath.Join(filepath.Dir(inputPath), name)
	case strings.EqualFold(filepath.Ext(outputDir), htmlExtension):
		return outputDir
	case baseInputDir == "":
		return filepath.Join(outputDir, name)
	}

	rel, err := filepath.Rel(baseInputDir, filepath.Dir(inputPath))
	if err != nil {
		rel = "."
	}
	return filepath.Join(outputDir, rel, name)
}

// sourceDirFor returns the directory relative references should resolve
// against, or "" when the output sits next to the input.
func sourceDirFor(f FileToConvert) string {
	in, out := filepath.Dir(f.InputPath), filepath.Dir(f.OutputPath)
	if filepath.Clean(in) == filepath.Clean(out) {
		return ""
	}
	abs, err := filepath.Abs(in)
	if err != nil {
		return in
	}
	return abs
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: %q (want .md or .markdown)", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < config.MinWorkers {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
