package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	md0 "github.com/alnah/go-md0"
	"github.com/alnah/go-md0/internal/assets"
	"github.com/alnah/go-md0/internal/config"
	"github.com/alnah/go-md0/internal/fileutil"
	"github.com/alnah/go-md0/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrTooManyArgs      = errors.New("too many arguments")
	ErrNoMarkdownFiles  = errors.New("no markdown files found")
	ErrConversionFailed = errors.New("conversion failed")
)

// stdinArg selects standard input as the markdown source.
const stdinArg = "-"

// htmlExtension is the extension of generated files.
const htmlExtension = ".html"

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md0.Input) (*md0.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md0.Converter)(nil)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	document bool
	title    string
	css      string
}

// runHTMLCmd parses html flags and runs the conversion.
func runHTMLCmd(ctx context.Context, args []string, env *Environment) error {
	flags, fs, positional, err := parseHTMLFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	return runHTML(ctx, positional, flags, fs.Changed, env)
}

// runHTML orchestrates the conversion process. changed reports whether a
// flag was set explicitly, so that false booleans can override config.
func runHTML(ctx context.Context, positional []string, flags *htmlFlags, changed func(string) bool, env *Environment) error {
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrTooManyArgs, len(positional))
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, changed, cfg)

	if err := validateWorkers(cfg.Workers); err != nil {
		return err
	}

	logger, err := newLogger(env, flags.common, cfg)
	if err != nil {
		return err
	}

	conv, err := newConverter(cfg, logger)
	if err != nil {
		return err
	}

	css, err := buildStylesheet(cfg.CSS)
	if err != nil {
		return err
	}

	params := &conversionParams{
		document: cfg.Output.Document,
		title:    cfg.Output.Title,
		css:      css,
	}

	inputPath := stdinArg
	if len(positional) == 1 {
		inputPath = positional[0]
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = cfg.Output.DefaultDir
	}

	if inputPath == stdinArg {
		return convertStdin(ctx, conv, flags.output, params, env)
	}

	files, err := discoverFiles(inputPath, outputPath)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	workers := resolveWorkers(cfg.Workers)
	logger.Debug().
		Int("files", len(files)).
		Int("workers", workers).
		Str("engine", string(conv.Engine())).
		Msg("starting conversion")

	results := convertBatch(ctx, conv, workers, files, params)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failedCount, len(results))
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *htmlFlags, changed func(string) bool, cfg *config.Config) {
	if flags.render.engine != "" {
		cfg.Engine = flags.render.engine
	}
	if changed("language-class") {
		cfg.Render.LanguageClass = flags.render.languageClass
	}
	if flags.render.highlight != "" {
		cfg.Render.Highlight = flags.render.highlight
	}
	if changed("document") {
		cfg.Output.Document = flags.document.enabled
	}
	if flags.document.title != "" {
		cfg.Output.Title = flags.document.title
	}
	if flags.document.style != "" {
		cfg.CSS.Style = flags.document.style
	}
	if flags.document.styleDir != "" {
		cfg.CSS.Dir = flags.document.styleDir
	}
	if flags.document.css != "" {
		cfg.CSS.File = flags.document.css
	}
	if changed("workers") {
		cfg.Workers = flags.workers
	}
}

// buildStylesheet joins the named style and the CSS file, in that order.
// Returns "" when neither is configured.
func buildStylesheet(cfg config.CSSConfig) (string, error) {
	var parts []string

	if cfg.Style != "" {
		resolver, err := assets.NewResolver(cfg.Dir)
		if err != nil {
			return "", err
		}
		style, err := resolver.LoadStyle(cfg.Style)
		if err != nil {
			if errors.Is(err, assets.ErrStyleNotFound) {
				return "", fmt.Errorf("%w%s", err, hints.ForUnknownStyle(assets.BuiltinStyles(), resolver.HasCustomLoader()))
			}
			return "", err
		}
		parts = append(parts, style)
	}

	css, err := readCSS(cfg.File)
	if err != nil {
		return "", err
	}
	if css != "" {
		parts = append(parts, css)
	}

	return strings.Join(parts, "\n"), nil
}

// readCSS returns the content of the CSS file, or "" when path is empty.
func readCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided CSS path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return string(data), nil
}

// convertStdin converts standard input. Output goes to stdout, or to
// outputPath when it names an .html file.
func convertStdin(ctx context.Context, conv CLIConverter, outputPath string, params *conversionParams, env *Environment) error {
	if outputPath != "" && !strings.EqualFold(filepath.Ext(outputPath), htmlExtension) {
		return fmt.Errorf("%w: --output %q%s", ErrInvalidExtension, outputPath, hints.ForStdinOutput())
	}

	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
	}

	result, err := conv.Convert(ctx, params.input(string(content), ""))
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := fileutil.WriteFile(outputPath, result.HTML); err != nil {
			return fmt.Errorf("%w: %w%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
		return nil
	}

	out := result.HTML
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	if _, err := env.Stdout.Write(out); err != nil {
		return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
	}
	return nil
}

// input builds a converter input for markdown read from sourceDir.
func (p *conversionParams) input(markdown, sourceDir string) md0.Input {
	return md0.Input{
		Markdown:  markdown,
		Document:  p.document,
		Title:     p.title,
		CSS:       p.css,
		SourceDir: sourceDir,
	}
}
