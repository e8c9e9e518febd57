package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	md0 "github.com/alnah/go-md0"
	"github.com/alnah/go-md0/internal/hints"
	"github.com/alnah/go-md0/internal/yamlutil"
)

// Sentinel errors for the tokens command.
var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrTokensEngine  = errors.New("tokens require the native engine")
)

// Token output formats.
const (
	formatDebug = "debug"
	formatYAML  = "yaml"
)

var tokenFormats = []string{formatDebug, formatYAML}

// tokenRecord is the YAML form of a token.
type tokenRecord struct {
	Kind     string           `yaml:"kind"`
	Level    int              `yaml:"level,omitempty"`
	Language string           `yaml:"language,omitempty"`
	Content  string           `yaml:"content,omitempty"`
	Metadata []metadataRecord `yaml:"metadata,omitempty"`
}

// metadataRecord is the YAML form of a link or image.
type metadataRecord struct {
	Kind  string `yaml:"kind"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// runTokensCmd parses tokens flags and prints the token stream.
func runTokensCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseTokensFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	return runTokens(ctx, positional, flags, env)
}

// runTokens tokenizes one input and writes it to stdout in the chosen format.
func runTokens(ctx context.Context, positional []string, flags *tokensFlags, env *Environment) error {
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrTooManyArgs, len(positional))
	}

	format := strings.ToLower(flags.format)
	if format != formatDebug && format != formatYAML {
		return fmt.Errorf("%w: %q%s", ErrUnknownFormat, flags.format, hints.ForUnknownFormat(tokenFormats))
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if engine, err := md0.ParseEngine(cfg.Engine); err == nil && engine != md0.EngineNative {
		return fmt.Errorf("%w: config selects %q", ErrTokensEngine, cfg.Engine)
	}

	logger, err := newLogger(env, flags.common, cfg)
	if err != nil {
		return err
	}

	content, err := readInput(positional, env.Stdin)
	if err != nil {
		return err
	}

	conv, err := md0.NewConverter(md0.WithLogger(logger))
	if err != nil {
		return err
	}
	result, err := conv.Convert(ctx, md0.Input{Markdown: content})
	if err != nil {
		return err
	}

	var out string
	switch format {
	case formatYAML:
		data, err := yamlutil.Marshal(tokenRecords(result.Tokens))
		if err != nil {
			return fmt.Errorf("encoding tokens: %w", err)
		}
		out = string(data)
	default:
		out = result.Tokens.String()
		if out != "" {
			out += "\n"
		}
	}

	if _, err := io.WriteString(env.Stdout, out); err != nil {
		return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
	}
	return nil
}

// readInput reads the named markdown file, or stdin for "" and "-".
func readInput(positional []string, stdin io.Reader) (string, error) {
	if len(positional) == 0 || positional[0] == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
		}
		return string(data), nil
	}

	path := positional[0]
	if err := validateMarkdownExtension(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// tokenRecords converts tokens to their YAML records.
func tokenRecords(tokens md0.Tokens) []tokenRecord {
	records := make([]tokenRecord, 0, len(tokens))
	for _, t := range tokens {
		rec := tokenRecord{Kind: t.Kind().String()}
		switch v := t.(type) {
		case md0.Heading:
			rec.Level = v.Level
			rec.Content = v.Content
		case md0.Paragraph:
			rec.Content = v.Content
			for _, m := range v.Metadata {
				rec.Metadata = append(rec.Metadata, metadataRecordOf(m))
			}
		case md0.Code:
			rec.Language = v.Language
			rec.Content = v.Content
		}
		records = append(records, rec)
	}
	return records
}

func metadataRecordOf(m md0.Metadata) metadataRecord {
	rec := metadataRecord{
		Kind:  m.Kind().String(),
		Start: m.Location().Start,
		End:   m.Location().End,
	}
	switch v := m.(type) {
	case md0.Link:
		rec.Label, rec.URL = v.Label, v.URL
	case md0.Image:
		rec.Label, rec.URL = v.Label, v.URL
	}
	return rec
}
