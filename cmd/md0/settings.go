package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	md0 "github.com/alnah/go-md0"
	"github.com/alnah/go-md0/internal/config"
	"github.com/alnah/go-md0/internal/hints"
	"github.com/alnah/go-md0/internal/logging"
)

// ErrInvalidFlags indicates the command line could not be parsed.
var ErrInvalidFlags = errors.New("invalid flags")

// flagError wraps a pflag parse error so it maps to the usage exit code.
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}

// loadConfig returns the config named by --config, or the defaults.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !strings.ContainsAny(name, "/\\") {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger. --quiet caps output at errors.
func newLogger(env *Environment, common commonFlags, cfg *config.Config) (zerolog.Logger, error) {
	level, err := logging.ResolveLevel(cfg.Log.Level, common.verbose)
	if err != nil {
		return zerolog.Nop(), err
	}
	if common.quiet && level < zerolog.ErrorLevel {
		level = zerolog.ErrorLevel
	}
	return logging.New(env.Stderr, level), nil
}

// converterOptions translates config into converter options.
func converterOptions(cfg *config.Config, logger zerolog.Logger) []md0.Option {
	opts := []md0.Option{
		md0.WithEngine(md0.Engine(cfg.Engine)),
		md0.WithLogger(logger),
	}
	if cfg.Render.LanguageClass {
		opts = append(opts, md0.WithRenderOptions(md0.WithLanguageClass()))
	}
	if cfg.Render.Highlight != "" {
		opts = append(opts, md0.WithCodeHighlighting(cfg.Render.Highlight))
	}
	return opts
}

// newConverter builds a converter, adding a hint for unknown engines.
func newConverter(cfg *config.Config, logger zerolog.Logger) (*md0.Converter, error) {
	conv, err := md0.NewConverter(converterOptions(cfg, logger)...)
	if err != nil {
		if errors.Is(err, md0.ErrUnknownEngine) {
			return nil, fmt.Errorf("%w%s", err, hints.ForUnknownEngine(engineNames()))
		}
		return nil, err
	}
	return conv, nil
}

func engineNames() []string {
	engines := md0.Engines()
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = string(e)
	}
	return names
}
