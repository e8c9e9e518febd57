package md0

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Engine selects the Markdown to HTML implementation used by Converter.
type Engine string

// Engine constants.
const (
	// EngineNative tokenizes with Parse and renders with a Renderer.
	EngineNative Engine = "native"
	// EngineGoldmark converts with goldmark, a CommonMark implementation.
	// Results carry no tokens.
	EngineGoldmark Engine = "goldmark"
)

// Engines lists the supported engines.
func Engines() []Engine {
	return []Engine{EngineNative, EngineGoldmark}
}

// ParseEngine maps an engine name (case-insensitive) to an Engine.
// An empty name selects EngineNative.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineNative:
		return EngineNative, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Input contains conversion parameters.
type Input struct {
	Markdown  string // Markdown content; empty content is valid
	Document  bool   // Wrap the fragment in a standalone HTML5 page
	Title     string // Page title in document mode ("" = first heading of the output, then "Document")
	CSS       string // Extra CSS injected in document mode
	SourceDir string // Base for relative img/a references (goldmark engine only)
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	HTML   []byte // HTML fragment, or a full page when Input.Document is set
	Tokens Tokens // Token sequence (nil for EngineGoldmark)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout        time.Duration
	engine         Engine
	renderOptions  []RenderOption
	highlightStyle string
}

// defaultTimeout bounds a single conversion.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md0: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the conversion engine. NewConverter rejects unknown engines.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithRenderOptions configures the renderer used by EngineNative.
func WithRenderOptions(opts ...RenderOption) Option {
	return func(c *Converter) {
		c.cfg.renderOptions = append(c.cfg.renderOptions, opts...)
	}
}

// WithCodeHighlighting highlights fenced code with the named chroma style in
// both engines.
func WithCodeHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = style
	}
}

// WithLogger sets the diagnostic logger for the converter and its parser.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Converter) {
		c.log = logger
	}
}
