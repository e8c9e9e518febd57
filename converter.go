package md0

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-md0/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LineEndingPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.DocumentWrapper      = (*pipeline.HTML5Document)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter runs the conversion pipeline: preprocessing, tokenization and
// rendering (or goldmark), then optional document assembly.
// Create with NewConverter. A Converter is safe for concurrent use.
type Converter struct {
	cfg          converterConfig
	log          zerolog.Logger
	preprocessor pipeline.MarkdownPreprocessor
	parser       *Parser
	renderer     *Renderer
	converter    pipeline.HTMLConverter
	document     pipeline.DocumentWrapper
	cssInjector  pipeline.CSSInjector
}

// NewConverter creates a Converter. It fails only on an unknown engine.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{timeout: defaultTimeout, engine: EngineNative},
		log:          zerolog.Nop(),
		preprocessor: &pipeline.LineEndingPreprocessor{},
		document:     &pipeline.HTML5Document{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	c.parser = NewParser(WithParserLogger(c.log))

	renderOpts := c.cfg.renderOptions
	if c.cfg.highlightStyle != "" {
		renderOpts = append(renderOpts, WithHighlighting(c.cfg.highlightStyle))
	}
	c.renderer = NewRenderer(renderOpts...)

	if engine == EngineGoldmark {
		var gmOpts []pipeline.GoldmarkOption
		if c.cfg.highlightStyle != "" {
			gmOpts = append(gmOpts, pipeline.WithGoldmarkHighlighting(c.cfg.highlightStyle))
		}
		c.converter = pipeline.NewGoldmarkConverter(gmOpts...)
	}

	return c, nil
}

// Engine returns the engine the converter was built with.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// Convert runs the pipeline on input. Errors come only from cancellation,
// timeout, or the goldmark engine.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	start := time.Now()

	markdown := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &ConvertResult{}
	var fragment string

	switch c.cfg.engine {
	case EngineGoldmark:
		fragment, err = c.converter.ToHTML(ctx, markdown)
		if err != nil {
			return nil, fmt.Errorf("converting to HTML: %w", err)
		}
		fragment, err = pipeline.RewriteRelativeURLs(fragment, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPathRewrite, err)
		}
	default:
		res.Tokens = c.parser.Parse(markdown)
		fragment = c.renderer.Render(res.Tokens)
	}

	if input.Document {
		title := input.Title
		if title == "" {
			if c.cfg.engine == EngineGoldmark {
				title = pipeline.FirstHeadingText(fragment)
			} else {
				title = firstHeading(res.Tokens)
			}
		}
		fragment = c.document.WrapDocument(ctx, fragment, title)
		fragment = c.cssInjector.InjectCSS(ctx, fragment, c.stylesheet(input.CSS))
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.log.Debug().
		Str("engine", string(c.cfg.engine)).
		Int("tokens", len(res.Tokens)).
		Int("bytes", len(fragment)).
		Dur("elapsed", time.Since(start)).
		Msg("converted")

	res.HTML = []byte(fragment)
	return res, nil
}

// stylesheet combines highlight CSS with user CSS. User CSS comes last so it
// can override.
func (c *Converter) stylesheet(userCSS string) string {
	css := c.renderer.HighlightCSS()
	if userCSS != "" {
		if css != "" {
			css += "\n"
		}
		css += userCSS
	}
	return css
}

// firstHeading returns the content of the first Heading token, or "".
func firstHeading(tokens Tokens) string {
	for _, t := range tokens {
		if h, ok := t.(Heading); ok {
			return h.Content
		}
	}
	return ""
}
