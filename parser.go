package md0

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// Block patterns, compiled once at package initialization.
var (
	// 1-6 hashes, whitespace, then the heading text.
	atxHeadingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

	// Three backticks, an optional language tag, optional trailing whitespace.
	fenceOpenPattern = regexp.MustCompile("^```([A-Za-z0-9+_-]*)\\s*$")
)

const (
	fenceMarker = "```"
	dashMarker  = "---"
)

// Line classes reported by the diagnostic log.
const (
	lineBlank   = "blank"
	lineHeading = "heading"
	lineDash    = "dash"
	lineFence   = "fence"
	lineText    = "text"
)

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithParserLogger routes per-line diagnostics to logger.
// Lines are logged at debug level, emitted tokens at trace level.
func WithParserLogger(logger zerolog.Logger) ParserOption {
	return func(p *Parser) {
		p.log = logger
	}
}

// Parser tokenizes Markdown text. The zero value is not usable; use NewParser.
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	log zerolog.Logger
}

// NewParser creates a Parser. Diagnostics are disabled unless WithParserLogger is given.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse tokenizes text with a parser that has diagnostics disabled.
// It never fails: every input yields some token sequence, and empty input
// yields an empty one.
func Parse(text string) Tokens {
	return defaultParser.Parse(text)
}

// Parse tokenizes text in a single forward pass over its lines.
func (p *Parser) Parse(text string) Tokens {
	s := &scanner{
		lines: strings.Split(text, "\n"),
		log:   p.log,
	}
	s.run()
	return s.tokens
}

// scanner holds the state of one Parse call.
type scanner struct {
	lines  []string
	i      int
	buf    []string
	tokens Tokens
	log    zerolog.Logger
}

func (s *scanner) run() {
	for s.i < len(s.lines) {
		line := s.lines[s.i]

		if line == "" {
			s.trace(lineBlank)
			s.i++
			continue
		}

		if m := atxHeadingPattern.FindStringSubmatch(line); m != nil {
			s.trace(lineHeading)
			s.emit(Heading{Level: len(m[1]), Content: strings.TrimSpace(m[2])})
			s.i++
			continue
		}

		s.collect()
	}
}

// collect accumulates paragraph lines starting at the current line until a
// blank line, a dash line, a code fence, or the end of input.
func (s *scanner) collect() {
	for s.i < len(s.lines) {
		line := s.lines[s.i]

		switch {
		case strings.TrimSpace(line) == "":
			s.trace(lineBlank)
			s.i++
			s.flush(s.buf)
			s.buf = s.buf[:0]
			return

		case isDashLine(line):
			s.trace(lineDash)
			s.i++
			s.resolveDash()
			return

		case fenceOpenPattern.MatchString(line):
			s.trace(lineFence)
			s.flush(s.buf)
			s.buf = s.buf[:0]
			s.captureCode(fenceOpenPattern.FindStringSubmatch(line)[1])
			return
		}

		s.trace(lineText)
		s.buf = append(s.buf, line)
		s.i++
	}

	s.flush(s.buf)
	s.buf = s.buf[:0]
}

// resolveDash handles a dash line: a horizontal rule when nothing is buffered,
// otherwise the last buffered line becomes a setext heading and any earlier
// lines form a separate paragraph.
func (s *scanner) resolveDash() {
	if len(s.buf) == 0 {
		s.emit(HorizontalRule{})
		return
	}

	last := len(s.buf) - 1
	s.flush(s.buf[:last])
	s.emit(Heading{Level: 1, Content: strings.TrimSpace(s.buf[last])})
	s.buf = s.buf[:0]
}

// captureCode consumes lines after an opening fence up to the closing fence.
// An unterminated fence takes the rest of the input.
func (s *scanner) captureCode(language string) {
	s.i++

	var b strings.Builder
	for s.i < len(s.lines) {
		line := s.lines[s.i]
		s.i++
		if strings.TrimSpace(line) == fenceMarker {
			s.emit(Code{Language: language, Content: b.String()})
			return
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	s.log.Debug().Str("language", language).Msg("unterminated code fence")
	s.emit(Code{Language: language, Content: b.String()})
}

// flush emits lines as a Paragraph. Nothing is emitted for an empty slice.
func (s *scanner) flush(lines []string) {
	if len(lines) == 0 {
		return
	}
	content := strings.Join(lines, " ")
	s.emit(Paragraph{Content: content, Metadata: ExtractMetadata(content)})
}

func (s *scanner) emit(t Token) {
	s.log.Trace().Stringer("token", t).Msg("emit")
	s.tokens = append(s.tokens, t)
}

func (s *scanner) trace(kind string) {
	s.log.Debug().Int("line", s.i).Str("kind", kind).Msg("classify")
}

// isDashLine reports whether line is three or more dashes and nothing else.
func isDashLine(line string) bool {
	return strings.HasPrefix(line, dashMarker) && strings.Trim(line, "-") == ""
}
