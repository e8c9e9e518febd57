package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds flags that shape the generated markup.
type renderFlags struct {
	engine        string
	languageClass bool
	highlight     string
}

// documentFlags holds standalone page flags.
type documentFlags struct {
	enabled  bool
	title    string
	style    string
	styleDir string
	css      string
}

// htmlFlags holds all flags for the html command.
type htmlFlags struct {
	common   commonFlags
	render   renderFlags
	document documentFlags
	output   string
	workers  int
}

// tokensFlags holds all flags for the tokens command.
type tokensFlags struct {
	common commonFlags
	format string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show diagnostics and timing")
}

// addRenderFlags adds renderer flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "conversion engine: native, goldmark")
	fs.BoolVar(&f.languageClass, "language-class", false, "add class=\"language-X\" to code blocks")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for syntax highlighting")
}

// addDocumentFlags adds standalone page flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.enabled, "document", false, "wrap output in a standalone HTML5 page")
	fs.StringVar(&f.title, "title", "", "page title (\"\" = first heading)")
	fs.StringVar(&f.style, "style", "", "named stylesheet injected into the page")
	fs.StringVar(&f.styleDir, "style-dir", "", "directory of custom {name}.css styles")
	fs.StringVar(&f.css, "css", "", "CSS file injected after the style")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// newHTMLFlagSet registers html command flags into f.
func newHTMLFlagSet(f *htmlFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("html", printHTMLUsage, stderr)

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addDocumentFlags(fs, &f.document)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	return fs
}

// newTokensFlagSet registers tokens command flags into f.
func newTokensFlagSet(f *tokensFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("tokens", printTokensUsage, stderr)

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.format, "format", "f", formatDebug, "output format: debug, yaml")
	return fs
}

// parseHTMLFlags parses html command flags and returns remaining positional args.
func parseHTMLFlags(args []string, stderr io.Writer) (*htmlFlags, *flag.FlagSet, []string, error) {
	f := &htmlFlags{}
	fs := newHTMLFlagSet(f, stderr)

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	return f, fs, fs.Args(), nil
}

// parseTokensFlags parses tokens command flags and returns remaining positional args.
func parseTokensFlags(args []string, stderr io.Writer) (*tokensFlags, []string, error) {
	f := &tokensFlags{}
	fs := newTokensFlagSet(f, stderr)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
