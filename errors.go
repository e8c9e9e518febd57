package md0

import (
	"errors"

	"github.com/alnah/go-md0/internal/pipeline"
)

// Sentinel errors for converter operations.
// Parse and TokensToHTML never fail; these only come from Converter.
var (
	ErrUnknownEngine  = errors.New("unknown engine")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPathRewrite    = errors.New("rewriting relative paths failed")
)
