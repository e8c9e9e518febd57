// Package pipeline implements the stages around tokenization:
//   - Markdown preprocessing (line ending normalization, byte order mark removal)
//   - Reference Markdown to HTML conversion via Goldmark
//   - Standalone HTML document assembly with CSS injection
//
// Tokenization and token rendering live in the root md0 package. This package
// only holds the stages that wrap them, so both engines share one preprocessor
// and one document wrapper.
package pipeline
