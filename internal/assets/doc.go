// Package assets provides the stylesheets injected into standalone HTML pages.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - styles from a custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// A custom directory holds one {name}.css file per style. A style found there
// overrides the built-in style of the same name.
//
// # Security
//
// Style names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within its directory.
package assets
