package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md0/internal/fileutil"
	"github.com/alnah/go-md0/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// appDirName is the directory searched under the user config directory.
const appDirName = "go-md0"

// Field length limits.
const (
	MaxTitleLength = 200  // Document title
	MaxPathLength  = 4096 // File and directory paths
	MaxStyleLength = 50   // Chroma or stylesheet style name
)

// Worker bounds; 0 means auto.
const (
	MinWorkers = 0
	MaxWorkers = 8
)

// Engine names accepted in config files.
var validEngines = []string{"native", "goldmark"}

// Log levels accepted in config files.
var validLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// Config holds all CLI configuration.
type Config struct {
	Engine  string       `yaml:"engine"`  // "native" (default) or "goldmark"
	Workers int          `yaml:"workers"` // 0 = auto
	Output  OutputConfig `yaml:"output"`
	Render  RenderConfig `yaml:"render"`
	CSS     CSSConfig    `yaml:"css"`
	Log     LogConfig    `yaml:"log"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the source file
	Document   bool   `yaml:"document"`   // Wrap output in a standalone HTML5 page
	Title      string `yaml:"title"`      // Page title (empty = first heading)
}

// RenderConfig defines renderer extensions.
type RenderConfig struct {
	LanguageClass bool   `yaml:"languageClass"` // class="language-X" on code blocks
	Highlight     string `yaml:"highlight"`     // Chroma style name (empty = off)
}

// CSSConfig defines stylesheet options for document mode.
type CSSConfig struct {
	Style string `yaml:"style"` // Named style, built-in or from Dir (empty = none)
	Dir   string `yaml:"dir"`   // Directory of custom {name}.css styles
	File  string `yaml:"file"`  // Path to a CSS file injected after Style
}

// LogConfig defines diagnostic logging options.
type LogConfig struct {
	Level string `yaml:"level"` // Empty = warn, or debug with --verbose
}

// Validate checks enumerations, ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Engine != "" && !containsFold(validEngines, c.Engine) {
		return fmt.Errorf("%w: engine %q (must be one of %s)", ErrInvalidValue, c.Engine, strings.Join(validEngines, ", "))
	}
	if c.Log.Level != "" && !containsFold(validLogLevels, c.Log.Level) {
		return fmt.Errorf("%w: log.level %q (must be one of %s)", ErrInvalidValue, c.Log.Level, strings.Join(validLogLevels, ", "))
	}
	if c.Workers < MinWorkers || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers %d (must be between %d and %d)", ErrInvalidValue, c.Workers, MinWorkers, MaxWorkers)
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.title", c.Output.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.highlight", c.Render.Highlight, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.style", c.CSS.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.dir", c.CSS.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.file", c.CSS.File, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Engine: "native",
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
