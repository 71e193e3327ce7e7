package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the generator settings, merged from command-line flags
// and the optional yaml configuration file.
type Config struct {
	// InputDir is the root directory of assets to embed.
	InputDir string `yaml:"input_dir"`
	// OutputDir is the destination directory for generated files. It is
	// created (including parents) if absent.
	OutputDir string `yaml:"output_dir"`
	// Namespace is the C++ namespace wrapping the generated declarations.
	// Nested namespaces may be given with "::" separators.
	Namespace string `yaml:"namespace"`
	// HeaderFile is the generated header file name.
	HeaderFile string `yaml:"header_file"`
	// SourceFile is the generated implementation file name.
	SourceFile string `yaml:"source_file"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. If empty, logs go to stderr.
	Path string `yaml:"path"`
}

// Load reads and parses a yaml configuration file.
//
// Returns:
//   - *Config: The parsed configuration.
//   - error: An error if the file is missing or not valid yaml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Namespace == "" {
		config.Namespace = "Resources"
	}
	if config.HeaderFile == "" {
		config.HeaderFile = "embedded_resources.h"
	}
	if config.SourceFile == "" {
		config.SourceFile = "embedded_resources.cpp"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// identifierPattern is the symbol grammar each namespace segment must match.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the configuration for errors, such as a malformed namespace
// or output file names that escape the output directory.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.InputDir == "" {
		return fmt.Errorf("input directory is required (--input-dir)")
	}
	if config.OutputDir == "" {
		return fmt.Errorf("output directory is required (--output-dir)")
	}

	for _, seg := range strings.Split(config.Namespace, "::") {
		if !identifierPattern.MatchString(seg) {
			return fmt.Errorf("invalid namespace: %s (each ::-separated segment must match %s)", config.Namespace, identifierPattern)
		}
	}

	for _, name := range []string{config.HeaderFile, config.SourceFile} {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("invalid file name: %s (must not contain path separators)", name)
		}
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}
