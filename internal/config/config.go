// Package config loads and validates manstitch configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/statusd/manstitch/internal/fileutil"
	"github.com/statusd/manstitch/internal/pipeline"
	"github.com/statusd/manstitch/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidEngine   = errors.New("invalid converter engine")
	ErrInvalidLevel    = errors.New("invalid heading level")
	ErrEmptySection    = errors.New("section title cannot be empty")
)

// Config holds all configuration for manpage assembly.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Source    SourceConfig    `yaml:"source"`
	Docs      DocsConfig      `yaml:"docs"`
	Generator GeneratorConfig `yaml:"generator"`
	Converter ConverterConfig `yaml:"converter"`
	Sections  SectionsConfig  `yaml:"sections"`
	Inspect   InspectConfig   `yaml:"inspect"`
}

// OutputConfig defines the final manpage destination.
type OutputConfig struct {
	Path string `yaml:"path"` // final manpage ("" = built-in default)
}

// SourceConfig defines the source tree handed to the generator.
type SourceConfig struct {
	Dir string `yaml:"dir"` // source tree root (default ".")
}

// DocsConfig defines the documentation fragments.
type DocsConfig struct {
	Blocks   string `yaml:"blocks"`   // block-definitions Markdown, written by the generator
	Themes   string `yaml:"themes"`   // static themes Markdown
	Preface  string `yaml:"preface"`  // static roff preface
	Postface string `yaml:"postface"` // static roff postface
}

// GeneratorConfig defines the external documentation generator.
type GeneratorConfig struct {
	Command []string `yaml:"command"` // argv; source dir and blocks path are appended
	Dir     string   `yaml:"dir"`     // working directory ("" = inherit)
}

// ConverterConfig defines Markdown to roff conversion options.
type ConverterConfig struct {
	Engine                string `yaml:"engine"`                // "pandoc" or "builtin"
	PandocPath            string `yaml:"pandocPath"`            // pandoc binary ("" = found on PATH)
	ThemesBaseHeaderLevel int    `yaml:"themesBaseHeaderLevel"` // 1-6, default 2
}

// SectionsConfig defines the section titles inserted above fragments.
type SectionsConfig struct {
	Blocks string `yaml:"blocks"` // default "BLOCKS"
	Themes string `yaml:"themes"` // default "THEMES"
}

// InspectConfig defines how block names are collected from the
// generated documentation.
type InspectConfig struct {
	BlockHeadingLevel int `yaml:"blockHeadingLevel"` // 1-6, default 2
}

// DefaultConfig returns the configuration matching the conventional
// project layout.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{Dir: "."},
		Docs: DocsConfig{
			Blocks:   "doc/blocks.md",
			Themes:   "doc/themes.md",
			Preface:  "man/preface.roff",
			Postface: "man/postface.roff",
		},
		Generator: GeneratorConfig{
			Command: []string{"go", "run", "./docgen"},
		},
		Converter: ConverterConfig{
			Engine:                pipeline.EnginePandoc,
			ThemesBaseHeaderLevel: 2,
		},
		Sections: SectionsConfig{
			Blocks: "BLOCKS",
			Themes: "THEMES",
		},
		Inspect: InspectConfig{BlockHeadingLevel: 2},
	}
}

// Validate checks cross-field consistency. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	switch c.Converter.Engine {
	case "", pipeline.EnginePandoc, pipeline.EngineBuiltin:
		// valid
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)",
			ErrInvalidEngine, c.Converter.Engine, pipeline.EnginePandoc, pipeline.EngineBuiltin)
	}

	if lvl := c.Converter.ThemesBaseHeaderLevel; lvl != 0 && (lvl < 1 || lvl > 6) {
		return fmt.Errorf("%w: converter.themesBaseHeaderLevel %d (must be 1-6)", ErrInvalidLevel, lvl)
	}
	if lvl := c.Inspect.BlockHeadingLevel; lvl != 0 && (lvl < 1 || lvl > 6) {
		return fmt.Errorf("%w: inspect.blockHeadingLevel %d (must be 1-6)", ErrInvalidLevel, lvl)
	}

	if c.Sections.Blocks == "" || c.Sections.Themes == "" {
		return ErrEmptySection
	}

	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
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

	// Start from defaults so a sparse config file keeps the
	// conventional layout for everything it doesn't mention.
	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml. Tries locations in
// order: current directory, ~/.config/manstitch/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "manstitch", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
