// Package config handles md2letter configuration file loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/connerohnesorge/md2letter/internal/theme"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultIndent is the number of spaces per Script Tree depth level
	// used by the serialiser when no config file overrides it.
	DefaultIndent = 4
	// ConfigFileName is the name of the md2letter configuration file.
	ConfigFileName = "md2letter.yaml"
	// DefaultTheme is the color theme name used by the preview TUI.
	DefaultTheme = "default"
)

// Config holds the md2letter configuration.
type Config struct {
	// Indent is the number of spaces per Script Tree depth level.
	Indent int `yaml:"indent"`
	// Languages normalizes code-fence language identifiers (e.g. "js" ->
	// "javascript") before they become a Code node's Language attribute.
	Languages map[string]string `yaml:"languages"`
	// Theme names the color theme used by the preview TUI.
	Theme string `yaml:"theme"`
	// ProjectRoot is the absolute directory the config file was found in,
	// or the starting directory if no config file was found.
	ProjectRoot string `yaml:"-"`
}

// Load searches for md2letter.yaml starting from the current working
// directory, walking up the directory tree. If found, it parses the
// configuration. If not found, returns default configuration.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromPath(cwd)
}

// LoadFromPath searches for md2letter.yaml starting from the given path,
// walking up the directory tree. If found, it parses the configuration.
// If not found, returns default configuration with startPath as ProjectRoot.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to resolve absolute path for %q: %w",
			startPath,
			err,
		)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)

		if _, err := os.Stat(configPath); err == nil {
			cfg, err := parseConfigFile(configPath)
			if err != nil {
				return nil, err
			}
			cfg.ProjectRoot = currentPath

			if err := cfg.validate(); err != nil {
				return nil, fmt.Errorf(
					"invalid configuration in %s: %w",
					configPath,
					err,
				)
			}

			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return &Config{
		Indent:      DefaultIndent,
		Theme:       DefaultTheme,
		ProjectRoot: absPath,
	}, nil
}

// parseConfigFile reads and parses a md2letter.yaml file.
func parseConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var yamlErr *yaml.TypeError
		if errors.As(err, &yamlErr) {
			return nil, fmt.Errorf("invalid YAML syntax: %v", yamlErr.Errors)
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Indent == 0 {
		cfg.Indent = DefaultIndent
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}

	return &cfg, nil
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.Indent < 0 {
		return errors.New("indent cannot be negative")
	}

	if _, err := theme.Get(c.Theme); err != nil {
		available := theme.Available()

		return fmt.Errorf(
			"invalid theme '%s', available themes: %v",
			c.Theme,
			available,
		)
	}

	return nil
}

// Normalize looks up a code-fence language identifier in the configured
// alias table, returning it unchanged if there is no entry for it.
func (c *Config) Normalize(language string) string {
	if c == nil || c.Languages == nil {
		return language
	}
	if normalized, ok := c.Languages[language]; ok {
		return normalized
	}
	return language
}
