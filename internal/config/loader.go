package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".credaudit.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .credaudit.yaml configuration file.
// Every field is optional; CLI flags override any value loaded from the file.
//
// Pointer fields distinguish "not set" from a zero value, so a config file
// can explicitly set exclude_local: false without being mistaken for absent.
type File struct {
	// MinLength is the password length threshold for the result view.
	MinLength *int `yaml:"min_length,omitempty"`

	// Issues is the issue filter: "all", "reuse", or "weak".
	Issues string `yaml:"issues,omitempty"`

	// Sort is the result ordering: "risk", "reuse", or "domain".
	Sort string `yaml:"sort,omitempty"`

	// ExcludeLocal drops localhost and private-network entries.
	ExcludeLocal *bool `yaml:"exclude_local,omitempty"`

	// Mask hides usernames and domains in human-readable reports.
	Mask *bool `yaml:"mask,omitempty"`
}

// Apply copies the file's settings into cfg, skipping any field already
// changed on the command line. The changed function reports whether the
// named flag was explicitly set by the user; cobra's Flags().Changed
// satisfies this signature.
func (cf *File) Apply(cfg *Config, changed func(name string) bool) {
	if cf.MinLength != nil && !changed("min-length") {
		cfg.MinLength = *cf.MinLength
	}
	if cf.Issues != "" && !changed("issues") {
		cfg.IssueMode = cf.Issues
	}
	if cf.Sort != "" && !changed("sort") {
		cfg.SortMode = cf.Sort
	}
	if cf.ExcludeLocal != nil && !changed("exclude-local") {
		cfg.ExcludeLocal = *cf.ExcludeLocal
	}
	if cf.Mask != nil && !changed("mask") {
		cfg.MaskOutput = *cf.Mask
	}
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .credaudit.yaml in the current directory
// 3. Look for .credaudit.yaml in the user's home directory
// 4. Look for .credaudit.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
