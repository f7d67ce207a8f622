// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the project root
// when CLIPBOOT_CONFIG is not set.
const DefaultFileName = "clipboot.yaml"

// Config is the bootstrap pipeline configuration.
type Config struct {
	// Paths configures the filesystem contract with the target
	// application: all paths are relative to the project root.
	Paths PathsConfig `yaml:"paths"`

	// Runtime configures interpreter discovery.
	Runtime RuntimeConfig `yaml:"runtime"`

	// Provision configures the dependency-installation stage.
	Provision ProvisionConfig `yaml:"provision"`
}

// PathsConfig configures the fixed relative paths the bootstrapper
// reads and creates.
type PathsConfig struct {
	// Marker is the file whose presence identifies the project root.
	// The bootstrapper refuses to run from any directory that does
	// not contain it.
	Marker string `yaml:"marker"`

	// Manifest is the dependency manifest passed to the installer.
	Manifest string `yaml:"manifest"`

	// Workspace is the directory the target application expects to
	// exist for writable output. Created if missing, never deleted.
	Workspace string `yaml:"workspace"`
}

// RuntimeConfig configures interpreter discovery.
type RuntimeConfig struct {
	// Interpreters are candidate interpreter names probed on PATH in
	// preference order. Empty means "use the platform default"
	// (python3 then python on unix, py then python on windows).
	Interpreters []string `yaml:"interpreters"`
}

// ProvisionConfig configures the dependency-installation stage.
type ProvisionConfig struct {
	// SkipUnchanged skips the installer when the manifest content
	// hash matches the stamp recorded by a previous successful run.
	SkipUnchanged bool `yaml:"skip_unchanged"`
}

// Default returns the default configuration, describing the Crypto
// Clipboard project layout.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Marker:    "cli_main.py",
			Manifest:  "requirements.txt",
			Workspace: "output",
		},
		Provision: ProvisionConfig{
			SkipUnchanged: true,
		},
	}
}

// Load loads the configuration. The file named by CLIPBOOT_CONFIG is
// used when set (and must exist); otherwise clipboot.yaml in the
// current directory is used when present; otherwise the defaults are
// returned as-is.
func Load() (*Config, error) {
	if path := os.Getenv("CLIPBOOT_CONFIG"); path != "" {
		return LoadFile(path)
	}

	if _, err := os.Stat(DefaultFileName); err == nil {
		return LoadFile(DefaultFileName)
	}

	return Default(), nil
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// StampPath returns the path of the provisioning stamp file. It lives
// inside the workspace so a fresh checkout (no workspace yet) always
// provisions.
func (c *Config) StampPath() string {
	return filepath.Join(c.Paths.Workspace, ".provision-stamp")
}

// validate rejects configurations the pipeline cannot act on.
func (c *Config) validate() error {
	if c.Paths.Marker == "" {
		return fmt.Errorf("paths.marker must not be empty")
	}
	if c.Paths.Manifest == "" {
		return fmt.Errorf("paths.manifest must not be empty")
	}
	if c.Paths.Workspace == "" {
		return fmt.Errorf("paths.workspace must not be empty")
	}
	return nil
}
