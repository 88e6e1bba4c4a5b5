package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration, or returns defaults when the file
	// is missing or unparsable. In the fallback case the returned warning
	// is non-nil and describes why defaults were substituted; the fallback
	// itself is never an error.
	LoadOrDefault(path string) (cfg *Config, warn error)
}

// FileLoader implements the Loader interface over an afero filesystem.
type FileLoader struct {
	fs afero.Fs
}

// NewLoader creates a FileLoader backed by the given filesystem.
func NewLoader(fsys afero.Fs) Loader {
	return &FileLoader{fs: fsys}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
	}

	if cfg.AddonsDirectory == "" {
		cfg.AddonsDirectory = DefaultAddonsDirectory
	}
	if cfg.WhitelistedAddons == nil {
		cfg.WhitelistedAddons = []string{}
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration or falls back to defaults.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration as indented JSON to the specified path,
// creating parent directories as needed.
func Save(fsys afero.Fs, path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to create directory", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to marshal configuration", err)
	}
	data = append(data, '\n')

	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to write configuration", err)
	}
	return nil
}
