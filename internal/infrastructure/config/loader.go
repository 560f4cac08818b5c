package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up by Loader.Load
const FileName = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads game.yaml
func (l *Loader) Load() (*Config, error) {
	return l.LoadNamed(FileName)
}

// LoadNamed reads a config file by name relative to the loader root
func (l *Loader) LoadNamed(name string) (*Config, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(l.basePath, name), err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Join(l.basePath, name), err)
	}
	return cfg, nil
}

// LoadFile reads a config file from an arbitrary path
func LoadFile(path string) (*Config, error) {
	return NewLoader(filepath.Dir(path)).LoadNamed(filepath.Base(path))
}

// Parse decodes YAML over the defaults and validates the result.
// Fields missing from data keep their default value.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
