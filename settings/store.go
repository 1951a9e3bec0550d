package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDirName is the directory under the user config dir holding settings and fonts
const AppDirName = "drift-clock"

// FileName is the settings file name inside the app directory
const FileName = "settings.yaml"

// Store reads and writes settings at a fixed path
type Store struct {
	path string
}

// NewStore creates a store for the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/drift-clock/settings.yaml (or the OS equivalent)
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, FileName), nil
}

// Path returns the backing file path
func (s *Store) Path() string { return s.path }

// Dir returns the directory holding the settings file
func (s *Store) Dir() string { return filepath.Dir(s.path) }

// Load reads the settings file; a missing file yields defaults.
// Keys absent from the file keep their default values.
func (s *Store) Load() (*Settings, error) {
	cfg := Default()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes the settings atomically via a temp file and rename
func (s *Store) Save(cfg *Settings) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Dir(), err)
	}

	tmp, err := os.CreateTemp(s.Dir(), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
