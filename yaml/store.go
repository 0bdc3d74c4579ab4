// Package yaml implements sitemd.ConfigStore using YAML files on disk.
package yaml

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/sitemd"
	"gopkg.in/yaml.v3"
)

var _ sitemd.ConfigStore = (*Store)(nil)

// Store loads and persists conversion configs as YAML files.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and validates the config at path.
func (s *Store) Load(path string) (*sitemd.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sitemd.Errorf(sitemd.ENOTFOUND, "config not found: %s", path)
		}
		return nil, err
	}

	var config sitemd.Config
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, sitemd.Errorf(sitemd.EINVALID, "malformed config %s: %v", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save writes the config to path, creating parent directories as needed.
func (s *Store) Save(path string, config *sitemd.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	raw, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0644)
}
