package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"commtool/internal/comm"
)

// ConfigStore persists the single user-preferences record as
// config.json at the data root.
type ConfigStore struct {
	gateway comm.Gateway
	layout  Layout
}

// NewConfigStore creates a ConfigStore rooted at the layout's data root.
func NewConfigStore(gateway comm.Gateway, layout Layout) *ConfigStore {
	return &ConfigStore{gateway: gateway, layout: layout}
}

// Load returns the parsed preferences. On first run the backing file is
// absent: the documented defaults are persisted and returned (write
// through, not read-only default). Any other read failure propagates.
func (s *ConfigStore) Load() (comm.Configuration, error) {
	data, err := s.gateway.ReadFile(s.layout.ConfigFile())
	if err != nil {
		if errors.Is(err, comm.ErrNotFound) {
			defaults := comm.DefaultConfiguration()
			if err := s.Save(defaults); err != nil {
				return comm.Configuration{}, fmt.Errorf("bootstrapping default config: %w", err)
			}
			return defaults, nil
		}
		return comm.Configuration{}, fmt.Errorf("loading config: %w", err)
	}

	var cfg comm.Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return comm.Configuration{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save overwrites the preferences file, creating the data root first.
func (s *ConfigStore) Save(cfg comm.Configuration) error {
	if err := s.gateway.EnsureDir(s.layout.Root); err != nil {
		return fmt.Errorf("ensuring data root: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := s.gateway.WriteFile(s.layout.ConfigFile(), data); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// Compile-time check that ConfigStore implements comm.ConfigStore
var _ comm.ConfigStore = (*ConfigStore)(nil)
