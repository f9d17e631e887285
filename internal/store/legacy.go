package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"commtool/internal/comm"
)

// LegacyStore reads and writes the legacy flat-array comms.json file.
// It exists as a migration source; the per-folder entity store is the
// current write path.
type LegacyStore struct {
	gateway comm.Gateway
	layout  Layout
}

// NewLegacyStore creates a LegacyStore over the flat-array file.
func NewLegacyStore(gateway comm.Gateway, layout Layout) *LegacyStore {
	return &LegacyStore{gateway: gateway, layout: layout}
}

// LoadRaw returns the raw legacy records, preserving fields the current
// model does not know about. An absent file bootstraps an empty array
// on disk and returns no records.
func (s *LegacyStore) LoadRaw() ([]comm.LegacyRecord, error) {
	data, err := s.readOrBootstrap()
	if err != nil {
		return nil, err
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parsing legacy comms file: %w", err)
	}

	records := make([]comm.LegacyRecord, 0, len(raws))
	for _, raw := range raws {
		var idHolder struct {
			ID string `json:"id"`
		}
		// A record that is not an object, or has no id, still gets an
		// entry; migration reports it as a per-record failure.
		_ = json.Unmarshal(raw, &idHolder)
		records = append(records, comm.LegacyRecord{ID: idHolder.ID, Raw: raw})
	}
	return records, nil
}

// Load parses the flat-array file into entities.
func (s *LegacyStore) Load() ([]comm.Comm, error) {
	data, err := s.readOrBootstrap()
	if err != nil {
		return nil, err
	}

	var comms []comm.Comm
	if err := json.Unmarshal(data, &comms); err != nil {
		return nil, fmt.Errorf("parsing legacy comms file: %w", err)
	}
	return comms, nil
}

// Save overwrites the flat-array file with the given entities.
func (s *LegacyStore) Save(comms []comm.Comm) error {
	if err := s.gateway.EnsureDir(s.layout.Root); err != nil {
		return fmt.Errorf("ensuring data root: %w", err)
	}
	if comms == nil {
		comms = []comm.Comm{}
	}
	data, err := json.MarshalIndent(comms, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding legacy comms: %w", err)
	}
	if err := s.gateway.WriteFile(s.layout.LegacyFile(), data); err != nil {
		return fmt.Errorf("saving legacy comms: %w", err)
	}
	return nil
}

// Backup copies the flat-array file to the backup filename.
func (s *LegacyStore) Backup() error {
	if err := s.gateway.CopyFile(s.layout.LegacyFile(), s.layout.LegacyBackupFile()); err != nil {
		return fmt.Errorf("backing up legacy comms: %w", err)
	}
	return nil
}

func (s *LegacyStore) readOrBootstrap() ([]byte, error) {
	data, err := s.gateway.ReadFile(s.layout.LegacyFile())
	if err != nil {
		if errors.Is(err, comm.ErrNotFound) {
			empty := []byte("[]")
			if err := s.gateway.EnsureDir(s.layout.Root); err != nil {
				return nil, fmt.Errorf("ensuring data root: %w", err)
			}
			if err := s.gateway.WriteFile(s.layout.LegacyFile(), empty); err != nil {
				return nil, fmt.Errorf("bootstrapping legacy comms file: %w", err)
			}
			return empty, nil
		}
		return nil, fmt.Errorf("loading legacy comms: %w", err)
	}
	return data, nil
}

// Compile-time check that LegacyStore implements comm.LegacyStore
var _ comm.LegacyStore = (*LegacyStore)(nil)
