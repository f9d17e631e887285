package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"commtool/internal/comm"
)

// EntityStore owns the canonical per-entity records: one folder per
// commission under the entities root, each holding a comm.json record
// file, plus reconciliation against the legacy flat-array file.
type EntityStore struct {
	gateway comm.Gateway
	layout  Layout
	legacy  comm.LegacyStore
	logger  comm.Logger
}

// NewEntityStore creates an EntityStore over the entities root.
func NewEntityStore(gateway comm.Gateway, layout Layout, legacy comm.LegacyStore, logger comm.Logger) *EntityStore {
	return &EntityStore{gateway: gateway, layout: layout, legacy: legacy, logger: logger}
}

// Save writes the full entity record into its folder, creating the
// folder if absent. The record overwrites whatever was there before.
// Field-level validation is the caller's responsibility; the store
// accepts any record with an id.
func (s *EntityStore) Save(c *comm.Comm) error {
	if c == nil || c.ID == "" {
		return fmt.Errorf("%w: comm id is required", comm.ErrInvalidArgument)
	}

	if err := s.gateway.EnsureDir(s.layout.EntityDir(c.ID)); err != nil {
		return fmt.Errorf("creating comm folder: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding comm record: %w", err)
	}
	if err := s.gateway.WriteFile(s.layout.RecordFile(c.ID), data); err != nil {
		return fmt.Errorf("writing comm record: %w", err)
	}
	return nil
}

// LoadAll scans the entities root for folders matching an entity id
// shape and collects every successfully parsed record. A folder whose
// record is missing or corrupt is skipped and logged, never aborts the
// whole load.
func (s *EntityStore) LoadAll() ([]comm.Comm, error) {
	names, err := s.gateway.ListDir(s.layout.EntitiesDir())
	if err != nil {
		return nil, fmt.Errorf("listing comms folder: %w", err)
	}

	comms := make([]comm.Comm, 0, len(names))
	for _, name := range names {
		if !comm.IsEntityFolder(name) {
			continue
		}
		data, err := s.gateway.ReadFile(s.layout.RecordFile(name))
		if err != nil {
			s.logger.Warn("skipping comm folder without readable record", "folder", name, "error", err)
			continue
		}
		var c comm.Comm
		if err := json.Unmarshal(data, &c); err != nil {
			s.logger.Warn("skipping comm folder with corrupt record", "folder", name, "error", err)
			continue
		}
		comms = append(comms, c)
	}
	return comms, nil
}

// Delete removes the entity's entire folder tree. Idempotent: a folder
// that is already gone is success.
func (s *EntityStore) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("%w: comm id is required", comm.ErrInvalidArgument)
	}
	if err := s.gateway.RemoveTree(s.layout.EntityDir(id)); err != nil {
		return fmt.Errorf("deleting comm folder: %w", err)
	}
	return nil
}

// MigrateLegacy turns each legacy flat-array record into a per-folder
// record. One record's failure does not stop the rest; the summary
// counts successes individually. Afterward the legacy file is copied to
// its backup name, best effort. An unreadable legacy file yields an
// empty summary, not an error.
func (s *EntityStore) MigrateLegacy() (comm.MigrationSummary, error) {
	records, err := s.legacy.LoadRaw()
	if err != nil {
		s.logger.Warn("legacy comms file unreadable, nothing to migrate", "error", err)
		return comm.MigrationSummary{}, nil
	}

	summary := comm.MigrationSummary{Total: len(records)}
	for i, rec := range records {
		if err := s.migrateRecord(rec); err != nil {
			name := rec.ID
			if name == "" {
				name = fmt.Sprintf("record %d", i)
			}
			summary.Failures = append(summary.Failures, comm.ItemFailure{Name: name, Reason: err.Error()})
			s.logger.Warn("failed to migrate legacy record", "record", name, "error", err)
			continue
		}
		summary.Migrated++
	}

	if summary.Total > 0 {
		if err := s.legacy.Backup(); err != nil {
			s.logger.Warn("could not back up legacy comms file", "error", err)
		}
	}
	return summary, nil
}

func (s *EntityStore) migrateRecord(rec comm.LegacyRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("record has no id")
	}
	if err := s.gateway.EnsureDir(s.layout.EntityDir(rec.ID)); err != nil {
		return fmt.Errorf("creating comm folder: %w", err)
	}

	// Re-indent the raw record instead of round-tripping it through the
	// model, so fields unknown to the current schema survive migration.
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, rec.Raw, "", "  "); err != nil {
		return fmt.Errorf("formatting record: %w", err)
	}
	if err := s.gateway.WriteFile(s.layout.RecordFile(rec.ID), pretty.Bytes()); err != nil {
		return fmt.Errorf("writing comm record: %w", err)
	}
	return nil
}

// CleanupOrphans deletes every folder under the entities root that
// holds no valid record. The valid-id set is the folders whose record
// file parses with a non-empty id, plus any ids still listed in the
// legacy file, so that a migration in progress never loses data. The
// legacy flat array alone is stale under the per-folder save path and
// must not be the ground truth.
func (s *EntityStore) CleanupOrphans() (comm.CleanupSummary, error) {
	names, err := s.gateway.ListDir(s.layout.EntitiesDir())
	if err != nil {
		return comm.CleanupSummary{}, fmt.Errorf("listing comms folder: %w", err)
	}

	legacyIDs := make(map[string]bool)
	if records, err := s.legacy.LoadRaw(); err == nil {
		for _, rec := range records {
			if rec.ID != "" {
				legacyIDs[rec.ID] = true
			}
		}
	} else {
		s.logger.Warn("legacy comms file unreadable during cleanup", "error", err)
	}

	var summary comm.CleanupSummary
	for _, name := range names {
		if s.hasValidRecord(name) || legacyIDs[name] {
			continue
		}
		if err := s.gateway.RemoveTree(s.layout.EntityDir(name)); err != nil {
			summary.Failures = append(summary.Failures, comm.ItemFailure{Name: name, Reason: err.Error()})
			s.logger.Warn("failed to delete orphaned folder", "folder", name, "error", err)
			continue
		}
		s.logger.Info("deleted orphaned comm folder", "folder", name)
		summary.Removed = append(summary.Removed, name)
		summary.Deleted++
	}
	return summary, nil
}

// hasValidRecord reports whether the folder contains a parseable record
// file with a non-empty id.
func (s *EntityStore) hasValidRecord(folder string) bool {
	data, err := s.gateway.ReadFile(s.layout.RecordFile(folder))
	if err != nil {
		return false
	}
	var idHolder struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &idHolder); err != nil {
		return false
	}
	return idHolder.ID != ""
}

// Compile-time check that EntityStore implements comm.EntityStore
var _ comm.EntityStore = (*EntityStore)(nil)
