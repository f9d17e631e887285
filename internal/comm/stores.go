package comm

import "encoding/json"

// ConfigStore loads and saves the single user-preferences record.
type ConfigStore interface {
	// Load returns the parsed preferences. On first run (backing file
	// absent) it persists the documented defaults and returns them.
	Load() (Configuration, error)

	// Save overwrites the preferences file.
	Save(Configuration) error
}

// LegacyRecord is one raw record from the legacy flat-array file. Raw
// preserves fields the current model does not know about, so migration
// never drops data.
type LegacyRecord struct {
	ID  string
	Raw json.RawMessage
}

// LegacyStore reads and writes the legacy flat-array file. It is a
// migration source; current operations do not write to it apart from
// the explicit legacy save.
type LegacyStore interface {
	// LoadRaw returns the raw records. An absent file bootstraps an
	// empty array on disk and returns no records.
	LoadRaw() ([]LegacyRecord, error)

	// Load parses the records into entities.
	Load() ([]Comm, error)

	// Save overwrites the flat-array file with the given entities.
	Save([]Comm) error

	// Backup copies the flat-array file to the backup filename.
	Backup() error
}

// EntityStore owns the canonical per-entity records (comm.json under a
// per-entity folder) plus reconciliation against the legacy file.
type EntityStore interface {
	// Save writes the full entity record into its folder, creating the
	// folder if absent. Requires a non-empty id; field-level validation
	// is the caller's responsibility.
	Save(*Comm) error

	// LoadAll collects every successfully parsed record under the
	// entities root. Folders with a missing or corrupt record are
	// skipped and logged, never abort the load.
	LoadAll() ([]Comm, error)

	// Delete removes the entity's entire folder tree. Idempotent.
	Delete(id string) error

	// MigrateLegacy turns each legacy record into a per-folder record,
	// counting successes individually, then copies the legacy file to
	// its backup name (best effort).
	MigrateLegacy() (MigrationSummary, error)

	// CleanupOrphans deletes every folder under the entities root that
	// holds no valid record. Ground truth is the set of folders whose
	// record file parses with a matching id, plus any ids still present
	// in the legacy file (so a migration in progress is never harmed).
	CleanupOrphans() (CleanupSummary, error)
}

// ReferenceStore manages the attachments folder inside an entity folder.
type ReferenceStore interface {
	// Save writes the payload under <entity>/references/<filename>.
	// Filenames are caller-supplied and must already be unique; a
	// same-named write overwrites silently.
	Save(entityID string, p Payload, filename string) (string, error)

	// List returns the folder's references with type classification and
	// inline preview payloads for images. A missing folder yields an
	// empty list. Order is filesystem enumeration order.
	List(entityID string) ([]Reference, error)

	// Delete removes one reference file. Missing file is an error.
	Delete(entityID, filename string) error

	// Path computes the absolute location of a reference file.
	Path(entityID, filename string) (string, error)

	// FolderPath returns the absolute references folder, creating it
	// as a side effect.
	FolderPath(entityID string) (string, error)
}

// TempStaging is the ephemeral workspace for entities being created but
// not yet committed. Multiple workspaces may coexist independently.
type TempStaging interface {
	// Create allocates a temp identity and an empty temp folder.
	Create() (string, error)

	// SaveReference stores a payload under the temp workspace, with the
	// same contract as ReferenceStore.Save.
	SaveReference(tempID string, p Payload, filename string) (string, error)

	// ListReferences lists the workspace's references, with the same
	// contract as ReferenceStore.List.
	ListReferences(tempID string) ([]Reference, error)

	// Promote transfers every staged reference into the permanent
	// entity's references folder using copy-verify-delete per file. A
	// missing temp folder is treated as already promoted. The temp
	// folder is removed only when every file transferred.
	Promote(tempID, permanentID string) (PromoteSummary, error)

	// Discard removes the temp workspace. Idempotent.
	Discard(tempID string) error
}

// BackgroundStore manages background image blobs at the data root.
type BackgroundStore interface {
	Save(p Payload, filename string) (string, error)

	// Load returns the image as an inline data-URL string.
	Load(filename string) (string, error)

	Delete(filename string) error
}

// Wiper deletes every storage path best-effort, then removes the data
// root only if it ended up empty.
type Wiper interface {
	WipeAll() (WipeSummary, error)
}
