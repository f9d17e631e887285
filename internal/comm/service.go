package comm

import (
	"fmt"
	"sync"
)

// Service is the orchestration layer behind the request/response
// surface the UI talks to. Each method maps 1:1 to one request; calls
// are independent and may run concurrently. Operations that mutate a
// single entity are serialized per entity id to avoid lost updates on
// its record file.
type Service struct {
	config      ConfigStore
	legacy      LegacyStore
	entities    EntityStore
	refs        ReferenceStore
	temp        TempStaging
	backgrounds BackgroundStore
	gateway     Gateway
	root        string
	logger      Logger
	clock       Clock
	idgen       IDGenerator
	wiper       Wiper

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a Service with the provided dependencies. root is
// the application data root, used only for the open-folder operation.
func NewService(config ConfigStore, legacy LegacyStore, entities EntityStore, refs ReferenceStore, temp TempStaging, backgrounds BackgroundStore, wiper Wiper, gateway Gateway, root string, logger Logger, clock Clock, idgen IDGenerator) *Service {
	return &Service{
		config:      config,
		legacy:      legacy,
		entities:    entities,
		refs:        refs,
		temp:        temp,
		backgrounds: backgrounds,
		wiper:       wiper,
		gateway:     gateway,
		root:        root,
		logger:      logger,
		clock:       clock,
		idgen:       idgen,
		locks:       make(map[string]*sync.Mutex),
	}
}

// entityLock returns the mutex serializing operations on one entity id.
func (s *Service) entityLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// LoadConfig returns the user preferences, bootstrapping defaults on
// first run.
func (s *Service) LoadConfig() (Configuration, error) {
	return s.config.Load()
}

// SaveConfig overwrites the user preferences.
func (s *Service) SaveConfig(cfg Configuration) error {
	return s.config.Save(cfg)
}

// LoadLegacyComms returns the legacy flat-array records.
func (s *Service) LoadLegacyComms() ([]Comm, error) {
	return s.legacy.Load()
}

// SaveLegacyComms overwrites the legacy flat-array file.
func (s *Service) SaveLegacyComms(comms []Comm) error {
	return s.legacy.Save(comms)
}

// SaveBackgroundImage decodes the payload and stores it under the
// backgrounds folder.
func (s *Service) SaveBackgroundImage(fileData any, filename string) (string, error) {
	p, err := DecodePayload(fileData, string(ReferenceImage))
	if err != nil {
		return "", err
	}
	return s.backgrounds.Save(p, filename)
}

// LoadBackgroundImage returns the stored image as a data-URL string.
func (s *Service) LoadBackgroundImage(filename string) (string, error) {
	return s.backgrounds.Load(filename)
}

// DeleteBackgroundImage removes one background image blob.
func (s *Service) DeleteBackgroundImage(filename string) error {
	return s.backgrounds.Delete(filename)
}

// SaveComm persists the entity record. CreatedAt is set once on first
// save; UpdatedAt is refreshed on every save; an empty currency gets
// the default. Field-level validation beyond the id is the UI's job.
func (s *Service) SaveComm(c *Comm) error {
	if c == nil || c.ID == "" {
		return fmt.Errorf("%w: comm id is required", ErrInvalidArgument)
	}

	l := s.entityLock(c.ID)
	l.Lock()
	defer l.Unlock()

	now := s.clock.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}

	if err := s.entities.Save(c); err != nil {
		return err
	}
	s.logger.Info("comm saved", "id", c.ID)
	return nil
}

// LoadAllComms collects every readable entity record.
func (s *Service) LoadAllComms() ([]Comm, error) {
	return s.entities.LoadAll()
}

// DeleteComm removes the entity's record and folder. Idempotent.
func (s *Service) DeleteComm(id string) error {
	if id == "" {
		return fmt.Errorf("%w: comm id is required", ErrInvalidArgument)
	}

	l := s.entityLock(id)
	l.Lock()
	defer l.Unlock()

	if err := s.entities.Delete(id); err != nil {
		return err
	}
	s.logger.Info("comm deleted", "id", id)
	return nil
}

// SaveReference decodes the payload and stores it in the entity's
// references folder.
func (s *Service) SaveReference(entityID string, fileData any, filename, kind string) (string, error) {
	p, err := DecodePayload(fileData, kind)
	if err != nil {
		return "", err
	}
	return s.refs.Save(entityID, p, filename)
}

// ListReferences returns the entity's attachments.
func (s *Service) ListReferences(entityID string) ([]Reference, error) {
	return s.refs.List(entityID)
}

// DeleteReference removes one attachment. Missing file is an error.
func (s *Service) DeleteReference(entityID, filename string) error {
	return s.refs.Delete(entityID, filename)
}

// ReferencePath computes the absolute location of one attachment.
func (s *Service) ReferencePath(entityID, filename string) (string, error) {
	return s.refs.Path(entityID, filename)
}

// ReferenceFolder returns the entity's references folder, creating it.
func (s *Service) ReferenceFolder(entityID string) (string, error) {
	return s.refs.FolderPath(entityID)
}

// OpenFile hands a path to the OS shell for external viewing.
func (s *Service) OpenFile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: no file path provided", ErrInvalidArgument)
	}
	return s.gateway.OpenExternally(path)
}

// OpenDataFolder reveals the application data root in the OS shell.
func (s *Service) OpenDataFolder() error {
	if err := s.gateway.EnsureDir(s.root); err != nil {
		return fmt.Errorf("ensuring data root: %w", err)
	}
	return s.gateway.OpenExternally(s.root)
}

// CreateTemp allocates a new temp workspace for an unsaved entity.
func (s *Service) CreateTemp() (string, error) {
	id, err := s.temp.Create()
	if err != nil {
		return "", err
	}
	s.logger.Debug("temp workspace created", "id", id)
	return id, nil
}

// SaveTempReference decodes the payload and stages it under the temp
// workspace.
func (s *Service) SaveTempReference(tempID string, fileData any, filename, kind string) (string, error) {
	p, err := DecodePayload(fileData, kind)
	if err != nil {
		return "", err
	}
	return s.temp.SaveReference(tempID, p, filename)
}

// ListTempReferences returns the workspace's staged attachments.
func (s *Service) ListTempReferences(tempID string) ([]Reference, error) {
	return s.temp.ListReferences(tempID)
}

// PromoteTemp transfers staged references into the permanent entity's
// folder. Safe to call defensively: a missing temp folder is a no-op.
func (s *Service) PromoteTemp(tempID, entityID string) (PromoteSummary, error) {
	if tempID == "" || entityID == "" {
		return PromoteSummary{}, fmt.Errorf("%w: missing temp or comm id", ErrInvalidArgument)
	}

	l := s.entityLock(entityID)
	l.Lock()
	defer l.Unlock()

	summary, err := s.temp.Promote(tempID, entityID)
	if err != nil {
		return summary, err
	}
	if !summary.Complete() {
		s.logger.Warn("promotion incomplete", "temp", tempID, "comm", entityID, "moved", summary.Moved, "total", summary.Total)
	}
	return summary, nil
}

// CancelTemp discards the temp workspace. Idempotent.
func (s *Service) CancelTemp(tempID string) error {
	if tempID == "" {
		return fmt.Errorf("%w: temp id is required", ErrInvalidArgument)
	}
	return s.temp.Discard(tempID)
}

// MigrateLegacy converts the legacy flat-array file into per-folder
// records, reporting per-record outcomes.
func (s *Service) MigrateLegacy() (MigrationSummary, error) {
	summary, err := s.entities.MigrateLegacy()
	if err != nil {
		return summary, err
	}
	s.logger.Info("migration completed", "migrated", summary.Migrated, "total", summary.Total)
	return summary, nil
}

// CleanupOrphans removes entity folders holding no valid record.
func (s *Service) CleanupOrphans() (CleanupSummary, error) {
	summary, err := s.entities.CleanupOrphans()
	if err != nil {
		return summary, err
	}
	s.logger.Info("orphan cleanup completed", "deleted", summary.Deleted)
	return summary, nil
}

// DeleteAllData wipes every storage path best-effort.
func (s *Service) DeleteAllData() (WipeSummary, error) {
	summary, err := s.wiper.WipeAll()
	if err != nil {
		return summary, err
	}
	s.logger.Info("all data deleted", "removed", len(summary.Removed), "rootRemoved", summary.RootRemoved)
	return summary, nil
}
