package store

import (
	"fmt"
	"path/filepath"

	"commtool/internal/comm"
	"commtool/internal/preview"
)

// ReferenceStore manages the attachments folder inside an entity
// folder. It owns the references subfolder contents exclusively; the
// entity record's references field is advisory only.
type ReferenceStore struct {
	gateway comm.Gateway
	layout  Layout
	logger  comm.Logger
}

// NewReferenceStore creates a ReferenceStore over the entities root.
func NewReferenceStore(gateway comm.Gateway, layout Layout, logger comm.Logger) *ReferenceStore {
	return &ReferenceStore{gateway: gateway, layout: layout, logger: logger}
}

// Save writes the payload under <entity>/references/<filename>.
// Filenames are caller-supplied and must already be unique; a
// same-named write overwrites silently.
func (s *ReferenceStore) Save(entityID string, p comm.Payload, filename string) (string, error) {
	if entityID == "" || filename == "" {
		return "", fmt.Errorf("%w: missing comm id or filename", comm.ErrInvalidArgument)
	}

	dir := s.layout.ReferencesDir(entityID)
	if err := s.gateway.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("creating references folder: %w", err)
	}
	if err := s.gateway.WriteFile(filepath.Join(dir, filename), p.Data); err != nil {
		return "", fmt.Errorf("writing reference: %w", err)
	}
	return filename, nil
}

// List returns the entity's references with type classification and an
// inline preview payload for images. A missing folder yields an empty
// list. Order is filesystem enumeration order; callers sort if order
// matters.
func (s *ReferenceStore) List(entityID string) ([]comm.Reference, error) {
	if entityID == "" {
		return nil, fmt.Errorf("%w: comm id is required", comm.ErrInvalidArgument)
	}
	return listReferenceDir(s.gateway, s.logger, s.layout.ReferencesDir(entityID))
}

// Delete removes one reference file. A missing file is an error; this
// deliberately differs from the idempotent folder-level deletes.
func (s *ReferenceStore) Delete(entityID, filename string) error {
	if entityID == "" || filename == "" {
		return fmt.Errorf("%w: missing comm id or filename", comm.ErrInvalidArgument)
	}
	if err := s.gateway.DeleteFile(s.layout.ReferenceFile(entityID, filename)); err != nil {
		return fmt.Errorf("deleting reference: %w", err)
	}
	return nil
}

// Path computes the absolute location of one reference file. Pure path
// computation; the file need not exist.
func (s *ReferenceStore) Path(entityID, filename string) (string, error) {
	if entityID == "" || filename == "" {
		return "", fmt.Errorf("%w: missing comm id or filename", comm.ErrInvalidArgument)
	}
	return s.layout.ReferenceFile(entityID, filename), nil
}

// FolderPath returns the entity's references folder, creating it as a
// side effect so the OS file browser can reveal it.
func (s *ReferenceStore) FolderPath(entityID string) (string, error) {
	if entityID == "" {
		return "", fmt.Errorf("%w: comm id is required", comm.ErrInvalidArgument)
	}
	dir := s.layout.ReferencesDir(entityID)
	if err := s.gateway.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("creating references folder: %w", err)
	}
	return dir, nil
}

// listReferenceDir enumerates one references folder. Shared by the
// entity-scoped and temp-scoped stores, which have identical listing
// contracts. Per-file failures are logged and either skip the entry
// (unstattable) or drop only its preview (unreadable image bytes).
func listReferenceDir(gateway comm.Gateway, logger comm.Logger, dir string) ([]comm.Reference, error) {
	names, err := gateway.ListDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing references folder: %w", err)
	}

	refs := make([]comm.Reference, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := gateway.Stat(path)
		if err != nil {
			logger.Warn("skipping unreadable reference", "file", name, "error", err)
			continue
		}
		if info.IsDir() {
			continue
		}

		kind, ext := comm.ClassifyReference(name)
		ref := comm.Reference{
			Name:      name,
			Type:      kind,
			Size:      info.Size(),
			Path:      path,
			Extension: ext,
		}

		if kind == comm.ReferenceImage {
			data, err := gateway.ReadFile(path)
			if err != nil {
				// Still list the reference, just without a preview.
				logger.Warn("could not read image for preview", "file", name, "error", err)
			} else {
				ref.Data = comm.EncodeDataURL("image/"+ext, data)
				if w, h, ok := preview.Probe(data); ok {
					ref.Width = w
					ref.Height = h
				}
			}
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Compile-time check that ReferenceStore implements comm.ReferenceStore
var _ comm.ReferenceStore = (*ReferenceStore)(nil)
