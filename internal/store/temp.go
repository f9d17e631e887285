package store

import (
	"fmt"
	"path/filepath"

	"commtool/internal/comm"
)

// TempStaging is the ephemeral workspace for entities being created but
// not yet committed. Each workspace lives under temp/<tempId> and is
// owned by this store until promotion or discard.
type TempStaging struct {
	gateway comm.Gateway
	layout  Layout
	idgen   comm.IDGenerator
	logger  comm.Logger
}

// NewTempStaging creates a TempStaging over the temp root.
func NewTempStaging(gateway comm.Gateway, layout Layout, idgen comm.IDGenerator, logger comm.Logger) *TempStaging {
	return &TempStaging{gateway: gateway, layout: layout, idgen: idgen, logger: logger}
}

// Create allocates a temp identity and an empty temp folder. Multiple
// workspaces may coexist; each is independent.
func (s *TempStaging) Create() (string, error) {
	tempID := s.idgen.NewTempID()
	if err := s.gateway.EnsureDir(s.layout.TempWorkspace(tempID)); err != nil {
		return "", fmt.Errorf("creating temp workspace: %w", err)
	}
	return tempID, nil
}

// SaveReference stores a payload under the workspace's references
// folder, with the same contract as the entity-scoped save.
func (s *TempStaging) SaveReference(tempID string, p comm.Payload, filename string) (string, error) {
	if tempID == "" || filename == "" {
		return "", fmt.Errorf("%w: missing temp id or filename", comm.ErrInvalidArgument)
	}

	dir := s.layout.TempReferencesDir(tempID)
	if err := s.gateway.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("creating temp references folder: %w", err)
	}
	if err := s.gateway.WriteFile(filepath.Join(dir, filename), p.Data); err != nil {
		return "", fmt.Errorf("writing temp reference: %w", err)
	}
	return filename, nil
}

// ListReferences lists the workspace's staged attachments. A missing
// workspace yields an empty list.
func (s *TempStaging) ListReferences(tempID string) ([]comm.Reference, error) {
	if tempID == "" {
		return nil, fmt.Errorf("%w: temp id is required", comm.ErrInvalidArgument)
	}
	return listReferenceDir(s.gateway, s.logger, s.layout.TempReferencesDir(tempID))
}

// Promote transfers every staged reference into the permanent entity's
// references folder. A missing temp folder is treated as already
// promoted (callers invoke this defensively). Each file is transferred
// copy-verify-delete: the source is removed only after the destination
// is confirmed, and the temp folder is removed only when every file
// transferred, so a mid-batch failure never destroys attachment data.
func (s *TempStaging) Promote(tempID, permanentID string) (comm.PromoteSummary, error) {
	if tempID == "" || permanentID == "" {
		return comm.PromoteSummary{}, fmt.Errorf("%w: missing temp or comm id", comm.ErrInvalidArgument)
	}

	workspace := s.layout.TempWorkspace(tempID)
	if !s.gateway.Exists(workspace) {
		return comm.PromoteSummary{TempRemoved: true}, nil
	}

	srcDir := s.layout.TempReferencesDir(tempID)
	names, err := s.gateway.ListDir(srcDir)
	if err != nil {
		return comm.PromoteSummary{}, fmt.Errorf("listing temp references: %w", err)
	}

	summary := comm.PromoteSummary{Total: len(names)}
	if len(names) > 0 {
		dstDir := s.layout.ReferencesDir(permanentID)
		if err := s.gateway.EnsureDir(dstDir); err != nil {
			return summary, fmt.Errorf("creating references folder: %w", err)
		}
		for _, name := range names {
			if err := s.transferFile(filepath.Join(srcDir, name), filepath.Join(dstDir, name)); err != nil {
				summary.Failures = append(summary.Failures, comm.ItemFailure{Name: name, Reason: err.Error()})
				s.logger.Warn("failed to promote reference", "file", name, "temp", tempID, "error", err)
				continue
			}
			summary.Moved++
		}
	}

	if summary.Complete() {
		if err := s.gateway.RemoveTree(workspace); err != nil {
			return summary, fmt.Errorf("removing temp workspace: %w", err)
		}
		summary.TempRemoved = true
	}
	return summary, nil
}

// transferFile copies src to dst, verifies the destination size, then
// deletes the source.
func (s *TempStaging) transferFile(src, dst string) error {
	srcInfo, err := s.gateway.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("staged entry is a directory")
	}

	if err := s.gateway.CopyFile(src, dst); err != nil {
		return fmt.Errorf("copying: %w", err)
	}

	dstInfo, err := s.gateway.Stat(dst)
	if err != nil {
		return fmt.Errorf("verifying copy: %w", err)
	}
	if dstInfo.Size() != srcInfo.Size() {
		return fmt.Errorf("size mismatch after copy: source %d bytes, destination %d", srcInfo.Size(), dstInfo.Size())
	}

	if err := s.gateway.DeleteFile(src); err != nil {
		return fmt.Errorf("removing source after copy: %w", err)
	}
	return nil
}

// Discard removes the temp workspace. Idempotent.
func (s *TempStaging) Discard(tempID string) error {
	if tempID == "" {
		return fmt.Errorf("%w: temp id is required", comm.ErrInvalidArgument)
	}
	if err := s.gateway.RemoveTree(s.layout.TempWorkspace(tempID)); err != nil {
		return fmt.Errorf("discarding temp workspace: %w", err)
	}
	return nil
}

// Compile-time check that TempStaging implements comm.TempStaging
var _ comm.TempStaging = (*TempStaging)(nil)
