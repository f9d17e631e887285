package store

import (
	"errors"
	"fmt"

	"commtool/internal/comm"
)

// Wiper deletes every storage path at the data root, best effort. Each
// target is attempted independently; a missing target is not an error.
// The root folder itself is removed only if it ended up empty.
type Wiper struct {
	gateway comm.Gateway
	layout  Layout
	logger  comm.Logger
}

// NewWiper creates a Wiper over the data root.
func NewWiper(gateway comm.Gateway, layout Layout, logger comm.Logger) *Wiper {
	return &Wiper{gateway: gateway, layout: layout, logger: logger}
}

// WipeAll removes the preference file, legacy files, backgrounds,
// entity folders and temp workspaces, then the root folder if empty.
func (w *Wiper) WipeAll() (comm.WipeSummary, error) {
	var summary comm.WipeSummary

	files := []string{
		w.layout.ConfigFile(),
		w.layout.LegacyFile(),
		w.layout.LegacyBackupFile(),
	}
	for _, path := range files {
		if err := w.gateway.DeleteFile(path); err != nil {
			if errors.Is(err, comm.ErrNotFound) {
				continue
			}
			summary.Failures = append(summary.Failures, comm.ItemFailure{Name: path, Reason: err.Error()})
			w.logger.Warn("could not delete file during wipe", "path", path, "error", err)
			continue
		}
		summary.Removed = append(summary.Removed, path)
	}

	trees := []string{
		w.layout.BackgroundsDir(),
		w.layout.EntitiesDir(),
		w.layout.TempDir(),
	}
	for _, path := range trees {
		existed := w.gateway.Exists(path)
		if err := w.gateway.RemoveTree(path); err != nil {
			summary.Failures = append(summary.Failures, comm.ItemFailure{Name: path, Reason: err.Error()})
			w.logger.Warn("could not delete folder during wipe", "path", path, "error", err)
			continue
		}
		if existed {
			summary.Removed = append(summary.Removed, path)
		}
	}

	leftovers, err := w.gateway.ListDir(w.layout.Root)
	if err != nil {
		return summary, fmt.Errorf("listing data root: %w", err)
	}
	if w.gateway.Exists(w.layout.Root) && len(leftovers) == 0 {
		if err := w.gateway.RemoveTree(w.layout.Root); err != nil {
			summary.Failures = append(summary.Failures, comm.ItemFailure{Name: w.layout.Root, Reason: err.Error()})
		} else {
			summary.RootRemoved = true
		}
	}
	return summary, nil
}

// Compile-time check that Wiper implements comm.Wiper
var _ comm.Wiper = (*Wiper)(nil)
