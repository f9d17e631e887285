package store

import "path/filepath"

// Layout computes every storage path relative to the application data
// root. All stores share one Layout so the on-disk shape is defined in
// exactly one place:
//
//	config.json                         user preferences
//	comms.json                          legacy flat array (migration source)
//	comms_backup.json                   legacy backup written during migration
//	backgrounds/<filename>              background image blobs
//	Comms/<entityId>/comm.json          per-entity record
//	Comms/<entityId>/references/<file>  per-entity attachments
//	temp/<tempId>/references/<file>     staged attachments
type Layout struct {
	Root string
}

// recordFileName is the per-entity record file inside its folder.
const recordFileName = "comm.json"

func (l Layout) ConfigFile() string       { return filepath.Join(l.Root, "config.json") }
func (l Layout) LegacyFile() string       { return filepath.Join(l.Root, "comms.json") }
func (l Layout) LegacyBackupFile() string { return filepath.Join(l.Root, "comms_backup.json") }

func (l Layout) BackgroundsDir() string { return filepath.Join(l.Root, "backgrounds") }
func (l Layout) BackgroundFile(name string) string {
	return filepath.Join(l.BackgroundsDir(), name)
}

func (l Layout) EntitiesDir() string { return filepath.Join(l.Root, "Comms") }
func (l Layout) EntityDir(id string) string {
	return filepath.Join(l.EntitiesDir(), id)
}
func (l Layout) RecordFile(id string) string {
	return filepath.Join(l.EntityDir(id), recordFileName)
}
func (l Layout) ReferencesDir(id string) string {
	return filepath.Join(l.EntityDir(id), "references")
}
func (l Layout) ReferenceFile(id, name string) string {
	return filepath.Join(l.ReferencesDir(id), name)
}

func (l Layout) TempDir() string { return filepath.Join(l.Root, "temp") }
func (l Layout) TempWorkspace(tempID string) string {
	return filepath.Join(l.TempDir(), tempID)
}
func (l Layout) TempReferencesDir(tempID string) string {
	return filepath.Join(l.TempWorkspace(tempID), "references")
}
func (l Layout) TempReferenceFile(tempID, name string) string {
	return filepath.Join(l.TempReferencesDir(tempID), name)
}
