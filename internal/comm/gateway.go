package comm

import "io/fs"

// Gateway provides the filesystem operations every store is built on.
// It abstracts file access to enable fault injection in tests. No
// business logic lives behind this interface.
type Gateway interface {
	// EnsureDir creates the directory and any missing parents.
	EnsureDir(path string) error

	// ReadFile returns the full contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile overwrites the file with data, creating it if absent.
	WriteFile(path string, data []byte) error

	// DeleteFile removes a single file. A missing file is reported as
	// ErrNotFound: single-file deletes are not idempotent, unlike
	// folder-level removes.
	DeleteFile(path string) error

	// ListDir returns the entry names of a directory. A missing
	// directory yields an empty list, not an error.
	ListDir(path string) ([]string, error)

	// Exists reports whether the path is present.
	Exists(path string) bool

	// Stat returns file info for a path.
	Stat(path string) (fs.FileInfo, error)

	// RemoveTree removes a path recursively. Idempotent: a missing
	// path is success, not an error.
	RemoveTree(path string) error

	// Rename moves src to dst.
	Rename(src, dst string) error

	// CopyFile copies src to dst, overwriting dst if present.
	CopyFile(src, dst string) error

	// OpenExternally hands the path to the OS shell. Fire-and-forget:
	// success means the request was dispatched, not that a viewer
	// actually opened.
	OpenExternally(path string) error
}
