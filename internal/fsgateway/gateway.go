package fsgateway

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"runtime"

	"commtool/internal/comm"
)

// OSGateway is the real filesystem implementation of comm.Gateway.
// It performs actual filesystem operations using the os package.
type OSGateway struct{}

// NewOSGateway creates a gateway that operates on the real filesystem.
func NewOSGateway() *OSGateway {
	return &OSGateway{}
}

// EnsureDir creates the directory and any missing parents.
func (g *OSGateway) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}

// ReadFile returns the full contents of a file.
func (g *OSGateway) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", comm.ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// WriteFile overwrites the file with data.
func (g *OSGateway) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// DeleteFile removes a single file. Missing files are reported as
// comm.ErrNotFound; unlike folder removes this is not idempotent.
func (g *OSGateway) DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", comm.ErrNotFound, path)
		}
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

// ListDir returns entry names. A missing directory yields an empty list.
func (g *OSGateway) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Exists reports whether the path is present.
func (g *OSGateway) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Stat returns file info for a path.
func (g *OSGateway) Stat(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", comm.ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat path: %w", err)
	}
	return info, nil
}

// RemoveTree removes a path recursively. Missing paths are success.
func (g *OSGateway) RemoveTree(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing tree: %w", err)
	}
	return nil
}

// Rename moves src to dst.
func (g *OSGateway) Rename(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("renaming: %w", err)
	}
	return nil
}

// CopyFile copies src to dst, overwriting dst if present.
func (g *OSGateway) CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying data: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing destination: %w", err)
	}
	return nil
}

// OpenExternally hands the path to the OS shell. Success means the
// request was dispatched, not that a viewer opened.
func (g *OSGateway) OpenExternally(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("dispatching to OS shell: %w", err)
	}
	// Reap the child without blocking the caller.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Compile-time check that OSGateway implements comm.Gateway
var _ comm.Gateway = (*OSGateway)(nil)
