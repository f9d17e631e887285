package fsgateway

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"commtool/internal/comm"
)

func TestOSGateway_Files(t *testing.T) {
	g := NewOSGateway()

	t.Run("write then read round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.bin")
		data := []byte{0xde, 0xad, 0xbe, 0xef}

		if err := g.WriteFile(path, data); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		got, err := g.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("ReadFile() = %v, want %v", got, data)
		}
	})

	t.Run("read missing file reports ErrNotFound", func(t *testing.T) {
		_, err := g.ReadFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, comm.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete missing file reports ErrNotFound", func(t *testing.T) {
		err := g.DeleteFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, comm.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete removes the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		if err := g.WriteFile(path, []byte("x")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if err := g.DeleteFile(path); err != nil {
			t.Fatalf("DeleteFile() error = %v", err)
		}
		if g.Exists(path) {
			t.Error("file still exists after DeleteFile()")
		}
	})

	t.Run("copy overwrites the destination", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src")
		dst := filepath.Join(dir, "dst")
		if err := g.WriteFile(src, []byte("new")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if err := g.WriteFile(dst, []byte("old content")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		if err := g.CopyFile(src, dst); err != nil {
			t.Fatalf("CopyFile() error = %v", err)
		}
		got, err := g.ReadFile(dst)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "new" {
			t.Errorf("destination = %q, want %q", got, "new")
		}
	})
}

func TestOSGateway_Directories(t *testing.T) {
	g := NewOSGateway()

	t.Run("EnsureDir creates nested directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "c")
		if err := g.EnsureDir(path); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			t.Errorf("directory not created: %v", err)
		}
		// Repeatable.
		if err := g.EnsureDir(path); err != nil {
			t.Errorf("second EnsureDir() error = %v", err)
		}
	})

	t.Run("ListDir of missing directory yields empty list", func(t *testing.T) {
		names, err := g.ListDir(filepath.Join(t.TempDir(), "missing"))
		if err != nil {
			t.Fatalf("ListDir() error = %v", err)
		}
		if len(names) != 0 {
			t.Errorf("ListDir() = %v, want empty", names)
		}
	})

	t.Run("ListDir returns entry names", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"one", "two"} {
			if err := g.WriteFile(filepath.Join(dir, name), []byte(name)); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
		}
		names, err := g.ListDir(dir)
		if err != nil {
			t.Fatalf("ListDir() error = %v", err)
		}
		if len(names) != 2 {
			t.Errorf("len(names) = %d, want 2", len(names))
		}
	})

	t.Run("RemoveTree is idempotent", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "tree")
		if err := g.EnsureDir(filepath.Join(dir, "sub")); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}
		if err := g.WriteFile(filepath.Join(dir, "sub", "f"), []byte("x")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		if err := g.RemoveTree(dir); err != nil {
			t.Fatalf("RemoveTree() error = %v", err)
		}
		if g.Exists(dir) {
			t.Error("tree still exists after RemoveTree()")
		}
		if err := g.RemoveTree(dir); err != nil {
			t.Errorf("second RemoveTree() error = %v", err)
		}
	})

	t.Run("Rename moves a file", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src")
		dst := filepath.Join(dir, "dst")
		if err := g.WriteFile(src, []byte("x")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if err := g.Rename(src, dst); err != nil {
			t.Fatalf("Rename() error = %v", err)
		}
		if g.Exists(src) || !g.Exists(dst) {
			t.Error("rename did not move the file")
		}
	})
}
