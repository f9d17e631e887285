package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"commtool/internal/comm"
)

func newTempStaging(t *testing.T) (*TempStaging, comm.Gateway, Layout) {
	t.Helper()
	gateway, layout := newTestLayout(t)
	idgen := comm.RandomIDGenerator{}
	return NewTempStaging(gateway, layout, idgen, comm.NewNopLogger()), gateway, layout
}

func TestTempStaging_Create(t *testing.T) {
	s, gateway, layout := newTempStaging(t)

	tempID, err := s.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !comm.IsTempID(tempID) {
		t.Errorf("Create() = %q, want temp id shape", tempID)
	}
	if !gateway.Exists(layout.TempWorkspace(tempID)) {
		t.Error("temp workspace folder not created")
	}

	// Workspaces are independent.
	other, err := s.Create()
	if err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	if other == tempID {
		t.Error("Create() returned a duplicate temp id")
	}
}

func TestTempStaging_SaveListReferences(t *testing.T) {
	s, _, _ := newTempStaging(t)

	tempID, err := s.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := s.SaveReference(tempID, comm.Payload{Data: encodePNG(t, 2, 2)}, "a.png"); err != nil {
		t.Fatalf("SaveReference() error = %v", err)
	}
	if _, err := s.SaveReference(tempID, comm.Payload{Data: []byte("doc")}, "b.txt"); err != nil {
		t.Fatalf("SaveReference() error = %v", err)
	}

	refs, err := s.ListReferences(tempID)
	if err != nil {
		t.Fatalf("ListReferences() error = %v", err)
	}
	if len(refs) != 2 {
		t.Errorf("ListReferences() = %d entries, want 2", len(refs))
	}

	// Unknown workspace lists empty, not an error.
	refs, err = s.ListReferences("temp_0_unknown")
	if err != nil {
		t.Fatalf("ListReferences() error = %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("ListReferences(unknown) = %d entries, want 0", len(refs))
	}
}

func TestTempStaging_Promote(t *testing.T) {
	t.Run("moves every reference and removes the workspace", func(t *testing.T) {
		gateway, layout := newTestLayout(t)
		s := NewTempStaging(gateway, layout, comm.RandomIDGenerator{}, comm.NewNopLogger())
		refs := NewReferenceStore(gateway, layout, comm.NewNopLogger())

		tempID, err := s.Create()
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		for _, name := range []string{"a.jpg", "b.txt", "c.png"} {
			if _, err := s.SaveReference(tempID, comm.Payload{Data: []byte(name)}, name); err != nil {
				t.Fatalf("SaveReference(%s) error = %v", name, err)
			}
		}

		summary, err := s.Promote(tempID, "comm_2_dst")
		if err != nil {
			t.Fatalf("Promote() error = %v", err)
		}
		if summary.Moved != 3 || summary.Total != 3 || !summary.TempRemoved {
			t.Errorf("summary = %+v, want all 3 moved and temp removed", summary)
		}

		promoted, err := refs.List("comm_2_dst")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(promoted) != 3 {
			t.Errorf("List() = %d entries, want 3", len(promoted))
		}

		if gateway.Exists(layout.TempWorkspace(tempID)) {
			t.Error("temp workspace still exists after promotion")
		}
		staged, err := s.ListReferences(tempID)
		if err != nil {
			t.Fatalf("ListReferences() error = %v", err)
		}
		if len(staged) != 0 {
			t.Errorf("ListReferences() = %d entries after promotion, want 0", len(staged))
		}
	})

	t.Run("missing workspace is treated as already promoted", func(t *testing.T) {
		s, _, _ := newTempStaging(t)
		summary, err := s.Promote("temp_0_gone", "comm_2_dst")
		if err != nil {
			t.Fatalf("Promote() error = %v", err)
		}
		if !summary.TempRemoved || summary.Total != 0 {
			t.Errorf("summary = %+v, want no-op success", summary)
		}
	})

	t.Run("workspace without references still gets cleaned up", func(t *testing.T) {
		s, gateway, layout := newTempStaging(t)
		tempID, err := s.Create()
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		summary, err := s.Promote(tempID, "comm_2_dst")
		if err != nil {
			t.Fatalf("Promote() error = %v", err)
		}
		if !summary.TempRemoved {
			t.Error("empty workspace was not removed")
		}
		if gateway.Exists(layout.TempWorkspace(tempID)) {
			t.Error("temp workspace still exists")
		}
	})

	t.Run("a failed copy keeps the workspace and the file's data", func(t *testing.T) {
		gateway, layout := newTestLayout(t)
		failing := &copyFailGateway{Gateway: gateway, failName: "b.txt"}
		s := NewTempStaging(failing, layout, comm.RandomIDGenerator{}, comm.NewNopLogger())

		tempID, err := s.Create()
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		for _, name := range []string{"a.jpg", "b.txt"} {
			if _, err := s.SaveReference(tempID, comm.Payload{Data: []byte(name)}, name); err != nil {
				t.Fatalf("SaveReference(%s) error = %v", name, err)
			}
		}

		summary, err := s.Promote(tempID, "comm_2_dst")
		if err != nil {
			t.Fatalf("Promote() error = %v", err)
		}
		if summary.Moved != 1 || summary.Total != 2 || summary.TempRemoved {
			t.Errorf("summary = %+v, want 1/2 moved with temp kept", summary)
		}
		if len(summary.Failures) != 1 || summary.Failures[0].Name != "b.txt" {
			t.Errorf("Failures = %+v, want b.txt", summary.Failures)
		}

		// The failed file's data must still be in the workspace.
		if !gateway.Exists(layout.TempReferenceFile(tempID, "b.txt")) {
			t.Error("failed file was destroyed with the workspace")
		}
		// The moved file made it across and left the workspace.
		if !gateway.Exists(layout.ReferenceFile("comm_2_dst", "a.jpg")) {
			t.Error("moved file missing from destination")
		}
		if gateway.Exists(layout.TempReferenceFile(tempID, "a.jpg")) {
			t.Error("moved file still present in workspace")
		}
	})
}

func TestTempStaging_Discard(t *testing.T) {
	s, gateway, layout := newTempStaging(t)

	tempID, err := s.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.SaveReference(tempID, comm.Payload{Data: []byte("x")}, "a.txt"); err != nil {
		t.Fatalf("SaveReference() error = %v", err)
	}

	if err := s.Discard(tempID); err != nil {
		t.Fatalf("Discard() error = %v", err)
	}
	if gateway.Exists(layout.TempWorkspace(tempID)) {
		t.Error("workspace still exists after Discard()")
	}

	// Idempotent.
	if err := s.Discard(tempID); err != nil {
		t.Errorf("second Discard() error = %v", err)
	}

	if err := s.Discard(""); !errors.Is(err, comm.ErrInvalidArgument) {
		t.Errorf("Discard(\"\") error = %v, want ErrInvalidArgument", err)
	}
}

// copyFailGateway injects a copy failure for one filename.
type copyFailGateway struct {
	comm.Gateway
	failName string
}

func (g *copyFailGateway) CopyFile(src, dst string) error {
	if filepath.Base(src) == g.failName || strings.HasSuffix(src, g.failName) {
		return fmt.Errorf("injected copy failure")
	}
	return g.Gateway.CopyFile(src, dst)
}
