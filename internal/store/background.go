package store

import (
	"fmt"

	"commtool/internal/comm"
)

// BackgroundStore manages background image blobs under backgrounds/ at
// the data root.
type BackgroundStore struct {
	gateway comm.Gateway
	layout  Layout
}

// NewBackgroundStore creates a BackgroundStore over the backgrounds dir.
func NewBackgroundStore(gateway comm.Gateway, layout Layout) *BackgroundStore {
	return &BackgroundStore{gateway: gateway, layout: layout}
}

// Save writes the decoded payload under the backgrounds folder and
// returns the filename.
func (s *BackgroundStore) Save(p comm.Payload, filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("%w: no filename provided", comm.ErrInvalidArgument)
	}
	if err := s.gateway.EnsureDir(s.layout.BackgroundsDir()); err != nil {
		return "", fmt.Errorf("creating backgrounds folder: %w", err)
	}
	if err := s.gateway.WriteFile(s.layout.BackgroundFile(filename), p.Data); err != nil {
		return "", fmt.Errorf("writing background image: %w", err)
	}
	return filename, nil
}

// Load returns the stored image as an inline data-URL string.
func (s *BackgroundStore) Load(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("%w: no filename provided", comm.ErrInvalidArgument)
	}
	data, err := s.gateway.ReadFile(s.layout.BackgroundFile(filename))
	if err != nil {
		return "", fmt.Errorf("loading background image: %w", err)
	}
	return comm.EncodeDataURL("image/jpeg", data), nil
}

// Delete removes one background image. A missing file is an error.
func (s *BackgroundStore) Delete(filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: no filename provided", comm.ErrInvalidArgument)
	}
	if err := s.gateway.DeleteFile(s.layout.BackgroundFile(filename)); err != nil {
		return fmt.Errorf("deleting background image: %w", err)
	}
	return nil
}

// Compile-time check that BackgroundStore implements comm.BackgroundStore
var _ comm.BackgroundStore = (*BackgroundStore)(nil)
