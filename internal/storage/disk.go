// File: internal/storage/disk.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Disk writes objects under a root directory. The object name is always a
// server-generated filename, never client input, so no path cleaning beyond
// Join is required.
type Disk struct {
	root string
}

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage root %s: %w", root, err)
	}
	return &Disk{root: root}, nil
}

func (d *Disk) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	path := filepath.Join(d.root, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
