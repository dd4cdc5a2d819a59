package storage

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lockify/internal/common"
	"github.com/dmitrijs2005/lockify/internal/filex"
)

// FileSnapshotter keeps the snapshot in a single JSON file.
type FileSnapshotter struct {
	path string
}

func NewFileSnapshotter(path string) *FileSnapshotter {
	return &FileSnapshotter{path: path}
}

func (f *FileSnapshotter) Path() string {
	return f.path
}

func (f *FileSnapshotter) Load(ctx context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrorPersistence, f.path, err)
	}

	s, err := UnmarshalSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", common.ErrorPersistence, f.path, err)
	}
	return s, nil
}

// Save replaces the file atomically.
func (f *FileSnapshotter) Save(ctx context.Context, s *Snapshot) error {
	data, err := MarshalSnapshot(s)
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", common.ErrorPersistence, err)
	}
	if err := filex.WriteFileAtomic(f.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorPersistence, err)
	}
	return nil
}
