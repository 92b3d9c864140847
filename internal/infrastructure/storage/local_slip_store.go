package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"toyauction/internal/usecase/interfaces"
)

const defaultSlipDir = "uploads/slips"

// LocalSlipStore writes uploaded slip images to local disk and returns the
// relative path stored on the payment record.

type LocalSlipStore struct {
	dir string
}

var _ interfaces.ISlipStore = (*LocalSlipStore)(nil)

func NewLocalSlipStore(dir string) (*LocalSlipStore, error) {
	if dir == "" {
		dir = defaultSlipDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalSlipStore{dir: dir}, nil
}

func (s *LocalSlipStore) Save(_ context.Context, filename string, data []byte) (string, error) {
	// Keep only the caller's extension; the stored name is server-generated
	// so uploads cannot collide or traverse.
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(filename))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
