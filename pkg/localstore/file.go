package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

const slotExt = ".json"

type fileStorage struct {
	mu  sync.Mutex
	fs  afero.Fs
	dir string
}

// NewFileStorage stores each slot as <dir>/<key>.json on fs.
func NewFileStorage(fs afero.Fs, dir string) (Storage, error) {
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create dir %s: %w", dir, err)
	}
	return &fileStorage{fs: fs, dir: dir}, nil
}

func (s *fileStorage) path(key string) string {
	return filepath.Join(s.dir, key+slotExt)
}

func (s *fileStorage) GetItem(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("localstore: read %s: %w", key, err)
	}
	return string(data), true, nil
}

// SetItem writes to a temp file first and renames it over the slot so a
// crash never leaves a half-written value behind.
func (s *fileStorage) SetItem(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(key) + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, s.path(key)); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("localstore: commit %s: %w", key, err)
	}
	return nil
}

func (s *fileStorage) RemoveItem(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fs.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("localstore: remove %s: %w", key, err)
	}
	return nil
}

func (s *fileStorage) Close() error { return nil }
