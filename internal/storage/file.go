package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists each blob as one JSON file under a data directory.
// This is the default backend — the single-process analog of browser-local
// storage. Writes go through a temp file + rename so a crash mid-write
// never leaves a half-written collection behind.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(raw), nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *FileStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("storage: data path is not a directory")
	}
	return nil
}
