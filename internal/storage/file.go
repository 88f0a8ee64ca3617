package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// FileBackend keeps each key as a JSON file under a data directory.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) *FileBackend { return &FileBackend{dir: dir} }

func (f *FileBackend) path(key string) string {
	name := strings.ReplaceAll(key, string(filepath.Separator), "_")
	return filepath.Join(f.dir, name+".json")
}

func (f *FileBackend) Read(key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		return nil, wrap("read "+key, err)
	}
	return b, nil
}

func (f *FileBackend) Write(key string, payload []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return wrap("mkdir "+f.dir, err)
	}
	if err := os.WriteFile(f.path(key), payload, 0o644); err != nil {
		return wrap("write "+key, err)
	}
	return nil
}
