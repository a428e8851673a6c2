package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File persists the snapshot as a JSON file, written to a temp file and
// renamed into place so a crash mid-write never corrupts the save.
type File struct {
	path string
}

func OpenFile(path string) (*File, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(home, ".touchline")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "career.json")
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	return &File{path: path}, nil
}

func (f *File) Load(ctx context.Context) ([]byte, error) {
	blob, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return blob, nil
}

func (f *File) Save(ctx context.Context, blob []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("swap snapshot: %w", err)
	}
	return nil
}
