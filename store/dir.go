package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dir is a Store keeping each key in its own file of a directory, so the
// data stays human readable and easy to version.
type Dir struct {
	path string
}

// OpenDir opens the directory store at path, creating the directory if needed.
func OpenDir(path string) (*Dir, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve storage path %q: %w", path, err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("create storage directory %q: %w", abs, err)
	}
	return &Dir{path: abs}, nil
}

// Path returns the directory of the store.
func (d *Dir) Path() string { return d.path }

func (d *Dir) filename(key string) string {
	return filepath.Join(d.path, key+".json")
}

func (d *Dir) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(d.filename(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", key, err)
	}
	return data, nil
}

// Save writes value into a temporary file then renames it over the key's
// file, so a crash never leaves a truncated value behind.
func (d *Dir) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	f, err := os.CreateTemp(d.path, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	tmp := f.Name()
	if _, err := f.Write(value); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("save %q: %w", key, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save %q: %w", key, err)
	}
	if err := os.Rename(tmp, d.filename(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

func (d *Dir) Close() error { return nil }
