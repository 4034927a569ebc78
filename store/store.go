// Package store provides the key/value persistence used to keep the state of
// the calculator between runs.
//
// A Store holds opaque blobs by key. Three implementations are available: an
// in-memory map, a directory with one file per key, and a SQLite database.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound is returned by Load when the key holds no value.
var ErrNotFound = errors.New("key not found")

// Store is a key/value store of blobs.
type Store interface {
	// Load returns the value stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error
	// Close releases the resources held by the store.
	Close() error
}

// Kind names a Store implementation.
type Kind string

const (
	KindMemory Kind = "memory"
	KindDir    Kind = "dir"
	KindSQLite Kind = "sqlite"
)

// Open opens the store of the given kind rooted at path. path is a directory
// for KindDir, a database file for KindSQLite, and is ignored for KindMemory.
func Open(kind Kind, path string) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindDir, "":
		return OpenDir(path)
	case KindSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// checkKey rejects keys that cannot be used as a file name.
func checkKey(key string) error {
	if !validKey.MatchString(key) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
