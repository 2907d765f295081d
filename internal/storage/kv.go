// ABOUTME: Key-value slot interface the document store persists through.
// ABOUTME: Backends: SQLite table, Badger directory, or in-memory map.
package storage

import "errors"

// ErrKeyNotFound is returned by KV.Get when the key has never been set.
var ErrKeyNotFound = errors.New("key not found")

// KV stores opaque values under string keys.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	// SetAll writes every entry or none of them.
	SetAll(values map[string][]byte) error
	Delete(key string) error
	Close() error
}
