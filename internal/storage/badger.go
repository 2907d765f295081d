// ABOUTME: Badger KV backend storing document slots in an embedded LSM directory.
// ABOUTME: The directory is locked exclusively while the store is open.
package storage

import (
	"errors"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v3"
)

// BadgerKV stores slots in a Badger database.
type BadgerKV struct {
	db  *badger.DB
	dir string
}

// OpenBadger opens or creates a Badger database in dir.
func OpenBadger(dir string) (*BadgerKV, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerKV{db: db, dir: dir}, nil
}

// OpenBadgerInMemory opens a Badger database that never touches disk.
func OpenBadgerInMemory() (*BadgerKV, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerKV{db: db}, nil
}

// Dir returns the database directory, empty when in memory.
func (b *BadgerKV) Dir() string {
	return b.dir
}

// Get returns the value stored under key.
func (b *BadgerKV) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (b *BadgerKV) Set(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// SetAll stores every value in a single transaction.
func (b *BadgerKV) SetAll(values map[string][]byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		for k, v := range values {
			if err := txn.Set([]byte(k), v); err != nil {
				return fmt.Errorf("set %s: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("set slots: %w", err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (b *BadgerKV) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close flushes and closes the database.
func (b *BadgerKV) Close() error {
	return b.db.Close()
}
