// Package badgerstore implements the Badger storage backend for the loot board.
package badgerstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// DirName is the database directory created inside DataDir.
const DirName = "badger"

// Backend implements types.Storage on an embedded Badger database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	db       *badger.DB
}

// NewBackend creates a detached Badger backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens the database under DataDir/badger.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	path := filepath.Join(dataDir, DirName)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.SyncWrites = true
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open badger db: %w", err)
	}

	b.db = db
	b.attached = true
	return nil
}

// Detach closes the database. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.attached = false
	return err
}

// Get returns the value stored at key, or ErrKeyNotFound.
func (b *Backend) Get(key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", types.ErrStorageDetached
	}

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
		return "", types.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return string(value), nil
}

// Set writes value at key.
func (b *Backend) Set(key, value string) error {
	return b.SetAll(map[string]string{key: value})
}

// SetAll writes every entry in one transaction.
func (b *Backend) SetAll(entries map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStorageDetached
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		for key, value := range entries {
			if err := txn.Set([]byte(key), []byte(value)); err != nil {
				return fmt.Errorf("set %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}
	return nil
}

// All returns every entry.
func (b *Backend) All() (map[string]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStorageDetached
	}

	entries := make(map[string]string)
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			entries[string(item.KeyCopy(nil))] = string(value)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

// Clear drops every entry.
func (b *Backend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStorageDetached
	}
	if err := b.db.DropAll(); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	return nil
}
