// Package jsonl implements a storage backend that keeps every entry as one
// JSON line in a single file. The file is human-readable and diffs cleanly
// under version control.
package jsonl

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// FileName is the storage file created inside DataDir.
const FileName = "storage.jsonl"

// Backend implements types.Storage on a JSONL file. Entries are cached in
// memory and the file is rewritten on every write.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	path     string
	entries  map[string]string
}

// NewBackend creates a detached JSONL backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach loads the storage file from DataDir, creating the directory if needed.
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
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(dataDir, FileName)
	entries, err := readRecords(path)
	if err != nil {
		return err
	}

	b.path = path
	b.entries = entries
	b.attached = true
	return nil
}

// Detach releases the in-memory cache. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
	b.attached = false
	return nil
}

// Get returns the value stored at key, or ErrKeyNotFound.
func (b *Backend) Get(key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", types.ErrStorageDetached
	}
	value, ok := b.entries[key]
	if !ok {
		return "", types.ErrKeyNotFound
	}
	return value, nil
}

// Set writes value at key and rewrites the file.
func (b *Backend) Set(key, value string) error {
	return b.SetAll(map[string]string{key: value})
}

// SetAll writes every entry with a single file rewrite. On failure the
// cache and the file are unchanged.
func (b *Backend) SetAll(entries map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStorageDetached
	}

	next := make(map[string]string, len(b.entries)+len(entries))
	for k, v := range b.entries {
		next[k] = v
	}
	for k, v := range entries {
		next[k] = v
	}
	if err := b.persist(next); err != nil {
		return err
	}
	b.entries = next
	return nil
}

// All returns a copy of every entry.
func (b *Backend) All() (map[string]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStorageDetached
	}
	out := make(map[string]string, len(b.entries))
	for k, v := range b.entries {
		out[k] = v
	}
	return out, nil
}

// Clear deletes every entry and truncates the file.
func (b *Backend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStorageDetached
	}
	empty := map[string]string{}
	if err := b.persist(empty); err != nil {
		return err
	}
	b.entries = empty
	return nil
}

// persist rewrites the file with entries sorted by key.
func (b *Backend) persist(entries map[string]string) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return writeRecords(b.path, keys, entries)
}
