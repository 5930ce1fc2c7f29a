package types

import "errors"

// Storage is the durable key-value store behind the board. Keys and values
// are opaque strings; the board owns two keys (PlayerDataKey, LootDataKey)
// but export and import pass every key through untouched.
//
// Callers attach to a backend, read and write, and detach when done. Writes
// are flushed before the call returns.
type Storage interface {
	// Attach connects the Storage to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, other operations return ErrStorageDetached.
	Detach() error

	// Get returns the value stored at key, or ErrKeyNotFound.
	Get(key string) (string, error)

	// Set writes value at key, replacing any previous value.
	Set(key, value string) error

	// SetAll writes every entry in one atomic step: either all entries are
	// stored or none are.
	SetAll(entries map[string]string) error

	// All returns a copy of every entry in the store.
	All() (map[string]string, error)

	// Clear removes every entry.
	Clear() error
}

// Storage lifecycle and access errors.
var (
	ErrStorageDetached = errors.New("storage is detached")
	ErrAlreadyAttached = errors.New("storage is already attached")
	ErrKeyNotFound     = errors.New("key not found")
)
