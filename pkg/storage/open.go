// Package storage provides the public factory for loot board storage
// backends while keeping implementation details internal.
package storage

import (
	"fmt"

	"github.com/mesh-intelligence/lootboard/internal/badgerstore"
	"github.com/mesh-intelligence/lootboard/internal/jsonl"
	"github.com/mesh-intelligence/lootboard/internal/sqlite"
	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// New returns a detached backend for the named backend.
func New(backend string) (types.Storage, error) {
	switch backend {
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case types.BackendBadger:
		return badgerstore.NewBackend(), nil
	case types.BackendJSONL:
		return jsonl.NewBackend(), nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
	}
}

// Open creates the backend named by config and attaches it.
//
// Example:
//
//	store, err := storage.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".lootboard-db",
//	})
//	defer store.Detach()
func Open(config types.Config) (types.Storage, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	s, err := New(config.Backend)
	if err != nil {
		return nil, err
	}
	if err := s.Attach(config); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", config.Backend, err)
	}
	return s, nil
}
