package board

import (
	"maps"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// memStorage is an in-memory types.Storage for gateway tests.
type memStorage struct {
	entries  map[string]string
	failSet  error
	setCalls int
}

func newMemStorage() *memStorage {
	return &memStorage{entries: make(map[string]string)}
}

func (m *memStorage) Attach(types.Config) error { return nil }
func (m *memStorage) Detach() error             { return nil }

func (m *memStorage) Get(key string) (string, error) {
	v, ok := m.entries[key]
	if !ok {
		return "", types.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStorage) Set(key, value string) error {
	m.setCalls++
	if m.failSet != nil {
		return m.failSet
	}
	m.entries[key] = value
	return nil
}

func (m *memStorage) SetAll(entries map[string]string) error {
	if m.failSet != nil {
		return m.failSet
	}
	maps.Copy(m.entries, entries)
	return nil
}

func (m *memStorage) All() (map[string]string, error) {
	return maps.Clone(m.entries), nil
}

func (m *memStorage) Clear() error {
	clear(m.entries)
	return nil
}

// recordingPersister counts saves so tests can check that every mutation
// persists synchronously.
type recordingPersister struct {
	catalogSaves int
	playerSaves  int
	err          error
}

func (p *recordingPersister) SaveCatalog(*Catalog) error {
	p.catalogSaves++
	return p.err
}

func (p *recordingPersister) SavePlayers(*Registry, *Ledger) error {
	p.playerSaves++
	return p.err
}

func itemIDs(c *Catalog) []string {
	var ids []string
	for _, it := range c.Items() {
		ids = append(ids, it.ID)
	}
	return ids
}
