package board

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// State is the gateway lifecycle state.
type State int

// Gateway states. Import and Reset pass back through StateUninitialized
// while the board is torn down and reloaded.
const (
	StateUninitialized State = iota
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Gateway loads the board from a types.Storage, writes it back after every
// mutation, and implements whole-store export, import, and reset.
type Gateway struct {
	storage types.Storage
	logger  *zap.Logger
	state   State
}

// NewGateway creates a gateway over an attached storage. A nil logger
// disables logging.
func NewGateway(storage types.Storage, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		storage: storage,
		logger:  logger.Named("gateway"),
	}
}

// State returns the current lifecycle state.
func (g *Gateway) State() State {
	return g.state
}

// Load builds a board from storage. A key that is absent or fails to parse
// falls back to the seed data; parse failures are logged, never returned.
// Both keys are written back before Load returns, so seeded state is
// durable from the first run.
func (g *Gateway) Load() (*Board, error) {
	catalog, err := g.loadCatalog()
	if err != nil {
		return nil, err
	}
	registry, ledger, err := g.loadPlayers()
	if err != nil {
		return nil, err
	}

	if err := g.SaveCatalog(catalog); err != nil {
		return nil, err
	}
	if err := g.SavePlayers(registry, ledger); err != nil {
		return nil, err
	}

	g.state = StateLoaded
	g.logger.Debug("board loaded",
		zap.Int("items", catalog.Len()),
		zap.Int("active_players", len(registry.Active())),
	)
	return New(catalog, registry, ledger, g), nil
}

func (g *Gateway) loadCatalog() (*Catalog, error) {
	raw, ok, err := g.read(types.LootDataKey)
	if err != nil || !ok {
		return SeedCatalog(), err
	}
	catalog, err := decodeCatalog([]byte(raw))
	if err != nil {
		g.logger.Warn("falling back to seed catalog", zap.String("key", types.LootDataKey), zap.Error(err))
		return SeedCatalog(), nil
	}
	return catalog, nil
}

func (g *Gateway) loadPlayers() (*Registry, *Ledger, error) {
	raw, ok, err := g.read(types.PlayerDataKey)
	if err != nil || !ok {
		registry, ledger := SeedPlayers()
		return registry, ledger, err
	}
	registry, ledger, err := decodePlayers([]byte(raw))
	if err != nil {
		g.logger.Warn("falling back to seed players", zap.String("key", types.PlayerDataKey), zap.Error(err))
		registry, ledger = SeedPlayers()
	}
	return registry, ledger, nil
}

// read returns the value at key and whether it was present.
func (g *Gateway) read(key string) (string, bool, error) {
	raw, err := g.storage.Get(key)
	if errors.Is(err, types.ErrKeyNotFound) {
		g.logger.Debug("key absent, using seed data", zap.String("key", key))
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return raw, true, nil
}

// SaveCatalog writes the catalog to the lootData key.
func (g *Gateway) SaveCatalog(catalog *Catalog) error {
	data, err := encodeCatalog(catalog)
	if err != nil {
		return err
	}
	return g.write(types.LootDataKey, data)
}

// SavePlayers writes the registry and ledger to the playerData key.
func (g *Gateway) SavePlayers(registry *Registry, ledger *Ledger) error {
	data, err := encodePlayers(registry, ledger)
	if err != nil {
		return err
	}
	return g.write(types.PlayerDataKey, data)
}

func (g *Gateway) write(key string, data []byte) error {
	if err := g.storage.Set(key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	g.logger.Debug("saved", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// Export serializes every key in the store, not only the board's own, to a
// JSON object of raw string values. The result round-trips through Import.
func (g *Gateway) Export() ([]byte, error) {
	entries, err := g.storage.All()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}

// Import writes every key of an exported blob into storage and reloads the
// board from scratch. A malformed blob returns ErrImportParse and leaves
// storage untouched; the write itself is atomic.
func (g *Gateway) Import(blob []byte) (*Board, error) {
	entries, err := decodeImport(blob)
	if err != nil {
		return nil, err
	}
	if err := g.storage.SetAll(entries); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	g.logger.Info("imported data", zap.Int("keys", len(entries)))

	g.state = StateUninitialized
	return g.Load()
}

// Reset exports the whole store as a backup, clears it, and reloads, which
// repopulates the board from the seed data. The backup is returned even
// when a later step fails.
func (g *Gateway) Reset() ([]byte, *Board, error) {
	backup, err := g.Export()
	if err != nil {
		return nil, nil, fmt.Errorf("reset: %w", err)
	}
	if err := g.storage.Clear(); err != nil {
		return backup, nil, fmt.Errorf("reset: %w", err)
	}
	g.logger.Info("cleared storage", zap.Int("backup_bytes", len(backup)))

	g.state = StateUninitialized
	board, err := g.Load()
	return backup, board, err
}
