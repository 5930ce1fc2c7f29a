package board

import (
	"fmt"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// Persister writes board state to durable storage. SaveCatalog is called
// after every catalog change and SavePlayers after every registry or
// ledger change; both return only once the write is flushed.
type Persister interface {
	SaveCatalog(catalog *Catalog) error
	SavePlayers(registry *Registry, ledger *Ledger) error
}

// Action is a row menu action.
type Action string

// Row actions.
const (
	ActionEdit   Action = "edit"
	ActionRemove Action = "remove"
)

// Board owns the catalog, registry, and ledger and applies every mutation
// to them. Each mutation completes in memory and then persists the touched
// state before returning. A Board is not safe for concurrent use; it serves
// one interactive session.
type Board struct {
	catalog  *Catalog
	registry *Registry
	ledger   *Ledger
	persist  Persister
}

// New creates a board over the given stores. A nil persister keeps the
// board in memory only.
func New(catalog *Catalog, registry *Registry, ledger *Ledger, persist Persister) *Board {
	if persist == nil {
		persist = nopPersister{}
	}
	return &Board{
		catalog:  catalog,
		registry: registry,
		ledger:   ledger,
		persist:  persist,
	}
}

// Catalog returns the item catalog. Callers must mutate through the Board.
func (b *Board) Catalog() *Catalog { return b.catalog }

// Registry returns the participant registry.
func (b *Board) Registry() *Registry { return b.registry }

// Ledger returns the holdings ledger.
func (b *Board) Ledger() *Ledger { return b.ledger }

// Project derives the current grid.
func (b *Board) Project() Projection {
	return Project(b.catalog, b.registry, b.ledger)
}

// AddLootType adds a new item type.
// Returns ErrDuplicateID if the id is taken.
func (b *Board) AddLootType(id string, tags []string) error {
	if err := b.catalog.Add(id, tags); err != nil {
		return err
	}
	return b.saveCatalog()
}

// EditLootType renames and retags prevID. The catalog edit and the ledger
// key rename are applied together, catalog first, so holdings follow the
// item to its new id. A newID that names a different existing item
// overwrites it.
func (b *Board) EditLootType(newID string, tags []string, prevID string) error {
	if err := b.catalog.Edit(newID, tags, prevID); err != nil {
		return err
	}
	b.ledger.RenameItemKey(prevID, newID)

	if err := b.saveCatalog(); err != nil {
		return err
	}
	return b.savePlayers()
}

// RemoveLootType removes an item type. Holdings recorded under id are left
// in the ledger, unreachable from the grid.
func (b *Board) RemoveLootType(id string) error {
	b.catalog.Remove(id)
	return b.saveCatalog()
}

// ConfigurePlayers merges slot names into the registry.
func (b *Board) ConfigurePlayers(names map[types.SlotID]string) error {
	if err := b.registry.Configure(names); err != nil {
		return err
	}
	return b.savePlayers()
}

// SetQuantity records the quantity of itemID held by slot.
func (b *Board) SetQuantity(slot types.SlotID, itemID string, qty int) error {
	if err := b.ledger.SetQuantity(slot, itemID, qty); err != nil {
		return err
	}
	return b.savePlayers()
}

// CommitCell applies an inline grid edit. Only participant quantity
// columns are editable; the value is coerced with CoerceQuantity.
func (b *Board) CommitCell(rowID, field string, value any) error {
	slot, ok := ParseQuantityField(field)
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrFieldNotEditable, field)
	}
	if !b.catalog.Has(rowID) {
		return fmt.Errorf("%w: %q", types.ErrNotFound, rowID)
	}
	return b.SetQuantity(slot, rowID, CoerceQuantity(value))
}

// RowAction handles a row menu action. ActionEdit returns the item so the
// caller can prefill the edit form; ActionRemove removes the item and
// returns what was removed.
func (b *Board) RowAction(rowID string, action Action) (types.Item, error) {
	item, err := b.catalog.Get(rowID)
	if err != nil {
		return types.Item{}, err
	}

	switch action {
	case ActionEdit:
		return item, nil
	case ActionRemove:
		return item, b.RemoveLootType(rowID)
	default:
		return types.Item{}, fmt.Errorf("%w: %q", types.ErrUnknownAction, action)
	}
}

func (b *Board) saveCatalog() error {
	if err := b.persist.SaveCatalog(b.catalog); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}

func (b *Board) savePlayers() error {
	if err := b.persist.SavePlayers(b.registry, b.ledger); err != nil {
		return fmt.Errorf("persist players: %w", err)
	}
	return nil
}

type nopPersister struct{}

func (nopPersister) SaveCatalog(*Catalog) error           { return nil }
func (nopPersister) SavePlayers(*Registry, *Ledger) error { return nil }
