// Package board holds the in-memory loot board: the item catalog, the
// participant registry, the holdings ledger, the mutations that keep them
// consistent, the grid projection derived from them, and the gateway that
// persists them to a types.Storage.
package board

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// Catalog is the ordered set of item definitions. Iteration order is
// insertion order; sorting is left to the grid.
type Catalog struct {
	order []string
	tags  map[string][]string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{tags: make(map[string][]string)}
}

// NewCatalogFrom creates a catalog holding items in the given order.
// Later duplicates overwrite earlier ones in place.
func NewCatalogFrom(items []types.Item) *Catalog {
	c := NewCatalog()
	for _, it := range items {
		c.put(it.ID, it.Tags)
	}
	return c
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Has reports whether an item with id exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.tags[id]
	return ok
}

// Get returns the item with id. Returns ErrNotFound if absent.
func (c *Catalog) Get(id string) (types.Item, error) {
	tags, ok := c.tags[id]
	if !ok {
		return types.Item{}, fmt.Errorf("%w: %q", types.ErrNotFound, id)
	}
	return types.Item{ID: id, Tags: slices.Clone(tags)}, nil
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []types.Item {
	items := make([]types.Item, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, types.Item{ID: id, Tags: slices.Clone(c.tags[id])})
	}
	return items
}

// Add inserts a new item at the end of the catalog.
// Returns ErrInvalidID for an empty id and ErrDuplicateID if id is taken.
func (c *Catalog) Add(id string, tags []string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if c.Has(id) {
		return fmt.Errorf("%w: %q", types.ErrDuplicateID, id)
	}
	c.put(id, tags)
	return nil
}

// Edit replaces the item at oldID with (newID, tags). When newID equals
// oldID this is a tag update. The edited item moves to the end of the
// catalog, except when newID already names a different item: that item is
// overwritten where it stands (last write wins). Callers are expected to
// prevent such collisions upstream.
func (c *Catalog) Edit(newID string, tags []string, oldID string) error {
	if newID == "" {
		return types.ErrInvalidID
	}
	c.Remove(oldID)
	c.put(newID, tags)
	return nil
}

// Remove deletes the item with id. Removing an absent item is a no-op.
func (c *Catalog) Remove(id string) {
	if !c.Has(id) {
		return
	}
	delete(c.tags, id)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == id })
}

// put upserts without the duplicate check; existing ids keep their position.
func (c *Catalog) put(id string, tags []string) {
	if tags == nil {
		tags = []string{}
	}
	if !c.Has(id) {
		c.order = append(c.order, id)
	}
	c.tags[id] = slices.Clone(tags)
}
