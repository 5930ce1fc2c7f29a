package board

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// JSON record structures for the two durable store keys.

// lootJSON is one value of the lootData object, keyed by item ID.
type lootJSON struct {
	Tags []string `json:"tags"`
}

// playerJSON is one element of the playerData array.
type playerJSON struct {
	ID   string                  `json:"id"`
	Name string                  `json:"name"`
	Loot map[string]quantityJSON `json:"loot"`
}

// quantityJSON is one holding inside playerJSON.Loot.
type quantityJSON struct {
	Quantity int `json:"quantity"`
}

// encodeCatalog writes the catalog as a JSON object whose key order is the
// catalog order. encoding/json sorts map keys, so the object is assembled
// by hand.
func encodeCatalog(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range c.Items() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(it.ID)
		if err != nil {
			return nil, fmt.Errorf("marshaling item id: %w", err)
		}
		tags := it.Tags
		if tags == nil {
			tags = []string{}
		}
		val, err := json.Marshal(lootJSON{Tags: tags})
		if err != nil {
			return nil, fmt.Errorf("marshaling item %q: %w", it.ID, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeCatalog parses a lootData value, keeping the document's key order.
// Items with an empty id are dropped; missing tags read as none.
func decodeCatalog(data []byte) (*Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", types.ErrPersistenceParse, types.LootDataKey)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: %s is not a JSON object", types.ErrPersistenceParse, types.LootDataKey)
	}

	var items []types.Item
	doc.ForEach(func(key, value gjson.Result) bool {
		if key.String() == "" {
			return true
		}
		tags := []string{}
		for _, t := range value.Get("tags").Array() {
			tags = append(tags, t.String())
		}
		items = append(items, types.Item{ID: key.String(), Tags: tags})
		return true
	})
	return NewCatalogFrom(items), nil
}

// encodePlayers writes all four slots, in slot order, with their holdings.
func encodePlayers(r *Registry, l *Ledger) ([]byte, error) {
	players := make([]playerJSON, 0, types.NumSlots)
	for _, p := range r.Participants() {
		loot := make(map[string]quantityJSON)
		for id, qty := range l.Holdings(p.Slot) {
			loot[id] = quantityJSON{Quantity: qty}
		}
		players = append(players, playerJSON{
			ID:   p.Slot.String(),
			Name: p.Name,
			Loot: loot,
		})
	}
	data, err := json.Marshal(players)
	if err != nil {
		return nil, fmt.Errorf("marshaling players: %w", err)
	}
	return data, nil
}

// decodePlayers parses a playerData value. Entries are placed by id, so a
// short or reordered array is accepted; unknown ids are ignored and missing
// slots stay inactive. Quantities are coerced to non-negative integers.
func decodePlayers(data []byte) (*Registry, *Ledger, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, fmt.Errorf("%w: %s is not valid JSON", types.ErrPersistenceParse, types.PlayerDataKey)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, nil, fmt.Errorf("%w: %s is not a JSON array", types.ErrPersistenceParse, types.PlayerDataKey)
	}

	registry := NewRegistry()
	ledger := NewLedger()
	names := make(map[types.SlotID]string)
	doc.ForEach(func(_, player gjson.Result) bool {
		slot, err := types.ParseSlotID(player.Get("id").String())
		if err != nil {
			return true
		}
		names[slot] = player.Get("name").String()
		player.Get("loot").ForEach(func(itemID, holding gjson.Result) bool {
			qty := holding.Get("quantity")
			if !qty.Exists() {
				return true
			}
			// slot is valid here, so SetQuantity cannot fail.
			_ = ledger.SetQuantity(slot, itemID.String(), CoerceQuantity(qty.Value()))
			return true
		})
		return true
	})
	if err := registry.Configure(names); err != nil {
		return nil, nil, err
	}
	return registry, ledger, nil
}

// decodeImport parses an export blob into store entries. String values are
// stored verbatim; any other JSON value is stored as its raw JSON text.
func decodeImport(blob []byte) (map[string]string, error) {
	if !gjson.ValidBytes(blob) {
		return nil, fmt.Errorf("%w: not valid JSON", types.ErrImportParse)
	}
	doc := gjson.ParseBytes(blob)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: not a JSON object", types.ErrImportParse)
	}

	entries := make(map[string]string)
	doc.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			entries[key.String()] = value.Str
		} else {
			entries[key.String()] = value.Raw
		}
		return true
	})
	return entries, nil
}
