package board

import (
	"maps"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// Ledger records, per participant slot, a sparse mapping from item ID to
// the quantity held. Absent entries read as zero.
type Ledger struct {
	holdings [types.NumSlots]map[string]int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	l := &Ledger{}
	for i := range l.holdings {
		l.holdings[i] = make(map[string]int)
	}
	return l
}

// Quantity returns the quantity of itemID held by slot, or 0.
func (l *Ledger) Quantity(slot types.SlotID, itemID string) int {
	if !slot.Valid() {
		return 0
	}
	return l.holdings[slot.Index()][itemID]
}

// SetQuantity upserts the quantity of itemID held by slot. Negative values
// are stored as 0. Returns ErrInvalidSlot for a slot outside 1..4.
func (l *Ledger) SetQuantity(slot types.SlotID, itemID string, qty int) error {
	if !slot.Valid() {
		return types.ErrInvalidSlot
	}
	l.holdings[slot.Index()][itemID] = max(qty, 0)
	return nil
}

// Has reports whether slot has an entry for itemID, including a zero entry.
func (l *Ledger) Has(slot types.SlotID, itemID string) bool {
	if !slot.Valid() {
		return false
	}
	_, ok := l.holdings[slot.Index()][itemID]
	return ok
}

// Holdings returns a copy of slot's item-to-quantity mapping.
func (l *Ledger) Holdings(slot types.SlotID) map[string]int {
	if !slot.Valid() {
		return map[string]int{}
	}
	return maps.Clone(l.holdings[slot.Index()])
}

// RenameItemKey moves every slot's entry at oldID to newID. An existing
// entry at newID is overwritten (last write wins). Slots without an entry
// at oldID are left unchanged.
func (l *Ledger) RenameItemKey(oldID, newID string) {
	if oldID == newID {
		return
	}
	for _, h := range l.holdings {
		qty, ok := h[oldID]
		if !ok {
			continue
		}
		delete(h, oldID)
		h[newID] = qty
	}
}

// CoerceQuantity converts an edit-widget value to a non-negative integer.
// Numbers are truncated toward zero; negative, NaN, infinite, empty and
// non-numeric input all become 0.
func CoerceQuantity(v any) int {
	switch n := v.(type) {
	case int:
		return max(n, 0)
	case int64:
		return int(max(n, 0))
	case string:
		v = strings.TrimSpace(n)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt {
		return math.MaxInt
	}
	return int(f)
}
