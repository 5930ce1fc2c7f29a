package board

import (
	"fmt"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// Registry holds the four fixed participant slots. Only names change; the
// set of slots never does.
type Registry struct {
	slots [types.NumSlots]types.Participant
}

// NewRegistry creates a registry with every slot inactive.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, s := range types.Slots {
		r.slots[s.Index()] = types.Participant{Slot: s}
	}
	return r
}

// Name returns the display name bound to slot ("" when inactive).
func (r *Registry) Name(slot types.SlotID) string {
	if !slot.Valid() {
		return ""
	}
	return r.slots[slot.Index()].Name
}

// Participants returns all four slots in order.
func (r *Registry) Participants() []types.Participant {
	out := make([]types.Participant, types.NumSlots)
	copy(out, r.slots[:])
	return out
}

// Active returns the participants whose slot has a name, in slot order.
func (r *Registry) Active() []types.Participant {
	var out []types.Participant
	for _, p := range r.slots {
		if p.Active() {
			out = append(out, p)
		}
	}
	return out
}

// Names returns the slot-to-name mapping of every active slot.
func (r *Registry) Names() map[types.SlotID]string {
	names := make(map[types.SlotID]string)
	for _, p := range r.slots {
		if p.Active() {
			names[p.Slot] = p.Name
		}
	}
	return names
}

// Configure merges names into the registry. Slots missing from names keep
// their current name; an empty name deactivates a slot. Holdings are keyed
// by item and are not touched. Slot 1's non-empty requirement is enforced
// by form validation, not here.
// Returns ErrInvalidSlot if names mentions a slot outside 1..4; no slot is
// changed in that case.
func (r *Registry) Configure(names map[types.SlotID]string) error {
	for slot := range names {
		if !slot.Valid() {
			return fmt.Errorf("%w: %d", types.ErrInvalidSlot, slot)
		}
	}
	for slot, name := range names {
		r.slots[slot.Index()].Name = name
	}
	return nil
}
