package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

func TestRegistryStartsInactive(t *testing.T) {
	r := NewRegistry()

	assert.Empty(t, r.Active())
	assert.Len(t, r.Participants(), types.NumSlots)
	for i, p := range r.Participants() {
		assert.Equal(t, types.Slots[i], p.Slot)
	}
}

func TestRegistryConfigureMerges(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(map[types.SlotID]string{1: "P1", 2: "P2", 3: "P3", 4: "P4"}))

	require.NoError(t, r.Configure(map[types.SlotID]string{1: "Alice"}))

	assert.Equal(t, "Alice", r.Name(1))
	assert.Equal(t, "P2", r.Name(2))
	assert.Equal(t, "P3", r.Name(3))
	assert.Equal(t, "P4", r.Name(4))
}

func TestRegistryConfigureEmptyNameDeactivates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(map[types.SlotID]string{1: "Alice", 3: "Carol"}))
	require.NoError(t, r.Configure(map[types.SlotID]string{3: ""}))

	active := r.Active()
	require.Len(t, active, 1)
	assert.Equal(t, types.SlotID(1), active[0].Slot)
	assert.Equal(t, map[types.SlotID]string{1: "Alice"}, r.Names())
}

func TestRegistryConfigureRejectsInvalidSlot(t *testing.T) {
	r := NewRegistry()
	err := r.Configure(map[types.SlotID]string{1: "Alice", 5: "Eve"})

	assert.ErrorIs(t, err, types.ErrInvalidSlot)
	assert.Empty(t, r.Name(1), "no slot changes on error")
	assert.Empty(t, r.Name(5))
}
