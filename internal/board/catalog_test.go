package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

func TestCatalogAdd(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Add("Monster Bone", []string{"Basic", "Bone"}))
	require.NoError(t, c.Add("Potions", nil))

	assert.Equal(t, []string{"Monster Bone", "Potions"}, itemIDs(c))

	err := c.Add("Monster Bone", []string{"Other"})
	assert.ErrorIs(t, err, types.ErrDuplicateID)

	it, err := c.Get("Monster Bone")
	require.NoError(t, err)
	assert.Equal(t, []string{"Basic", "Bone"}, it.Tags, "duplicate add must not overwrite")

	it, err = c.Get("Potions")
	require.NoError(t, err)
	assert.NotNil(t, it.Tags)
	assert.Empty(t, it.Tags)

	assert.ErrorIs(t, c.Add("", nil), types.ErrInvalidID)
}

func TestCatalogEdit(t *testing.T) {
	tests := []struct {
		name     string
		newID    string
		oldID    string
		wantIDs  []string
		wantTags []string
	}{
		{
			name:     "rename moves item to the end",
			newID:    "Large Bone",
			oldID:    "Bone",
			wantIDs:  []string{"Ore", "Hide", "Large Bone"},
			wantTags: []string{"Edited"},
		},
		{
			name:     "same id updates tags",
			newID:    "Ore",
			oldID:    "Ore",
			wantIDs:  []string{"Bone", "Hide", "Ore"},
			wantTags: []string{"Edited"},
		},
		{
			name:     "collision overwrites the other item in place",
			newID:    "Hide",
			oldID:    "Bone",
			wantIDs:  []string{"Ore", "Hide"},
			wantTags: []string{"Edited"},
		},
		{
			name:     "absent old id inserts",
			newID:    "Crystal",
			oldID:    "Missing",
			wantIDs:  []string{"Bone", "Ore", "Hide", "Crystal"},
			wantTags: []string{"Edited"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalogFrom([]types.Item{
				{ID: "Bone", Tags: []string{"Bone"}},
				{ID: "Ore", Tags: []string{"Ore"}},
				{ID: "Hide", Tags: []string{"Hide"}},
			})

			require.NoError(t, c.Edit(tt.newID, []string{"Edited"}, tt.oldID))

			assert.Equal(t, tt.wantIDs, itemIDs(c))
			it, err := c.Get(tt.newID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTags, it.Tags)
			if tt.newID != tt.oldID {
				assert.False(t, c.Has(tt.oldID))
			}
		})
	}
}

func TestCatalogEditRejectsEmptyID(t *testing.T) {
	c := NewCatalogFrom([]types.Item{{ID: "Bone"}})
	assert.ErrorIs(t, c.Edit("", nil, "Bone"), types.ErrInvalidID)
	assert.True(t, c.Has("Bone"), "failed edit must not remove the old item")
}

func TestCatalogRemove(t *testing.T) {
	c := NewCatalogFrom([]types.Item{{ID: "Bone"}, {ID: "Ore"}})

	c.Remove("Bone")
	assert.Equal(t, []string{"Ore"}, itemIDs(c))

	c.Remove("Bone")
	assert.Equal(t, 1, c.Len(), "remove is idempotent")

	_, err := c.Get("Bone")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCatalogItemsAreCopies(t *testing.T) {
	c := NewCatalogFrom([]types.Item{{ID: "Bone", Tags: []string{"Bone"}}})

	items := c.Items()
	items[0].Tags[0] = "changed"

	it, err := c.Get("Bone")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bone"}, it.Tags)
}
