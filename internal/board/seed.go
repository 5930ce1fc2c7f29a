package board

import "github.com/mesh-intelligence/lootboard/pkg/types"

// seedItems is the catalog used when no loot data is stored.
var seedItems = []types.Item{
	{ID: "Carbalite Ore", Tags: []string{"Basic", "Ore"}},
	{ID: "Monster Bone Large", Tags: []string{"Basic", "Bone"}},
	{ID: "Machalite Ore", Tags: []string{"Basic", "Ore"}},
	{ID: "Monster Keenbone", Tags: []string{"Basic", "Bone"}},
	{ID: "Dragonite Ore", Tags: []string{"Basic", "Ore"}},
	{ID: "Monster Hardbone", Tags: []string{"Basic", "Bone"}},
	{ID: "Fucium Ore", Tags: []string{"Basic", "Ore"}},
	{ID: "Ancient Bone", Tags: []string{"Basic", "Bone"}},
	{ID: "Quality Bone", Tags: []string{"Basic", "Bone"}},
	{ID: "Boulder Bone", Tags: []string{"Basic", "Bone"}},
	{ID: "Monster Bone", Tags: []string{"Basic", "Bone"}},
	{ID: "Small Dragonvein Crystal", Tags: []string{"Basic", "Ore"}},
	{ID: "Medium Wingdrake Hide", Tags: []string{"Basic", "Hide"}},
	{ID: "Potions", Tags: []string{"Consumable"}},
}

// seedPlayer describes a participant slot used when no player data is stored.
type seedPlayer struct {
	slot     types.SlotID
	name     string
	holdings map[string]int
}

// seedPlayers fills all four slots with starting holdings.
var seedPlayers = []seedPlayer{
	{slot: 1, name: "Player 1", holdings: map[string]int{"Bone": 10, "Scale": 5}},
	{slot: 2, name: "Player 2", holdings: map[string]int{"Bone": 5, "Scale": 10}},
	{slot: 3, name: "Player 3", holdings: map[string]int{"Bone": 30, "Scale": 5}},
	{slot: 4, name: "Player 4", holdings: map[string]int{"Bone": 5, "Scale": 15}},
}

// SeedCatalog returns a fresh copy of the default catalog.
func SeedCatalog() *Catalog {
	return NewCatalogFrom(seedItems)
}

// SeedPlayers returns a fresh copy of the default registry and ledger.
func SeedPlayers() (*Registry, *Ledger) {
	registry := NewRegistry()
	ledger := NewLedger()
	names := make(map[types.SlotID]string, len(seedPlayers))
	for _, sp := range seedPlayers {
		names[sp.slot] = sp.name
		for id, qty := range sp.holdings {
			_ = ledger.SetQuantity(sp.slot, id, qty)
		}
	}
	_ = registry.Configure(names)
	return registry, ledger
}
