package types

// Durable store keys owned by the board.
const (
	PlayerDataKey = "playerData"
	LootDataKey   = "lootData"
)
