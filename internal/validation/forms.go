package validation

import (
	"github.com/mesh-intelligence/lootboard/internal/board"
	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// FieldSpec declares one form field for the form renderer.
type FieldSpec struct {
	Required bool   `json:"required"`
	Message  string `json:"message"`
}

// Schema maps form field names to their specs.
type Schema map[string]FieldSpec

// LootForm is the add/edit loot type form.
type LootForm struct {
	ID   string   `json:"id" validate:"required,notblank"`
	Tags []string `json:"tags"`
}

// Schema returns the loot form's field specs.
func (LootForm) Schema() Schema {
	return Schema{
		"id":   {Required: true, Message: "Name is required"},
		"tags": {},
	}
}

// LootFormFor prefills the edit form from an item.
func LootFormFor(item types.Item) LootForm {
	return LootForm{ID: item.ID, Tags: item.Clone().Tags}
}

// SubmitLoot validates the form and applies it. An empty prevID adds a new
// loot type; otherwise the item at prevID is edited.
func (v *Validator) SubmitLoot(b *board.Board, form LootForm, prevID string) error {
	if err := v.Validate(form); err != nil {
		return err
	}
	if prevID == "" {
		return b.AddLootType(form.ID, form.Tags)
	}
	return b.EditLootType(form.ID, form.Tags, prevID)
}

// PlayersForm is the configure players form. Slot 1 must be named; slots
// 2 through 4 are optional.
type PlayersForm struct {
	Player1 string `json:"1" validate:"required,notblank"`
	Player2 string `json:"2"`
	Player3 string `json:"3"`
	Player4 string `json:"4"`
}

// Schema returns the players form's field specs.
func (PlayersForm) Schema() Schema {
	return Schema{
		"1": {Required: true, Message: "Player 1's name is required"},
		"2": {},
		"3": {},
		"4": {},
	}
}

// PlayersFormFor prefills the form with the registry's current names.
func PlayersFormFor(r *board.Registry) PlayersForm {
	return PlayersForm{
		Player1: r.Name(1),
		Player2: r.Name(2),
		Player3: r.Name(3),
		Player4: r.Name(4),
	}
}

// Names returns the non-empty names keyed by slot. Empty fields are left
// out, so submitting the form never clears a slot.
func (f PlayersForm) Names() map[types.SlotID]string {
	names := make(map[types.SlotID]string)
	for slot, name := range map[types.SlotID]string{1: f.Player1, 2: f.Player2, 3: f.Player3, 4: f.Player4} {
		if name != "" {
			names[slot] = name
		}
	}
	return names
}

// SubmitPlayers validates the form and merges its names into the board.
func (v *Validator) SubmitPlayers(b *board.Board, form PlayersForm) error {
	if err := v.Validate(form); err != nil {
		return err
	}
	return b.ConfigurePlayers(form.Names())
}
