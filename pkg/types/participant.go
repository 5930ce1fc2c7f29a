package types

import (
	"fmt"
	"strconv"
)

// NumSlots is the fixed number of participant slots.
const NumSlots = 4

// SlotID identifies one of the four participant slots. Valid values are 1
// through 4.
type SlotID int

// Slots lists every slot in order.
var Slots = [NumSlots]SlotID{1, 2, 3, 4}

// Valid reports whether s names one of the four slots.
func (s SlotID) Valid() bool {
	return s >= 1 && s <= NumSlots
}

// Index maps the slot to its 0-based array position.
func (s SlotID) Index() int {
	return int(s) - 1
}

// String returns the slot's wire form ("1".."4").
func (s SlotID) String() string {
	return strconv.Itoa(int(s))
}

// ParseSlotID parses the wire form of a slot.
// Returns ErrInvalidSlot for anything other than "1".."4".
func ParseSlotID(s string) (SlotID, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !SlotID(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}
	return SlotID(n), nil
}

// Participant binds a display name to a slot. A slot with an empty name is
// inactive.
type Participant struct {
	Slot SlotID `json:"id"`
	Name string `json:"name"`
}

// Active reports whether the slot has a display name.
func (p Participant) Active() bool {
	return p.Name != ""
}
