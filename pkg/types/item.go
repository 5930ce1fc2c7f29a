package types

import "slices"

// Item is a tradeable resource type. ID is both the display name and the
// primary key; Tags classify the item for filtering and may contain
// duplicates.
type Item struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

// Clone returns a copy of the item that shares no memory with i.
func (i Item) Clone() Item {
	return Item{ID: i.ID, Tags: slices.Clone(i.Tags)}
}

// HasTag reports whether the item carries tag.
func (i Item) HasTag(tag string) bool {
	return slices.Contains(i.Tags, tag)
}
