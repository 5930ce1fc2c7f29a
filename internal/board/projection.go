package board

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// EmptyMarker is displayed instead of a zero quantity.
const EmptyMarker = "-"

// Quantity is a derived cell value. Zero means "no data" and sorts before
// every positive quantity.
type Quantity int

// IsEmpty reports whether q is the "no data" sentinel.
func (q Quantity) IsEmpty() bool {
	return q == 0
}

// Display renders q, using EmptyMarker for zero.
func (q Quantity) Display() string {
	if q.IsEmpty() {
		return EmptyMarker
	}
	return strconv.Itoa(int(q))
}

// CompareQuantity orders quantities with the empty sentinel first.
func CompareQuantity(a, b Quantity) int {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return 0
	case a.IsEmpty():
		return -1
	case b.IsEmpty():
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// CompareTags orders tag sequences by their comma-joined form.
func CompareTags(a, b []string) int {
	return strings.Compare(strings.Join(a, ","), strings.Join(b, ","))
}

// Column fields.
const (
	FieldID      = "id"
	FieldTags    = "tags"
	FieldTotal   = "total"
	FieldActions = "actions"

	quantitySuffix = ".quantity"
)

// QuantityField returns the column field of slot's quantity column.
func QuantityField(slot types.SlotID) string {
	return slot.String() + quantitySuffix
}

// ParseQuantityField returns the slot named by a quantity column field.
func ParseQuantityField(field string) (types.SlotID, bool) {
	prefix, ok := strings.CutSuffix(field, quantitySuffix)
	if !ok {
		return 0, false
	}
	slot, err := types.ParseSlotID(prefix)
	if err != nil {
		return 0, false
	}
	return slot, true
}

// ColumnType tells the grid how to render and filter a column.
type ColumnType string

// Column types.
const (
	ColumnString       ColumnType = "string"
	ColumnSingleSelect ColumnType = "singleSelect"
	ColumnNumber       ColumnType = "number"
)

// Grid filter operators per column kind. The empty checks are dropped
// because every cell always has a value.
var (
	stringOperators = []string{"contains", "doesNotContain", "equals", "doesNotEqual", "startsWith", "endsWith", "isAnyOf"}
	numberOperators = []string{"=", "!=", ">", ">=", "<", "<="}
)

// Column describes one grid column.
type Column struct {
	Field      string     `json:"field"`
	Header     string     `json:"header"`
	Type       ColumnType `json:"type"`
	Editable   bool       `json:"editable"`
	Sortable   bool       `json:"sortable"`
	Filterable bool       `json:"filterable"`
	Operators  []string   `json:"operators,omitempty"`
}

// Row is the grid row of one catalog item. Quantities holds one cell per
// slot; inactive slots read 0.
type Row struct {
	ID         string                   `json:"id"`
	Tags       []string                 `json:"tags"`
	Quantities [types.NumSlots]Quantity `json:"quantities"`
	Total      Quantity                 `json:"total"`
}

// Quantity returns the row's cell for slot.
func (r Row) Quantity(slot types.SlotID) Quantity {
	if !slot.Valid() {
		return 0
	}
	return r.Quantities[slot.Index()]
}

// Value resolves a column field against the row.
func (r Row) Value(field string) (any, bool) {
	switch field {
	case FieldID:
		return r.ID, true
	case FieldTags:
		return r.Tags, true
	case FieldTotal:
		return r.Total, true
	}
	if slot, ok := ParseQuantityField(field); ok {
		return r.Quantity(slot), true
	}
	return nil, false
}

// Projection is everything the grid needs to render the board.
type Projection struct {
	Rows    []Row    `json:"rows"`
	Columns []Column `json:"columns"`
	Tags    []string `json:"tags"`
}

// Project derives rows, columns, and the tag vocabulary. It is a pure
// function of its inputs and is re-run after every committed mutation.
func Project(catalog *Catalog, registry *Registry, ledger *Ledger) Projection {
	active := registry.Active()
	tags := TagVocabulary(catalog)

	rows := make([]Row, 0, catalog.Len())
	for _, it := range catalog.Items() {
		row := Row{ID: it.ID, Tags: it.Tags}
		for _, p := range active {
			row.Quantities[p.Slot.Index()] = Quantity(ledger.Quantity(p.Slot, it.ID))
		}
		// Freed slots keep their holdings, and those still count.
		for _, slot := range types.Slots {
			row.Total += Quantity(ledger.Quantity(slot, it.ID))
		}
		rows = append(rows, row)
	}

	return Projection{
		Rows:    rows,
		Columns: columns(active, tags),
		Tags:    tags,
	}
}

func columns(active []types.Participant, tags []string) []Column {
	cols := []Column{
		{Field: FieldID, Header: "Material", Type: ColumnString, Sortable: true, Filterable: true, Operators: stringOperators},
		{Field: FieldTags, Header: "Tags", Type: ColumnSingleSelect, Sortable: true, Filterable: true, Operators: tagOperatorNames()},
	}
	for _, p := range active {
		cols = append(cols, Column{
			Field:      QuantityField(p.Slot),
			Header:     p.Name,
			Type:       ColumnNumber,
			Editable:   true,
			Sortable:   true,
			Filterable: true,
			Operators:  numberOperators,
		})
	}
	return append(cols,
		Column{Field: FieldTotal, Header: "Total", Type: ColumnNumber, Sortable: true, Filterable: true, Operators: numberOperators},
		Column{Field: FieldActions, Header: "Actions", Type: ColumnString},
	)
}

func tagOperatorNames() []string {
	names := make([]string, len(TagOperators))
	for i, op := range TagOperators {
		names[i] = string(op)
	}
	return names
}

// TagVocabulary returns every distinct tag in the catalog, in order of
// first appearance.
func TagVocabulary(catalog *Catalog) []string {
	seen := make(map[string]bool)
	vocab := []string{}
	for _, it := range catalog.Items() {
		for _, t := range it.Tags {
			if !seen[t] {
				seen[t] = true
				vocab = append(vocab, t)
			}
		}
	}
	return vocab
}

// SortRows stably sorts rows in place by a sortable column field.
func SortRows(rows []Row, field string, desc bool) error {
	var compare func(a, b Row) int
	switch field {
	case FieldID:
		compare = func(a, b Row) int { return strings.Compare(a.ID, b.ID) }
	case FieldTags:
		compare = func(a, b Row) int { return CompareTags(a.Tags, b.Tags) }
	case FieldTotal:
		compare = func(a, b Row) int { return CompareQuantity(a.Total, b.Total) }
	default:
		slot, ok := ParseQuantityField(field)
		if !ok {
			return fmt.Errorf("column %q is not sortable", field)
		}
		compare = func(a, b Row) int { return CompareQuantity(a.Quantity(slot), b.Quantity(slot)) }
	}

	if desc {
		asc := compare
		compare = func(a, b Row) int { return asc(b, a) }
	}
	slices.SortStableFunc(rows, compare)
	return nil
}
