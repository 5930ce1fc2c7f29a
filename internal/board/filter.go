package board

import (
	"fmt"
	"slices"
)

// TagOperator names one of the tag filter predicates offered by the tags
// column.
type TagOperator string

// Tag filter operators.
const (
	OpHasAtLeastOne TagOperator = "hasAtLeastOne"
	OpHasAll        TagOperator = "hasAll"
	OpDoesNotHave   TagOperator = "doesNotHave"
)

// TagOperators lists the tag operators in menu order.
var TagOperators = []TagOperator{OpHasAtLeastOne, OpHasAll, OpDoesNotHave}

// Label returns the menu label for op.
func (op TagOperator) Label() string {
	switch op {
	case OpHasAtLeastOne:
		return "Has at least one"
	case OpHasAll:
		return "Has all"
	case OpDoesNotHave:
		return "Does not have"
	default:
		return string(op)
	}
}

// HasAtLeastOne reports whether rowTags shares a tag with chosen. An empty
// chosen set passes every row.
func HasAtLeastOne(rowTags, chosen []string) bool {
	if len(chosen) == 0 {
		return true
	}
	return slices.ContainsFunc(rowTags, func(t string) bool { return slices.Contains(chosen, t) })
}

// HasAll reports whether every chosen tag appears in rowTags. An empty
// chosen set passes every row.
func HasAll(rowTags, chosen []string) bool {
	for _, t := range chosen {
		if !slices.Contains(rowTags, t) {
			return false
		}
	}
	return true
}

// DoesNotHave reports whether rowTags shares no tag with chosen. An empty
// chosen set passes every row.
func DoesNotHave(rowTags, chosen []string) bool {
	if len(chosen) == 0 {
		return true
	}
	return !HasAtLeastOne(rowTags, chosen)
}

// TagFilter is a tag predicate bound to the user's chosen tags.
type TagFilter struct {
	Operator TagOperator
	Chosen   []string
}

// ParseTagOperator validates an operator name.
func ParseTagOperator(s string) (TagOperator, error) {
	op := TagOperator(s)
	if !slices.Contains(TagOperators, op) {
		return "", fmt.Errorf("unknown tag operator %q", s)
	}
	return op, nil
}

// Match applies the filter to a row's tags. An unknown operator passes
// every row.
func (f TagFilter) Match(rowTags []string) bool {
	switch f.Operator {
	case OpHasAtLeastOne:
		return HasAtLeastOne(rowTags, f.Chosen)
	case OpHasAll:
		return HasAll(rowTags, f.Chosen)
	case OpDoesNotHave:
		return DoesNotHave(rowTags, f.Chosen)
	default:
		return true
	}
}

// FilterRows returns the rows whose tags satisfy every filter.
func FilterRows(rows []Row, filters ...TagFilter) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		keep := true
		for _, f := range filters {
			if !f.Match(r.Tags) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}
