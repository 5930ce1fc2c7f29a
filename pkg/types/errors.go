package types

import (
	"errors"
	"sort"
	"strings"
)

// Board operation errors.
var (
	ErrNotFound         = errors.New("item not found")
	ErrDuplicateID      = errors.New("item ID already exists")
	ErrInvalidID        = errors.New("invalid item ID")
	ErrInvalidSlot      = errors.New("invalid participant slot")
	ErrFieldNotEditable = errors.New("field is not editable")
	ErrUnknownAction    = errors.New("unknown row action")
)

// Persistence errors. ErrPersistenceParse is recovered on load by falling
// back to seed data; ErrImportParse rejects the whole import.
var (
	ErrPersistenceParse = errors.New("malformed persisted data")
	ErrImportParse      = errors.New("malformed import data")
)

// ValidationError reports field-level form errors. Fields maps the form
// field name to a user-facing message.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the failing fields in name order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the message for field, or "" when the field is valid.
func (e *ValidationError) Message(field string) string {
	return e.Fields[field]
}
