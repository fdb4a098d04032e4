package scene

import (
	"fmt"
	"strings"
)

// Format the location of a problem as collection.entity.field with an
// optional source line suffix.
func location(c Collection, entity, field string, line int) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{string(c), entity, field} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	loc := strings.Join(parts, ".")
	if loc == "" {
		loc = "document"
	}
	if line > 0 {
		loc = fmt.Sprintf("%s [line %d]", loc, line)
	}
	return loc
}

// ParseError indicates a structurally malformed document: a missing field,
// a value of the wrong type, a vector with the wrong number of components, a
// duplicate name or an unknown field.
type ParseError struct {
	Collection Collection
	Entity     string
	Field      string
	Line       int
	Reason     string

	// The underlying syntax error, if any.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s: %s", location(e.Collection, e.Entity, e.Field, e.Line), e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReferenceError indicates that an entity refers to a name which does not
// exist in the target collection, or to an external file that is missing.
type ReferenceError struct {
	Collection Collection
	Entity     string
	Field      string
	Line       int

	// The collection that was searched and the name that was not found. Target
	// is empty for references to external resources.
	Target Collection
	Name   string

	Err error
}

func (e *ReferenceError) Error() string {
	loc := location(e.Collection, e.Entity, e.Field, e.Line)
	if e.Target == "" {
		return fmt.Sprintf("reference error: %s: missing resource %q: %v", loc, e.Name, e.Err)
	}
	return fmt.Sprintf("reference error: %s: undefined %s entry %q", loc, e.Target, e.Name)
}

func (e *ReferenceError) Unwrap() error { return e.Err }

// RangeError indicates a numeric value outside its documented domain.
type RangeError struct {
	Collection Collection
	Entity     string
	Field      string
	Line       int
	Reason     string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range error: %s: %s", location(e.Collection, e.Entity, e.Field, e.Line), e.Reason)
}

// UnsupportedTypeError indicates an unrecognised enumerated value such as an
// unknown shape or material type.
type UnsupportedTypeError struct {
	Collection Collection
	Entity     string
	Field      string
	Line       int
	Value      string
	Supported  []string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf(
		"unsupported type: %s: %q; expected one of %s",
		location(e.Collection, e.Entity, e.Field, e.Line), e.Value, strings.Join(e.Supported, ", "),
	)
}

// NotFoundError is returned by lookups for names that are not defined.
type NotFoundError struct {
	Collection Collection
	Name       string
}

func (e *NotFoundError) Error() string {
	if !e.Collection.Valid() {
		return fmt.Sprintf("not found: unknown collection %q", string(e.Collection))
	}
	return fmt.Sprintf("not found: no %s entry named %q", e.Collection, e.Name)
}
