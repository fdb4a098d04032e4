package reader

import (
	"fmt"
	"math"

	"github.com/achilleasa/scenedesc/scene"
	"github.com/achilleasa/scenedesc/types"
)

// A record wraps an object node belonging to a named entity and tracks which
// fields have been consumed so that unknown fields can be reported.
type record struct {
	c      scene.Collection
	entity string

	// Field path prefix for nested records such as "transform".
	prefix string

	n      *node
	fields map[string]*node
	used   map[string]bool
}

// Wrap an object node. Duplicate keys are reported as parse errors.
func newRecord(c scene.Collection, entity, prefix string, n *node) (*record, error) {
	if n.kind != objectNode {
		return nil, &scene.ParseError{
			Collection: c, Entity: entity, Field: prefix, Line: n.line,
			Reason: "expected an object; got " + n.describe(),
		}
	}

	r := &record{
		c:      c,
		entity: entity,
		prefix: prefix,
		n:      n,
		fields: make(map[string]*node, len(n.keys)),
		used:   make(map[string]bool, len(n.keys)),
	}
	for idx, key := range n.keys {
		if prev, exists := r.fields[key]; exists {
			return nil, r.parseErr(key, n.values[idx], "duplicate field; first defined at line %d", prev.line)
		}
		r.fields[key] = n.values[idx]
	}
	return r, nil
}

// Get the full dotted path for a field of this record.
func (r *record) path(field string) string {
	if r.prefix == "" {
		return field
	}
	return r.prefix + "." + field
}

func (r *record) parseErr(field string, n *node, format string, args ...interface{}) error {
	line := r.n.line
	if n != nil && n.line > 0 {
		line = n.line
	}
	return &scene.ParseError{
		Collection: r.c, Entity: r.entity, Field: r.path(field), Line: line,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (r *record) rangeErr(field string, format string, args ...interface{}) error {
	line := r.n.line
	if n, exists := r.fields[field]; exists && n.line > 0 {
		line = n.line
	}
	return &scene.RangeError{
		Collection: r.c, Entity: r.entity, Field: r.path(field), Line: line,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (r *record) unsupportedErr(field, value string, supported []string) error {
	return &scene.UnsupportedTypeError{
		Collection: r.c, Entity: r.entity, Field: r.path(field), Line: r.fields[field].line,
		Value: value, Supported: supported,
	}
}

// Fetch a field and mark it as consumed.
func (r *record) get(field string) (*node, bool) {
	n, exists := r.fields[field]
	if exists {
		r.used[field] = true
	}
	return n, exists
}

// Fetch a required field.
func (r *record) require(field string) (*node, error) {
	n, exists := r.get(field)
	if !exists {
		return nil, r.parseErr(field, nil, "missing required field")
	}
	return n, nil
}

// Report the first field (in document order) that was never consumed.
func (r *record) done() error {
	for idx, key := range r.n.keys {
		if !r.used[key] {
			return r.parseErr(key, r.n.values[idx], "unknown field")
		}
	}
	return nil
}

func (r *record) str(field string) (string, error) {
	n, err := r.require(field)
	if err != nil {
		return "", err
	}
	if n.kind != stringNode {
		return "", r.parseErr(field, n, "expected a string; got %s", n.describe())
	}
	return n.str, nil
}

// Read a required, non-empty name reference.
func (r *record) name(field string) (string, error) {
	s, err := r.str(field)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", r.parseErr(field, r.fields[field], "expected a non-empty name")
	}
	return s, nil
}

func (r *record) num(field string) (float64, error) {
	n, err := r.require(field)
	if err != nil {
		return 0, err
	}
	return r.toNum(field, n)
}

func (r *record) toNum(field string, n *node) (float64, error) {
	if n.kind != numberNode {
		return 0, r.parseErr(field, n, "expected a number; got %s", n.describe())
	}
	if math.IsNaN(n.num) || math.IsInf(n.num, 0) {
		return 0, r.rangeErr(field, "value must be finite; got %v", n.num)
	}
	return n.num, nil
}

// Read an integer field. The sign is left to the caller's range checks.
func (r *record) integer(field string) (int64, error) {
	n, err := r.require(field)
	if err != nil {
		return 0, err
	}
	v, err := r.toNum(field, n)
	if err != nil {
		return 0, err
	}
	// Integral values that overflow may be tagged as floats by the front-end.
	if v == math.Trunc(v) && math.Abs(v) > math.MaxUint32 {
		return 0, r.rangeErr(field, "value %v is too large", v)
	}
	if !n.isInt || v != math.Trunc(v) {
		return 0, r.parseErr(field, n, "expected an integer; got %s", n.describe())
	}
	return int64(v), nil
}

func (r *record) vec3(field string) (types.Vec3, error) {
	n, err := r.require(field)
	if err != nil {
		return types.Vec3{}, err
	}
	return r.toVec3(field, n)
}

// Read an optional 3-vector, returning def when the field is absent.
func (r *record) optVec3(field string, def types.Vec3) (types.Vec3, error) {
	n, exists := r.get(field)
	if !exists {
		return def, nil
	}
	return r.toVec3(field, n)
}

func (r *record) toVec3(field string, n *node) (types.Vec3, error) {
	var v types.Vec3
	if n.kind != arrayNode {
		return v, r.parseErr(field, n, "expected an array of 3 numbers; got %s", n.describe())
	}
	if len(n.items) != len(v) {
		return v, r.parseErr(field, n, "expected an array of 3 numbers; got %d elements", len(n.items))
	}
	for idx, item := range n.items {
		if item.kind != numberNode {
			return v, r.parseErr(field, item, "component %d: expected a number; got %s", idx, item.describe())
		}
		v[idx] = item.num
	}
	if !v.IsFinite() {
		return v, r.rangeErr(field, "components must be finite; got %v", v)
	}
	return v, nil
}

// Fetch a required nested record.
func (r *record) nested(field string) (*record, error) {
	n, err := r.require(field)
	if err != nil {
		return nil, err
	}
	return newRecord(r.c, r.entity, r.path(field), n)
}
