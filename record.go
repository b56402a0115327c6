package slugger

import (
	"fmt"
	"reflect"
)

// Record is a host-owned entity. The slugger reads the source field and writes the slug column;
// it never creates, deletes or persists records.
type Record interface {
	// Field returns the value stored under name and whether the field exists.
	Field(name string) (any, bool)
	// SetField stores value under name.
	SetField(name string, value any) error
}

// Keyed is implemented by records that may already be persisted.
// ok is false for records that have no identity yet.
type Keyed interface {
	PrimaryKey() (column string, value any, ok bool)
}

// FieldChecker is implemented by records with a fixed set of writable fields.
// Build rejects a slug column the record cannot hold before any query runs.
type FieldChecker interface {
	HasField(name string) bool
}

// Map is a map-backed Record. KeyColumn names the primary key field, if any.
type Map struct {
	Fields    map[string]any
	KeyColumn string
}

// NewMap wraps fields as a Record whose primary key lives in keyColumn.
func NewMap(fields map[string]any, keyColumn string) *Map {
	if fields == nil {
		fields = make(map[string]any)
	}
	return &Map{Fields: fields, KeyColumn: keyColumn}
}

// Field implements Record.
func (m *Map) Field(name string) (any, bool) {
	v, ok := m.Fields[name]
	return v, ok
}

// SetField implements Record.
func (m *Map) SetField(name string, value any) error {
	if m.Fields == nil {
		m.Fields = make(map[string]any)
	}
	m.Fields[name] = value
	return nil
}

// PrimaryKey implements Keyed. Zero values count as "not persisted yet".
func (m *Map) PrimaryKey() (string, any, bool) {
	if m.KeyColumn == "" {
		return "", nil, false
	}
	v, ok := m.Fields[m.KeyColumn]
	if !ok || isZero(v) {
		return m.KeyColumn, nil, false
	}
	return m.KeyColumn, v, true
}

// primaryKey extracts the identity of rec if it has one.
func primaryKey(rec Record) (string, any, bool) {
	k, ok := rec.(Keyed)
	if !ok {
		return "", nil, false
	}
	col, v, ok := k.PrimaryKey()
	if !ok || col == "" || isZero(v) {
		return "", nil, false
	}
	return col, v, true
}

// text renders a field value as source text.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// isNilRecord also catches typed nil pointers stored in the interface.
func isNilRecord(rec Record) bool {
	if rec == nil {
		return true
	}
	rv := reflect.ValueOf(rec)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	return rv.IsZero()
}
