package slugger

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// ErrNotStructPointer is returned by Struct for anything but a non-nil pointer to a struct.
var ErrNotStructPointer = errors.New("slugger: record must be a non-nil pointer to a struct")

// StructRecord exposes struct fields as a Record.
type StructRecord struct {
	value     reflect.Value
	fields    map[string][]int
	keyColumn string
}

// Struct wraps ptr as a Record. Fields are addressed by their `db` tag, or by the
// snake_cased Go name when untagged; `db:"-"` hides a field. Promoted fields of
// embedded structs are included. keyColumn names the primary key field, if any.
//
//	type Post struct {
//		ID     int64  `db:"id"`
//		BlogID int64  `db:"blog_id"`
//		Title  string `db:"title"`
//		Slug   string `db:"slug"`
//	}
//
//	rec, err := slugger.Struct(&post, "id")
func Struct(ptr any, keyColumn string) (*StructRecord, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, ErrNotStructPointer
	}
	elem := rv.Elem()

	fields := make(map[string][]int)
	for _, f := range reflect.VisibleFields(elem.Type()) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name := f.Tag.Get("db")
		if i := strings.IndexByte(name, ','); i >= 0 {
			name = name[:i]
		}
		if name == "-" {
			continue
		}
		if name == "" {
			name = snakeCase(f.Name)
		}
		if _, dup := fields[name]; !dup {
			fields[name] = f.Index
		}
	}

	return &StructRecord{value: elem, fields: fields, keyColumn: keyColumn}, nil
}

// Field implements Record.
func (s *StructRecord) Field(name string) (any, bool) {
	fv, ok := s.lookup(name)
	if !ok {
		return nil, false
	}
	return fv.Interface(), true
}

// HasField implements FieldChecker.
func (s *StructRecord) HasField(name string) bool {
	fv, ok := s.lookup(name)
	return ok && fv.CanSet()
}

// SetField implements Record. The value must be assignable or convertible to the field type.
func (s *StructRecord) SetField(name string, value any) error {
	fv, ok := s.lookup(name)
	if !ok || !fv.CanSet() {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}

	v := reflect.ValueOf(value)
	target := fv
	if fv.Kind() == reflect.Pointer && v.IsValid() && v.Type() != fv.Type() {
		// Allocate pointer fields such as *string before assigning the element.
		ptr := reflect.New(fv.Type().Elem())
		fv.Set(ptr)
		target = ptr.Elem()
	}

	switch {
	case !v.IsValid():
		target.SetZero()
	case v.Type().AssignableTo(target.Type()):
		target.Set(v)
	case v.Type().ConvertibleTo(target.Type()):
		target.Set(v.Convert(target.Type()))
	default:
		return fmt.Errorf("slugger: cannot assign %s to field %s", v.Type(), name)
	}
	return nil
}

// PrimaryKey implements Keyed.
func (s *StructRecord) PrimaryKey() (string, any, bool) {
	if s.keyColumn == "" {
		return "", nil, false
	}
	v, ok := s.Field(s.keyColumn)
	if !ok || isZero(v) {
		return s.keyColumn, nil, false
	}
	return s.keyColumn, v, true
}

func (s *StructRecord) lookup(name string) (reflect.Value, bool) {
	idx, ok := s.fields[name]
	if !ok {
		return reflect.Value{}, false
	}
	fv, err := s.value.FieldByIndexErr(idx)
	if err != nil {
		// Promoted through a nil embedded pointer.
		return reflect.Value{}, false
	}
	return fv, true
}

// snakeCase converts Go identifiers: "BlogID" -> "blog_id", "HTMLTitle" -> "html_title".
func snakeCase(name string) string {
	rs := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range rs {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := rs[i-1]
				nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
