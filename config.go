package slugger

import (
	"reflect"
	"strconv"
	"strings"
)

const defaultParentKey = "id"

// Parent references the record type a slug is scoped under.
type Parent struct {
	// Name is the parent type name. Package qualifiers ("blog.Post", `App\Post`) are ignored.
	Name string
	// Key is the parent's primary key field. Defaults to "id".
	Key string
}

// ParentOf builds a Parent reference from a Go type, e.g. ParentOf[Post]().
func ParentOf[T any]() *Parent {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return &Parent{Name: t.Name()}
}

// Column returns the conventional foreign key column: "<lowercased base name>_<key>".
func (p Parent) Column() string {
	name := p.Name
	if i := strings.LastIndexAny(name, `.\/`); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return ""
	}
	key := p.Key
	if key == "" {
		key = defaultParentKey
	}
	return strings.ToLower(name) + "_" + key
}

// Config holds per-record slug settings. Zero-valued fields fall back to Defaults.
type Config struct {
	// Source is the field the slug is derived from. Required.
	Source string `yaml:"source"`
	// Column is the field the slug is written to.
	Column string `yaml:"column"`
	// Separator joins words and precedes the disambiguation suffix.
	Separator string `yaml:"separator"`
	// Unique selects the uniqueness scope.
	Unique Unique `yaml:"unique"`
	// Parent is required when Unique is UniqueParent and ParentColumn is empty.
	Parent *Parent `yaml:"-"`
	// ParentColumn overrides the foreign key column derived from Parent.
	ParentColumn string `yaml:"parent_column"`
	// RouteBinding makes RouteKey resolve to the slug column instead of the primary key.
	RouteBinding bool `yaml:"route_binding"`
}

// SlugConfig is the immutable result of merging a Config over Defaults.
// It is built once per slug operation and never cached.
type SlugConfig struct {
	parent       *Parent
	source       string
	column       string
	separator    string
	unique       Unique
	parentColumn string
	routeBinding bool
}

// Resolve merges c over d and validates the result.
func (d Defaults) Resolve(c Config) (SlugConfig, error) {
	cfg := SlugConfig{
		source:       strings.TrimSpace(c.Source),
		column:       firstNonEmpty(c.Column, d.Column),
		separator:    firstNonEmpty(c.Separator, d.Separator),
		unique:       c.Unique,
		routeBinding: c.RouteBinding,
	}
	if cfg.unique == "" {
		cfg.unique = d.Unique
	}

	unique, err := ParseUnique(string(cfg.unique))
	if err != nil {
		return SlugConfig{}, err
	}
	cfg.unique = unique

	if cfg.source == "" {
		return SlugConfig{}, configError(ErrMissingSource)
	}
	if cfg.column == "" {
		return SlugConfig{}, configError(ErrMissingColumn)
	}

	if c.Parent != nil {
		p := *c.Parent
		cfg.parent = &p
	}
	cfg.parentColumn = c.ParentColumn
	if cfg.parentColumn == "" && cfg.parent != nil {
		cfg.parentColumn = cfg.parent.Column()
	}
	if cfg.unique == UniqueParent && cfg.parentColumn == "" {
		return SlugConfig{}, configError(ErrMissingParent)
	}

	return cfg, nil
}

// Source returns the field the slug is derived from.
func (c SlugConfig) Source() string { return c.source }

// Column returns the field the slug is written to.
func (c SlugConfig) Column() string { return c.column }

// Separator returns the word and suffix separator.
func (c SlugConfig) Separator() string { return c.separator }

// Unique returns the uniqueness scope.
func (c SlugConfig) Unique() Unique { return c.unique }

// ParentColumn returns the resolved foreign key column, empty when no parent is configured.
func (c SlugConfig) ParentColumn() string { return c.parentColumn }

// RouteBinding reports whether route lookups should use the slug column.
func (c SlugConfig) RouteBinding() bool { return c.routeBinding }

// Parent returns a copy of the parent reference.
func (c SlugConfig) Parent() (Parent, bool) {
	if c.parent == nil {
		return Parent{}, false
	}
	return *c.parent, true
}

// Get returns a single setting by key: source, column, separator, unique,
// parent, parentColumn or routeBinding. Unset and unknown keys report false.
func (c SlugConfig) Get(key string) (string, bool) {
	var v string
	switch key {
	case "source":
		v = c.source
	case "column":
		v = c.column
	case "separator":
		return c.separator, true
	case "unique":
		v = c.unique.String()
	case "parent":
		if c.parent != nil {
			v = c.parent.Name
		}
	case "parentColumn":
		v = c.parentColumn
	case "routeBinding":
		v = strconv.FormatBool(c.routeBinding)
	default:
		return "", false
	}
	return v, v != ""
}

// GetMany returns the requested settings that are set. Unknown keys are skipped.
func (c SlugConfig) GetMany(keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := c.Get(k); ok {
			out[k] = v
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
