package slugger

import "strings"

// Unique selects the scope a slug must be unique within.
type Unique string

const (
	// UniqueNone uses the normalized text verbatim.
	UniqueNone Unique = "none"
	// UniqueAll checks every record of the same type.
	UniqueAll Unique = "all"
	// UniqueParent checks only records that share the same parent.
	UniqueParent Unique = "parent"
)

// ParseUnique parses a uniqueness mode case-insensitively.
// An empty string means UniqueNone.
func ParseUnique(s string) (Unique, error) {
	switch Unique(strings.ToLower(strings.TrimSpace(s))) {
	case "", UniqueNone:
		return UniqueNone, nil
	case UniqueAll:
		return UniqueAll, nil
	case UniqueParent:
		return UniqueParent, nil
	}
	return "", configError(ErrInvalidUnique)
}

// UnmarshalText implements encoding.TextUnmarshaler for env and YAML decoding.
func (u *Unique) UnmarshalText(text []byte) error {
	v, err := ParseUnique(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (u Unique) MarshalText() ([]byte, error) {
	return []byte(u), nil
}

func (u Unique) String() string {
	if u == "" {
		return string(UniqueNone)
	}
	return string(u)
}
