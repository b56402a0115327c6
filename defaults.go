package slugger

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Defaults holds process-wide slug settings that per-record Config values override.
// Embed it in your app config for env parsing with caarlos0/env.
type Defaults struct {
	Column    string `env:"COLUMN" yaml:"column"`
	Separator string `env:"SEPARATOR" yaml:"separator"`
	Unique    Unique `env:"UNIQUE" yaml:"unique"`
}

// DefaultDefaults returns the built-in settings: column "slug", separator "-", no uniqueness.
func DefaultDefaults() Defaults {
	return Defaults{
		Column:    "slug",
		Separator: "-",
		Unique:    UniqueNone,
	}
}

// ErrLoadDefaults is returned when the defaults file or environment cannot be parsed.
var ErrLoadDefaults = errors.New("slugger: failed to load defaults")

// LoadDefaults builds Defaults from the built-ins, then the optional YAML file at path,
// then SLUGGER_COLUMN, SLUGGER_SEPARATOR and SLUGGER_UNIQUE. Later sources win.
// A missing file is not an error when path is empty.
func LoadDefaults(path string) (Defaults, error) {
	d := DefaultDefaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Defaults{}, errors.Join(ErrLoadDefaults, err)
		}
		var file struct {
			Defaults Defaults `yaml:"defaults"`
		}
		file.Defaults = d
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Defaults{}, errors.Join(ErrLoadDefaults, err)
		}
		d = file.Defaults
	}

	if err := env.ParseWithOptions(&d, env.Options{Prefix: "SLUGGER_"}); err != nil {
		return Defaults{}, errors.Join(ErrLoadDefaults, err)
	}

	return d, nil
}
