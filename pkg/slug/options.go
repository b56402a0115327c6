package slug

// Option configures slug generation.
type Option func(*options)

type options struct {
	replacements map[string]string
	separator    string
	stripChars   string
	maxLength    int
	lowercase    bool
}

func defaultOptions() *options {
	return &options{
		separator: "-",
		lowercase: true,
	}
}

// Separator sets the string placed between words.
// Default: "-"
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// MaxLength limits the slug to n runes. Zero or negative disables the limit.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// Lowercase controls whether the output is lowercased.
// Default: true
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// StripChars removes every listed character from the input before processing.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars = chars
	}
}

// CustomReplace applies the given replacements to the input before processing.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}
