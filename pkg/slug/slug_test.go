package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/slugger/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{name: "simple text", input: "Hello World", expected: "hello-world"},
		{name: "with punctuation", input: "Hello, World!", expected: "hello-world"},
		{name: "with numbers", input: "Product 123", expected: "product-123"},
		{name: "multiple spaces", input: "Too    Many     Spaces", expected: "too-many-spaces"},
		{name: "leading and trailing spaces", input: "  Trim Me  ", expected: "trim-me"},
		{name: "special characters", input: "Price: $99.99", expected: "price-99-99"},
		{name: "empty string", input: "", expected: ""},
		{name: "only special characters", input: "!@#$%^&*()", expected: ""},
		{name: "consecutive separators", input: "Too---Many---Dashes", expected: "too-many-dashes"},
		{name: "trailing separator", input: "Ends with dash-", expected: "ends-with-dash"},
		{name: "url with protocol", input: "https://example.com", expected: "https-example-com"},
		{name: "tabs and newlines", input: "Line1\nLine2\tTabbed", expected: "line1-line2-tabbed"},
		{name: "emoji stripped", input: "Hello 😀 World 🌍", expected: "hello-world"},
		{name: "cyrillic is a word break", input: "Go Москва Go", expected: "go-go"},
		{name: "unicode diacritics", input: "Café résumé naïve", expected: "cafe-resume-naive"},
		{name: "german characters", input: "Über Größe Straße", expected: "uber-grosse-strasse"},
		{name: "polish characters", input: "Zażółć gęślą jaźń", expected: "zazolc-gesla-jazn"},
		{name: "nordic characters", input: "Ærø Øresund", expected: "aero-oresund"},
		{name: "mixed unicode and ascii", input: "Côte d'Ivoire 2024", expected: "cote-d-ivoire-2024"},
		{name: "keep case", input: "Hello World", opts: []slug.Option{slug.Lowercase(false)}, expected: "Hello-World"},
		{name: "custom separator", input: "Hello World", opts: []slug.Option{slug.Separator("_")}, expected: "hello_world"},
		{name: "empty separator", input: "No Separator", opts: []slug.Option{slug.Separator("")}, expected: "noseparator"},
		{name: "multi-character separator", input: "Multi Sep Test", opts: []slug.Option{slug.Separator("--")}, expected: "multi--sep--test"},
		{
			name:     "max length trims dangling separator",
			input:    "This is a very long title that should be truncated",
			opts:     []slug.Option{slug.MaxLength(20)},
			expected: "this-is-a-very-long",
		},
		{name: "max length on boundary", input: "Cut off cleanly", opts: []slug.Option{slug.MaxLength(7)}, expected: "cut-off"},
		{name: "zero max length", input: "Should not truncate", opts: []slug.Option{slug.MaxLength(0)}, expected: "should-not-truncate"},
		{name: "strip characters", input: "Don't stop", opts: []slug.Option{slug.StripChars("'")}, expected: "dont-stop"},
		{
			name:  "custom replacements",
			input: "Fish & Chips @ Home",
			opts: []slug.Option{slug.CustomReplace(map[string]string{
				"&": "and",
				"@": "at",
			})},
			expected: "fish-and-chips-at-home",
		},
		{
			name:  "longest replacement wins",
			input: "C++ & C",
			opts: []slug.Option{slug.CustomReplace(map[string]string{
				"C++": "cpp",
				"C":   "c-lang",
				"&":   "and",
			})},
			expected: "cpp-and-c-lang",
		},
		{
			name:  "all options combined",
			input: "COMPLEX & Test @ 2024!!!",
			opts: []slug.Option{
				slug.Separator("_"),
				slug.Lowercase(false),
				slug.MaxLength(15),
				slug.StripChars("!"),
				slug.CustomReplace(map[string]string{"&": "AND", "@": "AT"}),
			},
			expected: "COMPLEX_AND_Tes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}

func TestMake_Diacritics(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		char     string
		expected string
	}{
		{"à", "a"}, {"á", "a"}, {"â", "a"}, {"ã", "a"}, {"ä", "a"}, {"å", "a"},
		{"È", "e"}, {"É", "e"}, {"Ê", "e"}, {"Ë", "e"},
		{"ì", "i"}, {"í", "i"}, {"î", "i"}, {"ï", "i"},
		{"ò", "o"}, {"ó", "o"}, {"ô", "o"}, {"õ", "o"}, {"ö", "o"}, {"ø", "o"},
		{"Ù", "u"}, {"Ú", "u"}, {"Û", "u"}, {"Ü", "u"},
		{"ñ", "n"}, {"ç", "c"}, {"ł", "l"}, {"đ", "d"},
		{"ß", "ss"}, {"æ", "ae"}, {"Œ", "oe"}, {"þ", "th"},
	}

	for _, tt := range inputs {
		t.Run(tt.char, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.char))
		})
	}
}

func TestMake_MaxLengthCountsRunes(t *testing.T) {
	t.Parallel()

	t.Run("multi-byte input is folded before counting", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "test-c", slug.Make("Test™Case", slug.MaxLength(6)))
	})

	t.Run("multi-character separator is trimmed whole", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ab", slug.Make("ab cd", slug.Separator("__"), slug.MaxLength(4)))
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello-world", slug.Normalize("Hello World", "-"))
	assert.Equal(t, "hello_world", slug.Normalize("Hello World", "_"))
	assert.Equal(t, slug.Make("Ünïcode Title"), slug.Normalize("Ünïcode Title", "-"))
}

func BenchmarkMake(b *testing.B) {
	inputs := []string{
		"Hello World",
		"Café résumé naïve",
		"This is a very long title that contains many words and should test the performance of the slug generation",
	}

	for _, input := range inputs {
		b.Run(slug.Make(input, slug.MaxLength(16)), func(b *testing.B) {
			for b.Loop() {
				_ = slug.Make(input)
			}
		})
	}
}
