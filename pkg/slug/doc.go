// Package slug turns arbitrary text into URL-safe slugs.
//
// It is the default text normalizer used by the slugger package: casing, diacritic folding and
// separator joining live here, collision handling does not.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/slugger/pkg/slug"
//
//	s := slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	s = slug.Make("Café & Restaurant")
//	// Output: "cafe-restaurant"
//
// # Configuration Options
//
// Separator sets the string placed between words:
//
//	slug.Make("Product Name", slug.Separator("_"))
//	// Output: "product_name"
//
// MaxLength limits the slug length (rune-based). A trailing separator left by the cut is trimmed:
//
//	slug.Make("Very long title", slug.MaxLength(9))
//	// Output: "very-long"
//
// Lowercase controls case conversion:
//
//	slug.Make("Product Name", slug.Lowercase(false))
//	// Output: "Product-Name"
//
// StripChars removes characters before word splitting, so they never produce a separator:
//
//	slug.Make("Don't stop", slug.StripChars("'"))
//	// Output: "dont-stop"
//
// CustomReplace applies string replacements before slugification. Longer keys win over shorter ones:
//
//	slug.Make("C++ & Go", slug.CustomReplace(map[string]string{"C++": "cpp", "&": "and"}))
//	// Output: "cpp-and-go"
//
// # Unicode Support
//
// Letters are decomposed (NFD) and combining marks dropped, so "é" becomes "e" and "ż" becomes "z".
// Letters that do not decompose are transliterated from a small table (ß → ss, ø → o, æ → ae, ł → l).
// Anything else outside ASCII letters and digits (Cyrillic, CJK, emoji, punctuation) acts as a word break.
//
// # Normalizer
//
// [Normalize] has the func(text, separator string) string shape expected by slugger.Normalizer.
package slug
