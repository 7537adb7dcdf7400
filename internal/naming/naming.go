// Package naming converts free-form feature names into the identifier forms
// archetype templates expect.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Names holds the canonical forms of one feature name.
type Names struct {
	// Snake is the lower-case form with hyphens and spaces replaced by underscores.
	Snake string

	// Pascal is the PascalCase form derived from Snake.
	Pascal string
}

// Normalize derives both canonical forms from raw. Empty input yields empty
// forms; no characters are rejected.
func Normalize(raw string) Names {
	snake := ToSnake(raw)
	return Names{
		Snake:  snake,
		Pascal: ToPascal(snake),
	}
}

// ToSnake lower-cases s and replaces every hyphen and space with an
// underscore, one for one. Repeated separators are not collapsed.
func ToSnake(s string) string {
	s = lower.String(s)
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// ToPascal splits s on underscores and upper-cases the first rune of each
// non-empty segment. The rest of a segment is kept as is, so digits never
// start a new word.
func ToPascal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range strings.Split(s, "_") {
		if seg == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		b.WriteRune(unicode.ToTitle(r))
		b.WriteString(seg[size:])
	}
	return b.String()
}
