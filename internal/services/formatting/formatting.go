// Package formatting converts catalogue names into display text and URL slugs.
package formatting

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	rangedProperty = regexp.MustCompile(`(?i)(ammunition|thrown)`)
	versatile      = regexp.MustCompile(`(?i)versatile`)
	whitespace     = regexp.MustCompile(`\s+`)
)

// CapitaliseWord upper-cases the first letter and leaves the rest untouched
func CapitaliseWord(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

// ToTitleCase lower-cases s then capitalises each space separated word
func ToTitleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		words[i] = CapitaliseWord(w)
	}
	return strings.Join(words, " ")
}

// ToURISafe turns a display string into a path segment.
// Combined range properties collapse to "<tag>-range" and any versatile property to "versatile".
func ToURISafe(s string) string {
	if m := rangedProperty.FindStringSubmatch(s); m != nil {
		return strings.ToLower(m[1]) + "-range"
	}
	if versatile.MatchString(s) {
		return "versatile"
	}
	return whitespace.ReplaceAllString(strings.ToLower(s), "-")
}

// FromURISafe reverses the hyphenation of a name slug
func FromURISafe(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}
