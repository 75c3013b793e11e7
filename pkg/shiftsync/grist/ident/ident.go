// Package ident converts display names into Grist table and column ids.
//
// Grist stores ids as identifiers: accents are folded to ASCII, other
// characters become underscores, and ids never start with a digit or an
// underscore. Table ids also start with an uppercase letter.
package ident

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var invalidChars = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// Column returns the column id Grist assigns to name, e.g. "Sch Start" -> "Sch_Start".
func Column(name string) string {
	return sanitize(name, "c")
}

// Table returns the table id Grist assigns to name, e.g. "shifts" -> "Shifts".
func Table(name string) string {
	id := sanitize(name, "Table")
	return strings.ToUpper(id[:1]) + id[1:]
}

func sanitize(name, prefix string) string {
	ascii, _, err := transform.String(transform.Chain(
		norm.NFKD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	), name)
	if err != nil {
		ascii = name
	}

	id := strings.TrimLeft(invalidChars.ReplaceAllString(ascii, "_"), "_")
	if id == "" {
		return prefix
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = prefix + id
	}
	return id
}
