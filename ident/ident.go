// Package ident provides case-insensitive identifier helpers, grounded on
// the teacher's pkg/ident (Normalize/Equal/Compare/Contains), extended
// with the camelCase / UPPER_SNAKE_CASE conversions the capitalize-enums
// pass needs (spec §4.4). Case folding and title-casing go through
// golang.org/x/text/cases rather than the ASCII-only byte arithmetic a
// hand-rolled version would need, so a source identifier with non-ASCII
// letters still folds and titles correctly.
package ident

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	foldCaser  = cases.Fold()
	titleCaser = cases.Title(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// Normalize folds name to a case-insensitive form for use as a map key.
func Normalize(name string) string { return foldCaser.String(name) }

// Equal reports whether a and b are equal ignoring case.
func Equal(a, b string) bool { return Normalize(a) == Normalize(b) }

// Compare is a case-insensitive ordering (negative/zero/positive), for
// sorting identifier lists deterministically.
func Compare(a, b string) int { return strings.Compare(Normalize(a), Normalize(b)) }

// Contains reports whether name is in list, ignoring case.
func Contains(list []string, name string) bool {
	for _, l := range list {
		if Equal(l, name) {
			return true
		}
	}
	return false
}

// CamelCase renders name as lowerCamelCase, used by capitalize-enums for
// sealed-class enum element names: the source's "UpperCamel" case name
// becomes a "lowerCamel" Kotlin property/subclass-instance name.
func CamelCase(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	first := lowerCaser.String(string(r[0]))
	return first + string(r[1:])
}

// PascalCase uppercases name's first rune, used by is-operators-in-sealed-
// classes to recover a sealed-class case's subclass name from the
// lowerCamel accessor name capitalize-enums already produced.
func PascalCase(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	first := titleCaser.String(string(r[0]))
	return first + string(r[1:])
}

// UpperSnakeCase renders name as UPPER_SNAKE_CASE, used by capitalize-enums
// for plain enum-class entries (Kotlin enum constant convention).
func UpperSnakeCase(name string) string {
	var sb strings.Builder
	r := []rune(name)
	for i, c := range r {
		if c >= 'A' && c <= 'Z' && i > 0 && r[i-1] != '_' && !(r[i-1] >= 'A' && r[i-1] <= 'Z') {
			sb.WriteByte('_')
		}
		sb.WriteString(strings.ToUpper(string(c)))
	}
	return sb.String()
}
