/*
Package textutil provides small text manipulation helpers.
*/
package textutil

import (
	"strings"

	"github.com/aquilax/truncate"
	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var pluralizer = pluralize.NewClient()

// Truncate shortens s to at most n runes, ellipsis included, cutting
// from the end.
func Truncate(s string, n int) string {
	return truncate.Truncate(s, n, truncate.DEFAULT_OMISSION, truncate.PositionEnd)
}

// TruncateMiddle shortens s to at most n runes, ellipsis included,
// cutting from the middle.
func TruncateMiddle(s string, n int) string {
	return truncate.Truncate(s, n, truncate.DEFAULT_OMISSION, truncate.PositionMiddle)
}

// Plural returns the plural form of word.
func Plural(word string) string {
	return pluralizer.Plural(word)
}

// Singular returns the singular form of word.
func Singular(word string) string {
	return pluralizer.Singular(word)
}

// Pluralize returns the count followed by word in the grammatically
// matching form, as in "1 entry" and "3 entries".
func Pluralize(count int, word string) string {
	return pluralizer.Pluralize(word, count, true)
}

// Title returns s in English title case.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// PadLeft pads s on the left with pad runes to width n.
func PadLeft(s string, n int, pad rune) string {
	if gap := n - len([]rune(s)); gap > 0 {
		return strings.Repeat(string(pad), gap) + s
	}
	return s
}

// PadRight pads s on the right with pad runes to width n.
func PadRight(s string, n int, pad rune) string {
	if gap := n - len([]rune(s)); gap > 0 {
		return s + strings.Repeat(string(pad), gap)
	}
	return s
}

// Center pads s with spaces on both sides to width n. An odd gap
// leaves the extra space on the right.
func Center(s string, n int) string {
	gap := n - len([]rune(s))
	if gap <= 0 {
		return s
	}

	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// HumanBytes formats a byte count in IEC units, as in "1.5 MiB".
func HumanBytes(n uint64) string {
	return humanize.IBytes(n)
}

// Comma formats n with thousand separators.
func Comma(n int64) string {
	return humanize.Comma(n)
}
