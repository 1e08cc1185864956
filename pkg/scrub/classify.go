// Package scrub removes invisible and non-printing Unicode code points
// from text. It targets the general categories Control, Format, Surrogate,
// Private Use and Unassigned, normalizes non-breaking spaces to plain
// spaces, and reports exactly what was removed.
//
// Classification uses the Go standard library's Cc/Cf/Cs/Co range tables.
// The Unassigned test is pinned to the Unicode revision named by
// UnicodeVersion via golang.org/x/text/unicode/rangetable, so that results
// do not drift as the toolchain's bundled tables move between releases.
package scrub

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// UnicodeVersion is the Unicode revision the Unassigned classification is
// pinned to. Code points assigned after this revision are still treated as
// Unassigned and removed.
const UnicodeVersion = "15.0.0"

// Disposition is the per-code-point decision made by Classify.
type Disposition int

const (
	Keep Disposition = iota
	ReplaceWithSpace
	Delete
)

// Category names the Unicode general category of a removed code point.
// These are the histogram keys of a Result.
type Category string

const (
	CategoryControl    Category = "Control"
	CategoryFormat     Category = "Format"
	CategoryPrivateUse Category = "PrivateUse"
	CategorySurrogate  Category = "Surrogate"
	CategoryUnassigned Category = "Unassigned"

	categoryNone Category = ""
)

const (
	nbsp       = ' ' // no-break space
	narrowNBSP = ' ' // narrow no-break space
)

var (
	assigned = rangetable.Assigned(UnicodeVersion)

	// deletable is every category the scrubber may remove, Unassigned
	// excepted (that one is the complement of the assigned table).
	deletable = rangetable.Merge(unicode.Cc, unicode.Cf, unicode.Cs, unicode.Co)
)

// category returns the general category of r, or categoryNone when r is
// outside the categories the scrubber cares about.
func category(r rune) Category {
	switch {
	case unicode.Is(unicode.Cc, r):
		return CategoryControl
	case unicode.Is(unicode.Cf, r):
		return CategoryFormat
	case unicode.Is(unicode.Cs, r):
		return CategorySurrogate
	case unicode.Is(unicode.Co, r):
		return CategoryPrivateUse
	case !unicode.Is(assigned, r):
		return CategoryUnassigned
	}
	return categoryNone
}

// Classify decides what happens to a single code point under policy p.
// CR and LF always win: they are kept even though they are category Cc.
// The returned Category is meaningful only when the disposition is Delete.
func (p Policy) Classify(r rune) (Disposition, Category) {
	if r == '\r' || r == '\n' {
		return Keep, categoryNone
	}
	if r == nbsp || r == narrowNBSP {
		if p.KeepNoBreakSpace {
			return Keep, categoryNone
		}
		return ReplaceWithSpace, categoryNone
	}

	cat := category(r)
	switch cat {
	case categoryNone:
		return Keep, categoryNone
	case CategoryFormat:
		if p.KeepFormatMarks {
			return Keep, categoryNone
		}
		return Delete, cat
	default:
		return Delete, cat
	}
}
