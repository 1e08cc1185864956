package scrub

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Result describes one scrub run. All lengths count code points, not
// bytes, so astral-plane content is accounted for correctly.
type Result struct {
	OriginalLength int
	CleanedLength  int
	RemovedCount   int

	// NBSPNormalized is true when at least one U+00A0 or U+202F was
	// replaced with a plain space.
	NBSPNormalized bool

	// Histogram maps category name to the number of code points removed
	// for that category. Keys are present only when the count is nonzero.
	Histogram map[Category]int

	CleanedText string
}

// Changed reports whether the scrub altered the text at all.
func (r Result) Changed() bool {
	return r.RemovedCount > 0 || r.NBSPNormalized
}

// Scrub runs the full pipeline over raw under policy p. It is a pure
// function: two passes, non-breaking-space normalization first, then
// category deletion. The normalization pass runs first so a converted
// NBSP is an ordinary space by the time the delete pass classifies it and
// never shows up in the removal histogram.
func Scrub(raw string, p Policy) Result {
	normalized, nbspHit := normalizeNBSP(raw, p)

	// Fast path: most clipboard text has nothing to delete.
	if !needsDeletePass(normalized) {
		total := utf8.RuneCountInString(normalized)
		return Result{
			OriginalLength: total,
			CleanedLength:  total,
			NBSPNormalized: nbspHit,
			CleanedText:    normalized,
		}
	}

	var b strings.Builder
	b.Grow(len(normalized))

	var hist map[Category]int
	total := 0
	removed := 0

	for i := 0; i < len(normalized); {
		r, size, valid := decodeScalar(normalized, i)
		total++

		if valid {
			disp, cat := p.Classify(r)
			switch disp {
			case Delete:
				removed++
				if hist == nil {
					hist = make(map[Category]int)
				}
				hist[cat]++
				i += size
				continue
			case ReplaceWithSpace:
				// Unreachable after the normalize pass, but the
				// classifier contract allows it.
				b.WriteByte(' ')
				i += size
				continue
			}
		}

		// Kept code point, or a byte we could not classify. Unclassifiable
		// input is copied through verbatim: never delete on uncertainty.
		b.WriteString(normalized[i : i+size])
		i += size
	}

	return Result{
		OriginalLength: total,
		CleanedLength:  total - removed,
		RemovedCount:   removed,
		NBSPNormalized: nbspHit,
		Histogram:      hist,
		CleanedText:    b.String(),
	}
}

// needsDeletePass reports whether s contains anything the delete pass could
// act on: a deletable-category code point, an unassigned code point, or
// bytes that are not valid UTF-8. CR and LF do not count; they are always
// kept despite being category Cc.
func needsDeletePass(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return true
		}
		if r != '\r' && r != '\n' && (unicode.Is(deletable, r) || !unicode.Is(assigned, r)) {
			return true
		}
		i += size
	}
	return false
}

var nbspReplacer = strings.NewReplacer(string(nbsp), " ", string(narrowNBSP), " ")

// normalizeNBSP is the first pipeline pass. It leaves the code point count
// unchanged, so the delete pass can account lengths against its own input.
func normalizeNBSP(s string, p Policy) (string, bool) {
	if p.KeepNoBreakSpace {
		return s, false
	}
	if !strings.ContainsRune(s, nbsp) && !strings.ContainsRune(s, narrowNBSP) {
		return s, false
	}
	return nbspReplacer.Replace(s), true
}

// decodeScalar decodes the next scalar value of s starting at i. Valid
// UTF-8 decodes as usual. A WTF-8 style encoding of a lone surrogate
// (0xED 0xA0..0xBF 0x80..0xBF) is decoded to the surrogate scalar as a
// single unit, so an unpaired surrogate is deleted and counted once rather
// than shredded into three invalid bytes. Anything else that is not valid
// UTF-8 comes back one byte at a time with valid=false.
func decodeScalar(s string, i int) (r rune, size int, valid bool) {
	r, size = utf8.DecodeRuneInString(s[i:])
	if r != utf8.RuneError || size > 1 {
		return r, size, true
	}
	if size == 0 {
		return utf8.RuneError, 0, false
	}
	if i+3 <= len(s) && s[i] == 0xed && s[i+1] >= 0xa0 && s[i+1] <= 0xbf && s[i+2] >= 0x80 && s[i+2] <= 0xbf {
		r = rune(s[i]&0x0f)<<12 | rune(s[i+1]&0x3f)<<6 | rune(s[i+2]&0x3f)
		return r, 3, true
	}
	return utf8.RuneError, 1, false
}
