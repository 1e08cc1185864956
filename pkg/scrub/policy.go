package scrub

// Policy selects which code points survive a scrub. The zero value is the
// aggressive default: Format marks are deleted and non-breaking spaces are
// replaced with plain spaces. A Policy is immutable once constructed.
type Policy struct {
	// KeepFormatMarks preserves category Cf code points (ZWJ, ZWNJ,
	// directional marks) instead of deleting them.
	KeepFormatMarks bool

	// KeepNoBreakSpace leaves U+00A0 and U+202F unchanged instead of
	// replacing them with U+0020.
	KeepNoBreakSpace bool
}
