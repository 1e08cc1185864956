// Package filter provides string matching for audit-history queries.
package filter

import (
	"fmt"
	"regexp"
	"strings"
)

type Mode int

const (
	ModeNone Mode = iota
	ModeExact
	ModeContains
	ModeRegex
	ModeFuzzy
)

// ParseMode maps a CLI mode name to a Mode. An empty name means contains,
// the friendliest default for --match.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "":
		return ModeContains, nil
	case "exact":
		return ModeExact, nil
	case "contains":
		return ModeContains, nil
	case "regex":
		return ModeRegex, nil
	case "fuzzy":
		return ModeFuzzy, nil
	default:
		return ModeNone, fmt.Errorf("unknown match mode '%s' (expected exact, contains, regex or fuzzy)", name)
	}
}

type StringFilter struct {
	Pattern string
	Mode    Mode
	regex   *regexp.Regexp
}

func NewStringFilter(pattern string, mode Mode) (*StringFilter, error) {
	f := &StringFilter{
		Pattern: pattern,
		Mode:    mode,
	}

	if mode == ModeRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern '%s': %w", pattern, err)
		}
		f.regex = re
	}

	return f, nil
}

func (f *StringFilter) Match(s string) bool {
	if f == nil || f.Mode == ModeNone || f.Pattern == "" {
		return true
	}

	switch f.Mode {
	case ModeExact:
		return strings.EqualFold(s, f.Pattern)
	case ModeContains:
		return strings.Contains(strings.ToLower(s), strings.ToLower(f.Pattern))
	case ModeRegex:
		return f.regex != nil && f.regex.MatchString(s)
	case ModeFuzzy:
		return FuzzyMatch(f.Pattern, s)
	default:
		return true
	}
}

// FuzzyMatch reports whether every character of pattern appears in text in
// order, case-insensitively.
func FuzzyMatch(pattern, text string) bool {
	if pattern == "" {
		return true
	}
	if text == "" {
		return false
	}

	pattern = strings.ToLower(pattern)
	text = strings.ToLower(text)

	pIdx := 0
	for tIdx := 0; tIdx < len(text) && pIdx < len(pattern); tIdx++ {
		if pattern[pIdx] == text[tIdx] {
			pIdx++
		}
	}
	return pIdx == len(pattern)
}
