package filter

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", ModeContains, false},
		{"exact", ModeExact, false},
		{"contains", ModeContains, false},
		{"regex", ModeRegex, false},
		{"fuzzy", ModeFuzzy, false},
		{"FUZZY", ModeFuzzy, false},
		{"bogus", ModeNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringFilter_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mode    Mode
		text    string
		want    bool
	}{
		{"none matches anything", "whatever", ModeNone, "text", true},
		{"exact match", "stripped 3", ModeExact, "Stripped 3", true},
		{"exact mismatch", "stripped 3", ModeExact, "stripped 30", false},
		{"contains", "nbsp", ModeContains, "stripped 2 (NBSP normalized)", true},
		{"contains mismatch", "surrogate", ModeContains, "stripped 2", false},
		{"regex", `stripped \d+`, ModeRegex, "stripped 12 of 40", true},
		{"regex mismatch", `^stripped$`, ModeRegex, "stripped 12", false},
		{"fuzzy", "strp3", ModeFuzzy, "stripped 3", true},
		{"fuzzy mismatch", "xyz", ModeFuzzy, "stripped 3", false},
		{"empty pattern matches", "", ModeContains, "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewStringFilter(tt.pattern, tt.mode)
			if err != nil {
				t.Fatalf("NewStringFilter failed: %v", err)
			}
			if got := f.Match(tt.text); got != tt.want {
				t.Errorf("Match(%q) = %t, want %t", tt.text, got, tt.want)
			}
		})
	}
}

func TestNewStringFilter_BadRegex(t *testing.T) {
	if _, err := NewStringFilter("([", ModeRegex); err == nil {
		t.Error("Expected error for invalid regex")
	}
}

func TestStringFilter_NilMatchesAll(t *testing.T) {
	var f *StringFilter
	if !f.Match("anything") {
		t.Error("nil filter should match everything")
	}
}

func TestFuzzyMatch(t *testing.T) {
	if !FuzzyMatch("", "text") {
		t.Error("empty pattern should match")
	}
	if FuzzyMatch("a", "") {
		t.Error("empty text should not match a non-empty pattern")
	}
	if !FuzzyMatch("ctrl", "Control: 3") {
		t.Error("expected in-order subsequence to match")
	}
}
