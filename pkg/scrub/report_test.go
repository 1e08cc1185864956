package scrub

import (
	"strings"
	"testing"
)

func TestReport_Full(t *testing.T) {
	res := Result{
		OriginalLength: 10,
		CleanedLength:  7,
		RemovedCount:   3,
		NBSPNormalized: true,
		Histogram: map[Category]int{
			CategorySurrogate: 1,
			CategoryControl:   1,
			CategoryFormat:    1,
		},
	}

	want := "10 → 7 code points, stripped 3\n" +
		"NBSP normalized\n" +
		"Category breakdown:\n" +
		"  Control: 1\n" +
		"  Format: 1\n" +
		"  Surrogate: 1\n"

	if got := res.Report(); got != want {
		t.Errorf("Report() = %q, want %q", got, want)
	}
}

func TestReport_NoChanges(t *testing.T) {
	res := Result{OriginalLength: 5, CleanedLength: 5}

	want := "5 → 5 code points, stripped 0\n"
	if got := res.Report(); got != want {
		t.Errorf("Report() = %q, want %q", got, want)
	}
	if strings.Contains(res.Report(), "NBSP") {
		t.Error("NBSP line must be absent when no normalization happened")
	}
	if strings.Contains(res.Report(), "breakdown") {
		t.Error("breakdown block must be absent for an empty histogram")
	}
}

func TestReport_CategoriesSorted(t *testing.T) {
	res := Result{
		OriginalLength: 9,
		CleanedLength:  4,
		RemovedCount:   5,
		Histogram: map[Category]int{
			CategoryUnassigned: 1,
			CategoryPrivateUse: 1,
			CategorySurrogate:  1,
			CategoryFormat:     1,
			CategoryControl:    1,
		},
	}

	report := res.Report()
	order := []string{"Control", "Format", "PrivateUse", "Surrogate", "Unassigned"}
	last := -1
	for _, name := range order {
		idx := strings.Index(report, "  "+name+": ")
		if idx < 0 {
			t.Fatalf("category %s missing from report %q", name, report)
		}
		if idx < last {
			t.Errorf("category %s out of order in report %q", name, report)
		}
		last = idx
	}
}

func TestReport_Deterministic(t *testing.T) {
	res := Scrub("a\x00b​cd", Policy{})

	first := res.Report()
	for i := 0; i < 20; i++ {
		if got := res.Report(); got != first {
			t.Fatalf("Report() not deterministic: %q != %q", got, first)
		}
	}
}

func TestSummary(t *testing.T) {
	res := Result{OriginalLength: 12, RemovedCount: 2, NBSPNormalized: true}

	want := "stripped 2 of 12 code points (nbsp normalized: true)"
	if got := res.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
