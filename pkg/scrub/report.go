package scrub

import (
	"fmt"
	"sort"
	"strings"
)

// Summary is the one-line form used by log entries and notifications.
func (r Result) Summary() string {
	return fmt.Sprintf("stripped %d of %d code points (nbsp normalized: %t)",
		r.RemovedCount, r.OriginalLength, r.NBSPNormalized)
}

// Report renders the run as deterministic human-readable text. Downstream
// consumers (the audit log, notifications) depend on this exact shape:
// a headline, an NBSP line only when normalization happened, and a
// category breakdown only when something was removed, sorted by category
// name ascending.
func (r Result) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d → %d code points, stripped %d\n",
		r.OriginalLength, r.CleanedLength, r.RemovedCount)

	if r.NBSPNormalized {
		b.WriteString("NBSP normalized\n")
	}

	if len(r.Histogram) > 0 {
		b.WriteString("Category breakdown:\n")
		names := make([]string, 0, len(r.Histogram))
		for cat := range r.Histogram {
			names = append(names, string(cat))
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %s: %d\n", name, r.Histogram[Category(name)])
		}
	}

	return b.String()
}
