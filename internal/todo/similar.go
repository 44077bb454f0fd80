package todo

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// similarThreshold is the rejected share of the longer label: labels whose
// normalized edit distance falls below it count as near duplicates.
const similarThreshold = 0.4

// Similar returns items whose label is a near duplicate of label, in
// insertion order. Matching is case-insensitive on trimmed text. Read-only:
// the caller decides whether a near duplicate is worth a warning.
func Similar(snap Snapshot, label string) []Item {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return nil
	}
	var out []Item
	for _, it := range snap.Items {
		if nearDuplicate(needle, strings.ToLower(strings.TrimSpace(it.Label))) {
			out = append(out, it)
		}
	}
	return out
}

func nearDuplicate(a, b string) bool {
	if a == b {
		return true
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return false
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(dist)/float64(longest) < similarThreshold
}
