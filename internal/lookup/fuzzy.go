package lookup

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// similarity returns the SequenceMatcher ratio between two strings,
// computed over individual characters: 1.0 for identical inputs, 0.0 for
// nothing in common.
func similarity(a, b string) float64 {
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}

// closeMatches returns up to n candidates whose similarity to term meets
// the cutoff, best first. The sort is stable, so ties keep candidate
// order; callers pass candidates in a deterministic order to keep repeated
// identical queries identical.
func closeMatches(term string, candidates []string, n int, cutoff float64) []string {
	type scored struct {
		name  string
		ratio float64
	}

	var hits []scored
	for _, candidate := range candidates {
		if ratio := similarity(term, candidate); ratio >= cutoff {
			hits = append(hits, scored{name: candidate, ratio: ratio})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].ratio > hits[j].ratio
	})

	if n >= 0 && len(hits) > n {
		hits = hits[:n]
	}

	out := make([]string, len(hits))
	for i, hit := range hits {
		out[i] = hit.name
	}
	return out
}
