package match

import (
	"cmp"
	"slices"
)

// MinSuggestScore is the lowest similarity a candidate needs to be suggested.
const MinSuggestScore = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to n candidates similar to name, best match first.
// Equal scores are ordered by name. Duplicate candidates are reported once.
func Suggest(name string, candidates []string, n int) []string {
	if n <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(candidates))
	ranked := make([]scored, 0, len(candidates))

	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}

		if s := Similarity(name, c); s >= MinSuggestScore {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	out := make([]string, 0, min(n, len(ranked)))
	for _, r := range ranked[:min(n, len(ranked))] {
		out = append(out, r.name)
	}

	return out
}
