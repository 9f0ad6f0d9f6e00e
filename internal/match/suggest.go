package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the lowest folded similarity for a key to be suggested.
const MinSimilarity = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates that resemble name, best first.
// Candidates are compared in folded form, so case and separators do not count
// as edits. Ties are broken by candidate order.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	folded := Fold(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		s := Similarity(folded, Fold(c))
		if s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked[:min(limit, len(ranked))] {
		out = append(out, r.name)
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
