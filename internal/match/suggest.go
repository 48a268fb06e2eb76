package match

import (
	"sort"

	"prop-caster/internal/common"
)

// suggestionFloor is the minimum normalized similarity for a name to be
// offered as a suggestion at all.
const suggestionFloor = 0.5

// Closest returns up to limit candidate names ranked by similarity to name,
// most similar first. Candidates below the similarity floor are dropped.
func Closest(name string, candidates []string, limit int) []string {
	if limit <= 0 || common.IsEmpty(candidates) {
		return nil
	}

	norm := NormalizeIdent(name)

	type scored struct {
		name  string
		score float64
	}

	ranked := make([]scored, 0, len(candidates))

	for _, c := range candidates {
		score := LevenshteinNormalized(norm, NormalizeIdent(c))
		if score < suggestionFloor {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	// Sort by score descending, then by name for determinism
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]string, len(ranked))
	for i, r := range ranked {
		result[i] = r.name
	}

	return result
}
