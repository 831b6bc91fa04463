package intent

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// variationThreshold is the minimum similarity for a token to count as a
// variation hit. Below this, typo tolerance does not engage.
const variationThreshold = 0.8

// VariationMatcher scores tokens against the catalog's known variations.
// Used only when pattern matching is inconclusive.
type VariationMatcher struct {
	variations map[string][]string
	hints      map[string]Intent
	canonicals []string
}

// NewVariationMatcher builds a matcher over the catalog's variation table.
// Canonical tokens are scanned in sorted order so ties resolve the same way
// on every call.
func NewVariationMatcher(c *Catalog) *VariationMatcher {
	canonicals := make([]string, 0, len(c.variations))
	for canonical := range c.variations {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	return &VariationMatcher{
		variations: c.variations,
		hints:      c.hints,
		canonicals: canonicals,
	}
}

// Score computes a normalized edit similarity in [0,1]. Identical strings
// score 1.0; completely dissimilar strings approach 0.0. Malformed input
// never errors, it just scores low.
func (m *VariationMatcher) Score(word, variation string) float64 {
	if word == variation {
		return 1.0
	}
	longest := len([]rune(word))
	if l := len([]rune(variation)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(word, variation)
	sim := 1.0 - float64(dist)/float64(longest)
	if sim < 0 {
		return 0
	}
	return sim
}

// BestVariationMatch scans the variation table and returns the canonical
// token with the highest-scoring variation above the threshold, or ("", 0.0)
// when nothing qualifies.
func (m *VariationMatcher) BestVariationMatch(word string) (string, float64) {
	bestCanonical := ""
	bestScore := 0.0

	for _, canonical := range m.canonicals {
		for _, variation := range m.variations[canonical] {
			score := m.Score(word, variation)
			if score >= variationThreshold && score > bestScore {
				bestCanonical = canonical
				bestScore = score
			}
		}
	}

	return bestCanonical, bestScore
}

// IntentHint maps a canonical token to the intent a fuzzy hit signals.
func (m *VariationMatcher) IntentHint(canonical string) (Intent, bool) {
	i, ok := m.hints[canonical]
	return i, ok
}
