package usecase

import "strings"

// Blend weights: token similarity is weighted higher because receipt
// text is frequently truncated. The 0.4/0.6 split and the max of the
// raw vs expanded pass are load-bearing; the acceptance thresholds are
// calibrated against this exact formula.
const (
	blendEditWeight  = 0.4
	blendTokenWeight = 0.6
)

// minTokenLength: tokens shorter than this are discarded before token
// set construction
const minTokenLength = 2

// EditDistance calculates the Levenshtein distance between two strings.
// Substitution, insertion and deletion all cost 1.
func EditDistance(a, b string) int {
	if len(a) == 0 {
		return len([]rune(b))
	}
	if len(b) == 0 {
		return len([]rune(a))
	}

	r1 := []rune(a)
	r2 := []rune(b)
	m := len(r1)
	n := len(r2)

	// Two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// EditSimilarity maps edit distance into [0,1]: 1 - distance/max(len).
// Two empty strings are defined as similarity 1.
func EditSimilarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 && lb == 0 {
		return 1
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	return 1 - float64(EditDistance(a, b))/float64(longest)
}

// TokenSimilarity is the Jaccard similarity of whitespace-delimited
// token sets. Tokens shorter than minTokenLength are discarded first.
// Two empty token sets are similarity 1, matching EditSimilarity's
// empty-string convention.
func TokenSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	union := make(map[string]bool, len(setA)+len(setB))
	for token := range setA {
		union[token] = true
		if setB[token] {
			intersection++
		}
	}
	for token := range setB {
		union[token] = true
	}

	return float64(intersection) / float64(len(union))
}

// tokenSet builds the deduplicated token set for Jaccard scoring
func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(s) {
		if len(token) < minTokenLength {
			continue
		}
		set[token] = true
	}
	return set
}

// Scorer computes the blended match score between two free-text names
type Scorer struct {
	norm *Normalizer
}

// NewScorer creates a scorer that normalizes and expands through the
// given normalizer
func NewScorer(norm *Normalizer) *Scorer {
	if norm == nil {
		norm = NewNormalizer(nil)
	}
	return &Scorer{norm: norm}
}

// BlendedScore normalizes both strings, blends edit and token
// similarity on the raw pair and on the abbreviation-expanded pair,
// and returns the higher of the two blends.
func (s *Scorer) BlendedScore(a, b string) float64 {
	na := s.norm.Normalize(a)
	nb := s.norm.Normalize(b)

	raw := blend(EditSimilarity(na, nb), TokenSimilarity(na, nb))

	ea := s.norm.ExpandAbbreviations(na)
	eb := s.norm.ExpandAbbreviations(nb)
	expanded := blend(EditSimilarity(ea, eb), TokenSimilarity(ea, eb))

	if expanded > raw {
		return expanded
	}
	return raw
}

// blend combines the two similarity signals into one score
func blend(edit, token float64) float64 {
	return blendEditWeight*edit + blendTokenWeight*token
}
