package usecase

import (
	"sort"
	"strings"

	"github.com/pantrylens/backend/internal/domain"
)

// Thresholds for the boolean ingredient existence check
const (
	coreSimilarityThreshold = 0.8
	termSimilarityThreshold = 0.8
	minCoreLength           = 3
	minFuzzyTermLength      = 4
)

// RecipeMatcher answers "does the household have this ingredient" and
// ranks recipes by how much of their ingredient list is on hand
type RecipeMatcher struct {
	norm  *Normalizer
	vocab *Vocabulary
}

// NewRecipeMatcher creates a recipe matcher over the given vocabulary
func NewRecipeMatcher(norm *Normalizer, vocab *Vocabulary) *RecipeMatcher {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if norm == nil {
		norm = NewNormalizer(vocab)
	}
	return &RecipeMatcher{norm: norm, vocab: vocab}
}

// ingredientTerms is the comparable form of one ingredient phrase: the
// full normalized string, each individual word, any synonym hits, and
// the core ingredient (the last significant word, synonym-mapped)
type ingredientTerms struct {
	terms map[string]bool
	core  string
}

// HasIngredient reports whether any of the user's on-hand ingredient
// strings matches the recipe ingredient. This is a boolean existence
// check, not a score.
func (m *RecipeMatcher) HasIngredient(recipeIngredient string, userIngredients []string) bool {
	want := m.termsFor(recipeIngredient)

	for _, userIngredient := range userIngredients {
		have := m.termsFor(userIngredient)
		if m.termsMatch(want, have) {
			return true
		}
	}
	return false
}

// MatchRecipes computes inStock flags and a match percentage for each
// recipe, then orders by descending percentage with user-authored
// recipes winning ties over externally sourced ones.
func (m *RecipeMatcher) MatchRecipes(recipes []domain.Recipe, userIngredients []string) []domain.RecipeMatch {
	matches := make([]domain.RecipeMatch, 0, len(recipes))

	for _, recipe := range recipes {
		match := domain.RecipeMatch{
			Recipe:      recipe,
			Ingredients: make([]domain.RecipeIngredientMatch, 0, len(recipe.Ingredients)),
		}

		for _, ingredient := range recipe.Ingredients {
			inStock := m.HasIngredient(ingredient.Name, userIngredients)
			if inStock {
				match.MatchedCount++
			}
			match.Ingredients = append(match.Ingredients, domain.RecipeIngredientMatch{
				Name:    ingredient.Name,
				Measure: ingredient.Measure,
				InStock: inStock,
			})
		}

		if len(recipe.Ingredients) > 0 {
			match.MatchPercent = float64(match.MatchedCount) / float64(len(recipe.Ingredients)) * 100
		}
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchPercent != matches[j].MatchPercent {
			return matches[i].MatchPercent > matches[j].MatchPercent
		}
		return matches[i].Recipe.Origin == domain.RecipeOriginUser &&
			matches[j].Recipe.Origin != domain.RecipeOriginUser
	})

	return matches
}

// termsFor builds the term set and core ingredient for one phrase
func (m *RecipeMatcher) termsFor(s string) ingredientTerms {
	normalized := m.norm.Normalize(s)
	result := ingredientTerms{terms: make(map[string]bool)}

	if normalized == "" {
		return result
	}

	result.terms[normalized] = true
	if synonym, ok := m.vocab.Synonyms[normalized]; ok {
		result.terms[synonym] = true
	}

	words := strings.Fields(normalized)
	for _, word := range words {
		result.terms[word] = true
		if synonym, ok := m.vocab.Synonyms[word]; ok {
			result.terms[synonym] = true
		}
	}

	result.core = m.coreIngredient(words)
	return result
}

// coreIngredient is the last significant word of the normalized
// phrase, synonym-mapped and singularized; a cheap proxy for the main
// noun
func (m *RecipeMatcher) coreIngredient(words []string) string {
	for i := len(words) - 1; i >= 0; i-- {
		word := words[i]
		if len(word) < minCoreLength {
			continue
		}
		if synonym, ok := m.vocab.Synonyms[word]; ok {
			word = synonym
		}
		return singularize(word)
	}
	return ""
}

// termsMatch applies the match rules: core equality or near-equality,
// exact term overlap, then fuzzy/substring overlap for longer terms
func (m *RecipeMatcher) termsMatch(a, b ingredientTerms) bool {
	if len(a.core) >= minCoreLength && len(b.core) >= minCoreLength {
		if a.core == b.core || EditSimilarity(a.core, b.core) >= coreSimilarityThreshold {
			return true
		}
	}

	for termA := range a.terms {
		for termB := range b.terms {
			if termA == termB {
				return true
			}
			if len(termA) < minFuzzyTermLength || len(termB) < minFuzzyTermLength {
				continue
			}
			if EditSimilarity(termA, termB) >= termSimilarityThreshold {
				return true
			}
			if strings.Contains(termA, termB) || strings.Contains(termB, termA) {
				return true
			}
		}
	}

	return false
}

// singularize strips simple plural endings so "eggs" and "egg" share a
// core. Deliberately crude: no locale-aware stemming.
func singularize(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "oes") && len(word) > 3:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 3:
		return word[:len(word)-1]
	}
	return word
}
